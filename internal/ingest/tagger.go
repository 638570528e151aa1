package ingest

import (
	"strings"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
)

// tagRule maps indicator terms to a scam category. Rules are evaluated in
// order and the first match wins, so tagging is deterministic.
type tagRule struct {
	tag   core.ScamTag
	terms []string
}

var tagRules = []tagRule{
	{core.TagLotteryScam, []string{"win", "prize", "jackpot"}},
	{core.TagJobOfferScam, []string{"job", "offer", "hiring"}},
	{core.TagAdvanceFeeFraud, []string{"bank", "transfer", "account"}},
	{core.TagRomanceFraud, []string{"romance", "love", "dating"}},
	{core.TagPhishing, []string{"click", "link", "login"}},
}

// TagText assigns a scam category to a corpus text based on keyword rules.
// Texts matching no rule fall into the general category.
func TagText(text string) core.ScamTag {
	lowered := strings.ToLower(text)
	for _, rule := range tagRules {
		for _, term := range rule.terms {
			if strings.Contains(lowered, term) {
				return rule.tag
			}
		}
	}
	return core.TagGeneralScam
}
