package core

import (
	"strings"
)

// KeywordMatcher is a deterministic keyword-based scam detector. It is used
// both to escalate a model verdict and as the offline fallback when the
// remote classifier is unavailable.
type KeywordMatcher struct {
	terms []string
}

// DefaultScamKeywords is the stock indicator list. Deployments override it
// via the heuristic.keywords config key.
var DefaultScamKeywords = []string{
	"lottery",
	"winner",
	"congratulations",
	"free",
	"prize",
	"gift card",
	"urgent",
	"click here",
	"claim now",
	"verify your account",
	"wire transfer",
}

// NewKeywordMatcher creates a matcher over the given terms. Terms are checked
// in the order given; matching is case-insensitive substring matching.
func NewKeywordMatcher(terms []string) *KeywordMatcher {
	if len(terms) == 0 {
		terms = DefaultScamKeywords
	}
	normalized := make([]string, len(terms))
	for i, t := range terms {
		normalized[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return &KeywordMatcher{terms: normalized}
}

// Match returns the first configured term found in the text, if any.
func (m *KeywordMatcher) Match(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, term := range m.terms {
		if term != "" && strings.Contains(lowered, term) {
			return term, true
		}
	}
	return "", false
}

// indicatorCategory is one class of scam signal the fallback explainer
// scans for. Categories are checked in declaration order so the composed
// explanation is deterministic for a given input.
type indicatorCategory struct {
	description string
	terms       []string
}

var fallbackIndicators = []indicatorCategory{
	{
		description: "requests for banking or credential details",
		terms:       []string{"bank", "account", "password", "pin", "login", "verify", "ssn"},
	},
	{
		description: "pressure to open an unverified link",
		terms:       []string{"click", "link", "http://", "https://", "www."},
	},
	{
		description: "artificial time pressure or threats",
		terms:       []string{"urgent", "immediately", "final notice", "suspended", "expire", "act now", "last chance"},
	},
	{
		description: "promises of prizes or free rewards",
		terms:       []string{"win", "won", "winner", "free", "prize", "gift", "congratulations", "claim", "reward", "lottery"},
	},
}

const fallbackAdvice = "Do not click any links, share personal details, or send money; verify the request through an official channel."

// FallbackExplain produces a deterministic explanation for a message without
// any external calls. It always returns a non-empty string and is the last
// resort of the explanation pipeline.
func FallbackExplain(text string) string {
	lowered := strings.ToLower(text)

	var matched []string
	for _, cat := range fallbackIndicators {
		for _, term := range cat.terms {
			if strings.Contains(lowered, term) {
				matched = append(matched, cat.description)
				break
			}
		}
	}

	var b strings.Builder
	if len(matched) == 0 {
		b.WriteString("This message matches common scam patterns.")
	} else {
		b.WriteString("This message shows typical scam indicators: ")
		b.WriteString(strings.Join(matched, "; "))
		b.WriteString(".")
	}
	b.WriteString(" ")
	b.WriteString(fallbackAdvice)
	return b.String()
}
