package core

import (
	"strings"
	"testing"
)

func TestKeywordMatcherMatch(t *testing.T) {
	tests := []struct {
		name     string
		terms    []string
		text     string
		wantTerm string
		wantHit  bool
	}{
		{"default list lottery", nil, "You have won the LOTTERY today", "lottery", true},
		{"default list gift card", nil, "Claim your free gift card", "free", true},
		{"case insensitive", nil, "URGENT: respond immediately", "urgent", true},
		{"substring match", nil, "congratulationsyouwon", "congratulations", true},
		{"no match", nil, "see you at lunch tomorrow", "", false},
		{"empty text", nil, "", "", false},
		{"first term wins", []string{"prize", "winner"}, "winner of the prize", "prize", true},
		{"custom terms only", []string{"bitcoin"}, "urgent lottery winner", "", false},
		{"terms trimmed and lowered", []string{"  Crypto  "}, "invest in CRYPTO now", "crypto", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewKeywordMatcher(tt.terms)
			term, hit := m.Match(tt.text)
			if hit != tt.wantHit {
				t.Errorf("Match(%q) hit = %v, want %v", tt.text, hit, tt.wantHit)
			}
			if term != tt.wantTerm {
				t.Errorf("Match(%q) term = %q, want %q", tt.text, term, tt.wantTerm)
			}
		})
	}
}

func TestKeywordMatcherEmptyTermsUsesDefaults(t *testing.T) {
	m := NewKeywordMatcher(nil)
	if _, hit := m.Match("verify your account now"); !hit {
		t.Error("matcher built from nil terms should fall back to the default keyword list")
	}
}

func TestFallbackExplain(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantContains []string
	}{
		{
			"prize indicators",
			"Congratulations! You won a free prize",
			[]string{"promises of prizes or free rewards"},
		},
		{
			"credential indicators",
			"Please verify your bank account password",
			[]string{"requests for banking or credential details"},
		},
		{
			"link indicators",
			"click http://bit.ly/x to continue",
			[]string{"pressure to open an unverified link"},
		},
		{
			"urgency indicators",
			"URGENT final notice, act now",
			[]string{"artificial time pressure or threats"},
		},
		{
			"multiple categories joined in order",
			"urgent: click here to claim your free prize",
			[]string{
				"pressure to open an unverified link; artificial time pressure or threats; promises of prizes or free rewards",
			},
		},
		{
			"no indicators uses generic opener",
			"see you at seven",
			[]string{"This message matches common scam patterns."},
		},
		{
			"empty input uses generic opener",
			"",
			[]string{"This message matches common scam patterns."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackExplain(tt.text)
			if got == "" {
				t.Fatal("FallbackExplain returned empty string")
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("FallbackExplain(%q) = %q, want it to contain %q", tt.text, got, want)
				}
			}
			if !strings.Contains(got, "Do not click any links") {
				t.Errorf("FallbackExplain(%q) missing advice sentence: %q", tt.text, got)
			}
		})
	}
}

func TestFallbackExplainDeterministic(t *testing.T) {
	text := "urgent: verify your bank login at http://scam.example"
	first := FallbackExplain(text)
	for i := 0; i < 5; i++ {
		if got := FallbackExplain(text); got != first {
			t.Fatalf("FallbackExplain not deterministic: %q vs %q", got, first)
		}
	}
}
