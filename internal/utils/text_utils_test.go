package utils

import (
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
)

func TestTruncateText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	tests := []struct {
		name    string
		text    string
		maxSize int
		want    string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exact limit", "hello", 5, "hello"},
		{"over limit", "hello world", 5, "hello"},
		{"zero limit returns unchanged", "hello", 0, "hello"},
		{"negative limit returns unchanged", "hello", -1, "hello"},
		{"multibyte boundary", "héllo", 2, "h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tp.TruncateText(tt.text, tt.maxSize)
			if got != tt.want {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.text, tt.maxSize, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("TruncateText produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	valid := "plain ascii and émoji 🚨"
	if got := tp.SanitizeUTF8(valid); got != valid {
		t.Errorf("valid string modified: %q", got)
	}

	invalid := "abc\xff\xfedef"
	got := tp.SanitizeUTF8(invalid)
	if !utf8.ValidString(got) {
		t.Errorf("result still invalid UTF-8: %q", got)
	}
	if got != "abcdef" {
		t.Errorf("SanitizeUTF8(%q) = %q, want %q", invalid, got, "abcdef")
	}
}

func TestNormalizeText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	tests := []struct {
		name string
		text string
		want string
	}{
		{"fullwidth latin folded", "ＦＲＥＥ ＰＲＩＺＥ", "FREE PRIZE"},
		{"plain text unchanged", "free prize", "free prize"},
		{"ligature expanded", "oﬃce", "office"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tp.NormalizeText(tt.text); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestProcessText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())
	got := tp.ProcessText("ＵＲＧＥＮＴ message\xff", 6)
	if got != "URGENT" {
		t.Errorf("ProcessText = %q, want %q", got, "URGENT")
	}
}
