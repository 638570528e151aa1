package ingest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "SMSSpamCollection")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpamDataset(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			"keeps spam rows only",
			"ham\tOk lar... Joking wif u oni\n" +
				"spam\tFree entry in 2 a wkly comp to win FA Cup\n" +
				"ham\tU dun say so early hor\n" +
				"spam\tWINNER!! You have been selected\n",
			[]string{"Free entry in 2 a wkly comp to win FA Cup", "WINNER!! You have been selected"},
		},
		{
			"label case insensitive",
			"SPAM\turgent claim now\nSpam\tsecond one\n",
			[]string{"urgent claim now", "second one"},
		},
		{
			"skips blank and malformed rows",
			"\nspam\tkeep this\nno tab separator here\n   \nspam\t\n",
			[]string{"keep this"},
		},
		{
			"trims text whitespace",
			"spam\t  padded text  \n",
			[]string{"padded text"},
		},
		{
			"empty file",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataset(t, tt.content)
			got, err := LoadSpamDataset(path, zap.NewNop())
			if err != nil {
				t.Fatalf("LoadSpamDataset: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadSpamDatasetMissingFile(t *testing.T) {
	if _, err := LoadSpamDataset(filepath.Join(t.TempDir(), "absent"), zap.NewNop()); err == nil {
		t.Error("LoadSpamDataset succeeded on a missing file")
	}
}
