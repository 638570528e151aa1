package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// LoadSpamDataset reads a labelled SMS corpus in the SMSSpamCollection
// format (one "label<TAB>text" row per line, labels ham/spam) and returns
// the spam texts only. Ham rows are training noise for the scam index.
func LoadSpamDataset(path string, logger *zap.Logger) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	var texts []string
	total := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++

		label, text, ok := strings.Cut(line, "\t")
		if !ok {
			logger.Warn("Skipping malformed dataset row", zap.Int("row", total))
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(label), "spam") {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			texts = append(texts, text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	logger.Info("Loaded spam dataset",
		zap.String("path", path),
		zap.Int("rows", total),
		zap.Int("spam_samples", len(texts)))

	return texts, nil
}
