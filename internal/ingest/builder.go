package ingest

import (
	"context"
	"fmt"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"go.uber.org/zap"
)

const defaultBatchSize = 32

// Builder embeds and tags a spam corpus into scam examples ready for
// indexing. It is used only by the offline corpus build; the serving process
// never writes to the corpus.
type Builder struct {
	embedder  core.EmbeddingProvider
	logger    *zap.Logger
	batchSize int
}

// NewBuilder creates a new corpus builder
func NewBuilder(embedder core.EmbeddingProvider, logger *zap.Logger, batchSize int) *Builder {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Builder{
		embedder:  embedder,
		logger:    logger,
		batchSize: batchSize,
	}
}

// Build embeds every text and returns the tagged corpus in input order.
func (b *Builder) Build(ctx context.Context, texts []string) ([]core.ScamExample, error) {
	examples := make([]core.ScamExample, 0, len(texts))

	for start := 0; start < len(texts); start += b.batchSize {
		end := start + b.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		vectors, err := b.embedder.EmbedBatch(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("failed to embed batch starting at %d: %w", start, err)
		}

		for i, text := range batch {
			examples = append(examples, core.ScamExample{
				Text:      text,
				Tag:       TagText(text),
				Embedding: vectors[i],
			})
		}

		b.logger.Debug("Embedded corpus batch",
			zap.Int("done", end),
			zap.Int("total", len(texts)))
	}

	return examples, nil
}
