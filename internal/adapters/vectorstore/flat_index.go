package vectorstore

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"go.uber.org/zap"
)

// FlatIndex is an exhaustive-scan L2 index over the scam example corpus.
// The corpus is fixed at construction time and shared read-only across
// requests, so lookups need no locking.
type FlatIndex struct {
	embedder  core.EmbeddingProvider
	examples  []core.ScamExample
	dimension int
	logger    *zap.Logger
}

// NewFlatIndex creates an index over the given examples. Every example must
// carry an embedding of the provider's dimension; a mismatch is a
// configuration error, not something to retry at query time.
func NewFlatIndex(embedder core.EmbeddingProvider, examples []core.ScamExample, logger *zap.Logger) (*FlatIndex, error) {
	dimension := embedder.Dimension()
	for i, ex := range examples {
		if len(ex.Embedding) != dimension {
			return nil, fmt.Errorf("corpus entry %d has dimension %d, embedder produces %d", i, len(ex.Embedding), dimension)
		}
	}

	logger.Info("Similarity index ready",
		zap.Int("entries", len(examples)),
		zap.Int("dimension", dimension))

	return &FlatIndex{
		embedder:  embedder,
		examples:  examples,
		dimension: dimension,
		logger:    logger,
	}, nil
}

// Size returns the number of corpus entries held by the index
func (ix *FlatIndex) Size() int {
	return len(ix.examples)
}

// Query embeds the text and returns up to k examples ordered by ascending
// L2 distance. Ties keep corpus insertion order. An empty index returns an
// empty slice and no error; callers treat that as "no context available".
func (ix *FlatIndex) Query(ctx context.Context, text string, k int) ([]core.ScoredExample, error) {
	if k <= 0 || len(ix.examples) == 0 {
		return []core.ScoredExample{}, nil
	}

	query, err := ix.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(query) != ix.dimension {
		return nil, fmt.Errorf("query embedding has dimension %d, index expects %d", len(query), ix.dimension)
	}

	scored := make([]core.ScoredExample, len(ix.examples))
	for i, ex := range ix.examples {
		scored[i] = core.ScoredExample{
			Example:  ex,
			Distance: l2Distance(query, ex.Embedding),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Distance < scored[j].Distance
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

// l2Distance computes the Euclidean distance between two vectors of equal
// length.
func l2Distance(a, b []float32) float32 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return float32(math.Sqrt(sum))
}
