package core

import (
	"context"
)

// Classifier defines the interface for the external spam/ham classifier.
// Implementations return the raw ranked predictions; normalization and
// fallback handling happen in the ClassifierGateway.
type Classifier interface {
	// Classify returns ranked label/score pairs for a message
	Classify(ctx context.Context, text string) ([]Prediction, error)
}

// EmbeddingProvider defines the interface for turning text into a
// fixed-dimension vector.
type EmbeddingProvider interface {
	// Embed returns the embedding vector for a single text
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns embedding vectors for several texts at once
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the expected vector dimension
	Dimension() int
}

// TextGenerator defines the interface for the remote LLM used to produce
// explanations.
type TextGenerator interface {
	// Generate returns the model's text completion for a prompt
	Generate(ctx context.Context, prompt string) (string, error)
}

// ScamIndex defines the interface for nearest-neighbor lookup over the
// known-scam corpus.
type ScamIndex interface {
	// Query returns up to k corpus entries ordered by ascending distance.
	// An empty index yields an empty slice, not an error.
	Query(ctx context.Context, text string, k int) ([]ScoredExample, error)

	// Size returns the number of corpus entries held by the index
	Size() int
}

// CacheRepository defines the interface for caching classification results
type CacheRepository interface {
	// Get retrieves a cached entry by message digest
	Get(ctx context.Context, digest string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, digest string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}
