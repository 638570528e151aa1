package embedding

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaProvider embeds text with a local Ollama model. Used for offline
// corpus builds and deployments that keep embeddings on-host.
type OllamaProvider struct {
	llm       *ollama.LLM
	dimension int
	logger    *zap.Logger
}

// NewOllamaProvider creates a new Ollama embedding provider
func NewOllamaProvider(serverURL, model string, dimension int, logger *zap.Logger) (*OllamaProvider, error) {
	llm, err := ollama.New(ollama.WithServerURL(serverURL), ollama.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to init ollama: %w", err)
	}

	return &OllamaProvider{
		llm:       llm,
		dimension: dimension,
		logger:    logger,
	}, nil
}

// Dimension returns the expected vector dimension
func (p *OllamaProvider) Dimension() int {
	return p.dimension
}

// Embed returns the embedding vector for a single text
func (p *OllamaProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch returns embedding vectors for several texts at once
func (p *OllamaProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	vectors, err := p.llm.CreateEmbedding(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("ollama embedding failed: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("ollama returned %d vectors for %d texts", len(vectors), len(texts))
	}
	for i, vec := range vectors {
		if len(vec) != p.dimension {
			return nil, fmt.Errorf("embedding %d has dimension %d, expected %d", i, len(vec), p.dimension)
		}
	}

	return vectors, nil
}
