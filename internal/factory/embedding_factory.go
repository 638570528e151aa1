package factory

import (
	"fmt"

	"github.com/jessicaagarwal/ai-scambuster/internal/adapters/embedding"
	"github.com/jessicaagarwal/ai-scambuster/internal/config"
	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"go.uber.org/zap"
)

// EmbeddingFactory creates embedding providers
type EmbeddingFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewEmbeddingFactory creates a new embedding factory
func NewEmbeddingFactory(cfg *config.Config, logger *zap.Logger) *EmbeddingFactory {
	return &EmbeddingFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateEmbeddingProvider creates a new embedding provider based on the
// configuration
func (f *EmbeddingFactory) CreateEmbeddingProvider() (core.EmbeddingProvider, error) {
	embeddingCfg := f.cfg.GetEmbedding()

	switch embeddingCfg.Provider {
	case "huggingface":
		return embedding.NewHuggingFaceProvider(
			embeddingCfg.Endpoint,
			embeddingCfg.APIToken,
			embeddingCfg.Dimension,
			f.logger,
		), nil
	case "ollama":
		return embedding.NewOllamaProvider(
			embeddingCfg.OllamaURL,
			embeddingCfg.OllamaModel,
			embeddingCfg.Dimension,
			f.logger,
		)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", embeddingCfg.Provider)
	}
}
