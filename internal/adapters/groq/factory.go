package groq

import (
	"fmt"

	"github.com/jessicaagarwal/ai-scambuster/internal/config"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Factory creates new instances of GroqClient
type Factory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewFactory creates a new factory for GroqClient instances
func NewFactory(cfg *config.Config, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateClient creates a new GroqClient
func (f *Factory) CreateClient() (*GroqClient, error) {
	groqCfg := f.cfg.GetGroq()
	if groqCfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}

	clientCfg := openai.DefaultConfig(groqCfg.APIKey)
	clientCfg.BaseURL = groqCfg.BaseURL
	client := openai.NewClientWithConfig(clientCfg)

	return NewGroqClient(
		client,
		groqCfg.ModelName,
		groqCfg.MaxTokens,
		groqCfg.Temperature,
		groqCfg.TopP,
		f.logger,
	), nil
}
