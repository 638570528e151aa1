package factory

import (
	"fmt"
	"time"

	"github.com/jessicaagarwal/ai-scambuster/internal/adapters/hfclassifier"
	"github.com/jessicaagarwal/ai-scambuster/internal/config"
	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"go.uber.org/zap"
)

// ClassifierFactory creates remote classifier clients
type ClassifierFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewClassifierFactory creates a new classifier factory
func NewClassifierFactory(cfg *config.Config, logger *zap.Logger) *ClassifierFactory {
	return &ClassifierFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateClassifier creates the inference API classifier client
func (f *ClassifierFactory) CreateClassifier() (core.Classifier, error) {
	classifierCfg := f.cfg.GetClassifier()
	if classifierCfg.Endpoint == "" {
		return nil, fmt.Errorf("classifier endpoint is required")
	}

	openTimeout, err := f.cfg.GetDuration("classifier.breaker_open_timeout")
	if err != nil {
		return nil, fmt.Errorf("invalid breaker open timeout: %w", err)
	}

	return hfclassifier.NewClient(
		classifierCfg.Endpoint,
		classifierCfg.APIToken,
		classifierCfg.BreakerMaxFailures,
		openTimeout,
		f.logger,
	), nil
}

// GetClassifyTimeout returns the per-call classification timeout
func (f *ClassifierFactory) GetClassifyTimeout() (time.Duration, error) {
	return f.cfg.GetDuration("classifier.timeout")
}
