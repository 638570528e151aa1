package factory

import (
	"fmt"

	"github.com/jessicaagarwal/ai-scambuster/internal/adapters/clifilter"
	"github.com/jessicaagarwal/ai-scambuster/internal/adapters/httpapi"
	"github.com/jessicaagarwal/ai-scambuster/internal/config"
	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"github.com/jessicaagarwal/ai-scambuster/internal/metrics"
	"github.com/jessicaagarwal/ai-scambuster/internal/ports"
	"github.com/jessicaagarwal/ai-scambuster/internal/utils"
	"go.uber.org/zap"
)

// FilterFactory creates inbound message filters based on configuration
type FilterFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.AnalysisService
	metrics *metrics.Metrics
	text    *utils.TextProcessor
}

// NewFilterFactory creates a new filter factory
func NewFilterFactory(
	cfg *config.Config,
	logger *zap.Logger,
	service *core.AnalysisService,
	m *metrics.Metrics,
	text *utils.TextProcessor,
) *FilterFactory {
	return &FilterFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
		metrics: m,
		text:    text,
	}
}

// CreateMessageFilter creates a message filter based on the configuration
func (f *FilterFactory) CreateMessageFilter() (ports.MessageFilter, error) {
	filterType := f.cfg.GetString("server.filter_type")

	maxPromptSize := f.cfg.GetIndex().MaxPromptSize

	switch filterType {
	case "http":
		readTimeout, err := f.cfg.GetDuration("server.read_timeout")
		if err != nil {
			return nil, fmt.Errorf("invalid server read timeout: %w", err)
		}
		writeTimeout, err := f.cfg.GetDuration("server.write_timeout")
		if err != nil {
			return nil, fmt.Errorf("invalid server write timeout: %w", err)
		}
		return httpapi.NewServer(
			f.service,
			f.metrics,
			f.text,
			f.logger,
			f.cfg.GetString("server.listen_address"),
			readTimeout,
			writeTimeout,
			maxPromptSize,
		), nil
	case "cli":
		return clifilter.NewFilter(
			f.service,
			f.text,
			f.logger,
			f.cfg.GetBool("cli.verbose"),
			maxPromptSize,
		)
	default:
		return nil, fmt.Errorf("unsupported filter type: %s", filterType)
	}
}
