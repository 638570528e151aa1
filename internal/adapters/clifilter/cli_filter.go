package clifilter

import (
	"context"
	"fmt"
	"time"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"github.com/jessicaagarwal/ai-scambuster/internal/utils"
	"go.uber.org/zap"
)

const previewSize = 200

// Filter prints a one-shot analysis report to stdout. Used by the
// scam-analyzer binary.
type Filter struct {
	service       *core.AnalysisService
	text          *utils.TextProcessor
	logger        *zap.Logger
	verbose       bool
	maxPromptSize int
}

// NewFilter creates a new CLI filter
func NewFilter(
	service *core.AnalysisService,
	text *utils.TextProcessor,
	logger *zap.Logger,
	verbose bool,
	maxPromptSize int,
) (*Filter, error) {
	return &Filter{
		service:       service,
		text:          text,
		logger:        logger,
		verbose:       verbose,
		maxPromptSize: maxPromptSize,
	}, nil
}

// Analyze runs the pipeline for a single message and prints the report
func (f *Filter) Analyze(ctx context.Context, message string) core.AnalysisResult {
	f.logger.Debug("Analyzing message", zap.Int("length", len(message)))

	// NFKC folding first: scam messages hide keywords behind fullwidth
	// characters and homoglyphs.
	message = f.text.ProcessText(message, f.maxPromptSize)

	fmt.Printf("\n=== Message ===\n")
	fmt.Printf("%s\n\n", f.preview(message))

	fmt.Printf("=== Analysis ===\n")
	startTime := time.Now()
	result := f.service.Analyze(ctx, message)
	duration := time.Since(startTime)

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Verdict: %s %s\n", result.Icon, result.Verdict)
	fmt.Printf("Label: %s\n", result.Label)
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	fmt.Printf("Source: %s\n", result.Source)
	fmt.Printf("Reason: %s\n", result.Reason)
	fmt.Printf("Processing time: %v\n", duration)

	return result
}

// preview shortens the message for display unless verbose output is on.
func (f *Filter) preview(message string) string {
	if f.verbose || len(message) <= previewSize {
		return message
	}
	return f.text.TruncateText(message, previewSize) + "..."
}

// Start is a no-op for the CLI filter
func (f *Filter) Start() error {
	return nil
}

// Stop is a no-op for the CLI filter
func (f *Filter) Stop() error {
	return nil
}
