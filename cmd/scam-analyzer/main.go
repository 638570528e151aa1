package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/jessicaagarwal/ai-scambuster/internal/adapters/clifilter"
	"github.com/jessicaagarwal/ai-scambuster/internal/config"
	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"github.com/jessicaagarwal/ai-scambuster/internal/factory"
	"github.com/jessicaagarwal/ai-scambuster/internal/logging"
	"github.com/jessicaagarwal/ai-scambuster/internal/utils"
)

var (
	// Input flags
	message   = flag.String("message", "", "Message text to analyze (use stdin or -file if not specified)")
	inputFile = flag.String("file", "", "Input file containing the message")
	verbose   = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog   = flag.Bool("json-log", false, "Output logs in JSON format")

	// Provider flags
	llmProvider     = flag.String("llm-provider", "", "LLM provider (groq, gemini, bedrock)")
	groqAPIKey      = flag.String("groq-api-key", "", "API key for Groq")
	geminiAPIKey    = flag.String("gemini-api-key", "", "API key for Google Gemini")
	classifierToken = flag.String("classifier-token", "", "API token for the HuggingFace classifier")
	snapshotPath    = flag.String("snapshot", "", "Path to the similarity index snapshot")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration, then apply flag overrides
	cfg, err := config.New()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	applyFlagOverrides(cfg)

	text := readMessage(logger)
	if strings.TrimSpace(text) == "" {
		logger.Fatal("No message to analyze")
	}

	// Build the pipeline by hand; the one-shot CLI skips the cache
	classifierFactory := factory.NewClassifierFactory(cfg, logger)
	classifier, err := classifierFactory.CreateClassifier()
	if err != nil {
		logger.Fatal("Failed to create classifier client", zap.Error(err))
	}
	classifyTimeout, err := classifierFactory.GetClassifyTimeout()
	if err != nil {
		logger.Fatal("Invalid classifier timeout", zap.Error(err))
	}

	matcher := core.NewKeywordMatcher(cfg.GetStringSlice("heuristic.keywords"))
	gateway := core.NewClassifierGateway(classifier, matcher, nil, logger, false, 0, classifyTimeout)

	explainer := buildExplainer(cfg, logger)
	service := core.NewAnalysisService(gateway, explainer, logger)

	textProcessor := utils.NewTextProcessor(logger)
	filter, err := clifilter.NewFilter(service, textProcessor, logger, *verbose, cfg.GetIndex().MaxPromptSize)
	if err != nil {
		logger.Fatal("Failed to create CLI filter", zap.Error(err))
	}

	result := filter.Analyze(context.Background(), text)
	if result.Verdict == core.VerdictScam {
		os.Exit(2)
	}
}

// buildExplainer assembles the retrieval-augmented explainer. Every failure
// here only degrades explanations, never the classification path.
func buildExplainer(cfg *config.Config, logger *zap.Logger) *core.ExplanationGenerator {
	llmTimeout, err := cfg.GetDuration("llm.timeout")
	if err != nil {
		logger.Fatal("Invalid LLM timeout", zap.Error(err))
	}

	var index core.ScamIndex
	embeddingFactory := factory.NewEmbeddingFactory(cfg, logger)
	if provider, err := embeddingFactory.CreateEmbeddingProvider(); err != nil {
		logger.Warn("Embedding provider unavailable", zap.Error(err))
	} else if loaded, err := factory.NewIndexFactory(cfg, logger).LoadIndex(provider); err != nil {
		logger.Warn("Similarity index unavailable, using heuristic fallback", zap.Error(err))
	} else {
		index = loaded
	}

	var generator core.TextGenerator
	if created, err := factory.NewLLMFactory(cfg, logger).CreateTextGenerator(); err != nil {
		logger.Warn("LLM provider unavailable, using heuristic fallback", zap.Error(err))
	} else {
		generator = created
	}

	return core.NewExplanationGenerator(index, generator, logger, cfg.GetInt("index.top_k"), llmTimeout)
}

// readMessage pulls the message text from the flag, a file, or stdin.
func readMessage(logger *zap.Logger) string {
	if *message != "" {
		return *message
	}

	var reader io.Reader
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer f.Close()
		reader = f
		logger.Info("Reading message from file", zap.String("file", *inputFile))
	} else {
		reader = os.Stdin
		logger.Info("Reading message from stdin")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		logger.Fatal("Failed to read message", zap.Error(err))
	}
	return string(data)
}

// applyFlagOverrides writes non-empty flag values over the loaded config
func applyFlagOverrides(cfg *config.Config) {
	v := cfg.GetViper()

	if *llmProvider != "" {
		v.Set("llm.provider", *llmProvider)
	}
	if *groqAPIKey != "" {
		v.Set("groq.api_key", *groqAPIKey)
	}
	if *geminiAPIKey != "" {
		v.Set("gemini.api_key", *geminiAPIKey)
	}
	if *classifierToken != "" {
		v.Set("classifier.api_token", *classifierToken)
	}
	if *snapshotPath != "" {
		v.Set("index.snapshot_path", *snapshotPath)
	}
}
