package di

import (
	"context"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/jessicaagarwal/ai-scambuster/internal/adapters/embedding"
	"github.com/jessicaagarwal/ai-scambuster/internal/config"
	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"github.com/jessicaagarwal/ai-scambuster/internal/factory"
	"github.com/jessicaagarwal/ai-scambuster/internal/logging"
	"github.com/jessicaagarwal/ai-scambuster/internal/metrics"
	"github.com/jessicaagarwal/ai-scambuster/internal/ports"
	"github.com/jessicaagarwal/ai-scambuster/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register text processor and metrics
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}
	if err := container.Provide(metrics.New); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewClassifierFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewEmbeddingFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewIndexFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFilterFactory); err != nil {
		return nil, err
	}

	// Register classifier client
	if err := container.Provide(func(f *factory.ClassifierFactory) (core.Classifier, error) {
		return f.CreateClassifier()
	}); err != nil {
		return nil, err
	}

	// Register embedding provider with a startup dimension check. A wrong
	// dimension or unreachable provider is a configuration error and must
	// surface before traffic is served.
	if err := container.Provide(func(f *factory.EmbeddingFactory, logger *zap.Logger) (core.EmbeddingProvider, error) {
		provider, err := f.CreateEmbeddingProvider()
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := embedding.VerifyDimension(ctx, provider); err != nil {
			return nil, err
		}
		logger.Info("Embedding provider verified", zap.Int("dimension", provider.Dimension()))
		return provider, nil
	}); err != nil {
		return nil, err
	}

	// Register cache repository
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register keyword matcher
	if err := container.Provide(func(cfg *config.Config) *core.KeywordMatcher {
		return core.NewKeywordMatcher(cfg.GetStringSlice("heuristic.keywords"))
	}); err != nil {
		return nil, err
	}

	// Register classifier gateway
	if err := container.Provide(func(
		classifier core.Classifier,
		matcher *core.KeywordMatcher,
		cacheRepo core.CacheRepository,
		cacheFactory *factory.CacheFactory,
		classifierFactory *factory.ClassifierFactory,
		logger *zap.Logger,
	) (*core.ClassifierGateway, error) {
		cacheTTL, err := cacheFactory.GetCacheTTL()
		if err != nil {
			return nil, err
		}
		classifyTimeout, err := classifierFactory.GetClassifyTimeout()
		if err != nil {
			return nil, err
		}
		return core.NewClassifierGateway(
			classifier,
			matcher,
			cacheRepo,
			logger,
			cacheFactory.IsCacheEnabled(),
			cacheTTL,
			classifyTimeout,
		), nil
	}); err != nil {
		return nil, err
	}

	// Register similarity index. A missing or corrupt snapshot is not fatal:
	// the service keeps classifying and explanations degrade to heuristics.
	if err := container.Provide(func(
		f *factory.IndexFactory,
		provider core.EmbeddingProvider,
		logger *zap.Logger,
	) core.ScamIndex {
		index, err := f.LoadIndex(provider)
		if err != nil {
			logger.Warn("Similarity index unavailable, explanations will use heuristic fallback", zap.Error(err))
			return nil
		}
		return index
	}); err != nil {
		return nil, err
	}

	// Register text generator. Explanation degrades rather than blocking
	// classification when no LLM provider is configured.
	if err := container.Provide(func(f *factory.LLMFactory, logger *zap.Logger) core.TextGenerator {
		generator, err := f.CreateTextGenerator()
		if err != nil {
			logger.Warn("LLM provider unavailable, explanations will use heuristic fallback", zap.Error(err))
			return nil
		}
		return generator
	}); err != nil {
		return nil, err
	}

	// Register explanation generator
	if err := container.Provide(func(
		index core.ScamIndex,
		generator core.TextGenerator,
		cfg *config.Config,
		logger *zap.Logger,
	) (*core.ExplanationGenerator, error) {
		llmTimeout, err := cfg.GetDuration("llm.timeout")
		if err != nil {
			return nil, err
		}
		return core.NewExplanationGenerator(
			index,
			generator,
			logger,
			cfg.GetInt("index.top_k"),
			llmTimeout,
		), nil
	}); err != nil {
		return nil, err
	}

	// Register analysis service
	if err := container.Provide(core.NewAnalysisService); err != nil {
		return nil, err
	}

	// Register message filter
	if err := container.Provide(func(f *factory.FilterFactory) (ports.MessageFilter, error) {
		return f.CreateMessageFilter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
