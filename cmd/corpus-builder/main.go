package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jessicaagarwal/ai-scambuster/internal/adapters/embedding"
	"github.com/jessicaagarwal/ai-scambuster/internal/adapters/vectorstore"
	"github.com/jessicaagarwal/ai-scambuster/internal/config"
	"github.com/jessicaagarwal/ai-scambuster/internal/factory"
	"github.com/jessicaagarwal/ai-scambuster/internal/ingest"
	"github.com/jessicaagarwal/ai-scambuster/internal/logging"
)

var (
	datasetPath = flag.String("dataset", "", "Path to the labelled SMS dataset (label<TAB>text)")
	outputPath  = flag.String("out", "", "Output snapshot path (defaults to index.snapshot_path)")
	batchSize   = flag.Int("batch-size", 32, "Embedding batch size")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, false)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *datasetPath == "" {
		logger.Fatal("A dataset path is required (-dataset)")
	}

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	snapshotPath := *outputPath
	if snapshotPath == "" {
		snapshotPath = cfg.GetIndex().SnapshotPath
	}

	provider, err := factory.NewEmbeddingFactory(cfg, logger).CreateEmbeddingProvider()
	if err != nil {
		logger.Fatal("Failed to create embedding provider", zap.Error(err))
	}

	ctx := context.Background()
	if err := embedding.VerifyDimension(ctx, provider); err != nil {
		logger.Fatal("Embedding provider failed startup check", zap.Error(err))
	}

	texts, err := ingest.LoadSpamDataset(*datasetPath, logger)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}
	if len(texts) == 0 {
		logger.Fatal("Dataset contains no spam samples")
	}

	builder := ingest.NewBuilder(provider, logger, *batchSize)
	examples, err := builder.Build(ctx, texts)
	if err != nil {
		logger.Fatal("Failed to embed corpus", zap.Error(err))
	}

	snap := &vectorstore.Snapshot{
		Model:     cfg.GetEmbedding().ModelName,
		Dimension: provider.Dimension(),
		Examples:  examples,
	}
	if err := vectorstore.SaveSnapshot(snapshotPath, snap); err != nil {
		logger.Fatal("Failed to write snapshot", zap.Error(err))
	}

	logger.Info("Corpus snapshot written",
		zap.String("path", snapshotPath),
		zap.Int("examples", len(examples)),
		zap.Int("dimension", provider.Dimension()))
}
