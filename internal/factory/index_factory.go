package factory

import (
	"fmt"

	"github.com/jessicaagarwal/ai-scambuster/internal/adapters/vectorstore"
	"github.com/jessicaagarwal/ai-scambuster/internal/config"
	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"go.uber.org/zap"
)

// IndexFactory loads the persisted similarity index
type IndexFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewIndexFactory creates a new index factory
func NewIndexFactory(cfg *config.Config, logger *zap.Logger) *IndexFactory {
	return &IndexFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// LoadIndex reads the corpus snapshot and builds the in-memory index over it.
// Callers decide whether a load failure is fatal; the serving process treats
// it as a degraded mode where explanations fall back to heuristics.
func (f *IndexFactory) LoadIndex(embedder core.EmbeddingProvider) (*vectorstore.FlatIndex, error) {
	indexCfg := f.cfg.GetIndex()

	snap, err := vectorstore.LoadSnapshot(indexCfg.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load index snapshot: %w", err)
	}

	if snap.Dimension != embedder.Dimension() {
		return nil, fmt.Errorf("snapshot dimension %d does not match embedder dimension %d", snap.Dimension, embedder.Dimension())
	}
	if embeddingModel := f.cfg.GetEmbedding().ModelName; snap.Model != "" && snap.Model != embeddingModel {
		f.logger.Warn("Snapshot was built with a different embedding model",
			zap.String("snapshot_model", snap.Model),
			zap.String("configured_model", embeddingModel))
	}

	return vectorstore.NewFlatIndex(embedder, snap.Examples, f.logger)
}
