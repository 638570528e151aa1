package ingest

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

// countingEmbedder returns one fixed vector per text and records batch sizes.
type countingEmbedder struct {
	batches [][]string
	err     error
}

func (c *countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (c *countingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.batches = append(c.batches, texts)
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(len(texts[i])), 0, 0}
	}
	return out, nil
}

func (c *countingEmbedder) Dimension() int { return 3 }

func TestBuilderBuild(t *testing.T) {
	texts := []string{
		"win a prize today",
		"we are hiring now",
		"hello from nowhere",
	}
	embedder := &countingEmbedder{}
	b := NewBuilder(embedder, zap.NewNop(), 2)

	examples, err := b.Build(context.Background(), texts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(examples) != len(texts) {
		t.Fatalf("got %d examples, want %d", len(examples), len(texts))
	}
	for i, ex := range examples {
		if ex.Text != texts[i] {
			t.Errorf("example %d text = %q, want input order preserved (%q)", i, ex.Text, texts[i])
		}
		if ex.Tag != TagText(texts[i]) {
			t.Errorf("example %d tag = %q, want %q", i, ex.Tag, TagText(texts[i]))
		}
		if len(ex.Embedding) != 3 {
			t.Errorf("example %d embedding dimension = %d, want 3", i, len(ex.Embedding))
		}
	}
	if len(embedder.batches) != 2 || len(embedder.batches[0]) != 2 || len(embedder.batches[1]) != 1 {
		t.Errorf("batch sizes = %v, want [2 1]", batchSizes(embedder.batches))
	}
}

func batchSizes(batches [][]string) []int {
	sizes := make([]int, len(batches))
	for i, b := range batches {
		sizes[i] = len(b)
	}
	return sizes
}

func TestBuilderEmbedError(t *testing.T) {
	embedder := &countingEmbedder{err: errors.New("endpoint down")}
	b := NewBuilder(embedder, zap.NewNop(), 0)
	if _, err := b.Build(context.Background(), []string{"one"}); err == nil {
		t.Error("Build ignored an embedding failure")
	}
}

func TestBuilderEmptyInput(t *testing.T) {
	b := NewBuilder(&countingEmbedder{}, zap.NewNop(), 8)
	examples, err := b.Build(context.Background(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(examples) != 0 {
		t.Errorf("got %d examples, want 0", len(examples))
	}
}
