package vectorstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"go.uber.org/zap"
)

// fixedEmbedder maps known texts to fixed 3-dimensional vectors.
type fixedEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fixedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.vectors[text]
	if !ok {
		return []float32{0, 0, 0}, nil
	}
	return v, nil
}

func (f *fixedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := f.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (f *fixedEmbedder) Dimension() int { return 3 }

func testCorpus() []core.ScamExample {
	return []core.ScamExample{
		{Text: "lottery win", Tag: core.TagLotteryScam, Embedding: []float32{1, 0, 0}},
		{Text: "bank phishing", Tag: core.TagPhishing, Embedding: []float32{0, 1, 0}},
		{Text: "job offer", Tag: core.TagJobOfferScam, Embedding: []float32{0, 0, 1}},
		{Text: "romance", Tag: core.TagRomanceFraud, Embedding: []float32{0, 0.9, 0.1}},
	}
}

func newTestIndex(t *testing.T, examples []core.ScamExample) *FlatIndex {
	t.Helper()
	embedder := &fixedEmbedder{vectors: map[string][]float32{
		"near bank": {0, 1, 0},
		"origin":    {0, 0, 0},
	}}
	ix, err := NewFlatIndex(embedder, examples, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFlatIndex: %v", err)
	}
	return ix
}

func TestNewFlatIndexDimensionMismatch(t *testing.T) {
	embedder := &fixedEmbedder{}
	examples := []core.ScamExample{
		{Text: "ok", Embedding: []float32{1, 0, 0}},
		{Text: "bad", Embedding: []float32{1, 0}},
	}
	if _, err := NewFlatIndex(embedder, examples, zap.NewNop()); err == nil {
		t.Error("NewFlatIndex accepted a corpus entry with the wrong dimension")
	}
}

func TestQueryOrdering(t *testing.T) {
	ix := newTestIndex(t, testCorpus())

	got, err := ix.Query(context.Background(), "near bank", 4)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d results, want 4", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance < got[i-1].Distance {
			t.Errorf("distances not non-decreasing: %v then %v", got[i-1].Distance, got[i].Distance)
		}
	}
	if got[0].Example.Text != "bank phishing" {
		t.Errorf("nearest = %q, want %q", got[0].Example.Text, "bank phishing")
	}
	if got[0].Distance != 0 {
		t.Errorf("exact match distance = %v, want 0", got[0].Distance)
	}
}

func TestQueryLimitsToK(t *testing.T) {
	ix := newTestIndex(t, testCorpus())

	got, err := ix.Query(context.Background(), "near bank", 2)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d results, want 2", len(got))
	}

	got, err = ix.Query(context.Background(), "near bank", 100)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != ix.Size() {
		t.Errorf("k larger than corpus: got %d results, want %d", len(got), ix.Size())
	}
}

func TestQueryTiesKeepInsertionOrder(t *testing.T) {
	// All corpus entries are equidistant from the origin, so the result
	// order must be the corpus insertion order.
	examples := []core.ScamExample{
		{Text: "first", Tag: core.TagGeneralScam, Embedding: []float32{1, 0, 0}},
		{Text: "second", Tag: core.TagGeneralScam, Embedding: []float32{0, 1, 0}},
		{Text: "third", Tag: core.TagGeneralScam, Embedding: []float32{0, 0, 1}},
	}
	ix := newTestIndex(t, examples)

	got, err := ix.Query(context.Background(), "origin", 3)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if got[i].Example.Text != w {
			t.Errorf("result[%d] = %q, want %q", i, got[i].Example.Text, w)
		}
	}
}

func TestQueryEmptyIndex(t *testing.T) {
	ix := newTestIndex(t, nil)

	got, err := ix.Query(context.Background(), "anything", 3)
	if err != nil {
		t.Fatalf("Query on empty index: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %#v, want empty non-nil slice", got)
	}
}

func TestQueryNonPositiveK(t *testing.T) {
	ix := newTestIndex(t, testCorpus())
	for _, k := range []int{0, -1} {
		got, err := ix.Query(context.Background(), "near bank", k)
		if err != nil {
			t.Fatalf("Query with k=%d: %v", k, err)
		}
		if len(got) != 0 {
			t.Errorf("k=%d returned %d results, want 0", k, len(got))
		}
	}
}

func TestQueryEmbedderError(t *testing.T) {
	embedder := &fixedEmbedder{err: errors.New("embedding endpoint down")}
	ix, err := NewFlatIndex(embedder, testCorpus(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFlatIndex: %v", err)
	}
	if _, err := ix.Query(context.Background(), "anything", 3); err == nil {
		t.Error("Query ignored an embedder failure")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "index.gob")
	snap := &Snapshot{
		Model:     "all-MiniLM-L6-v2",
		Dimension: 3,
		Examples:  testCorpus(),
	}

	if err := SaveSnapshot(path, snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if !reflect.DeepEqual(loaded, snap) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, snap)
	}

	// An index rebuilt from the loaded snapshot must answer queries the
	// same way as one built from the original corpus.
	before := newTestIndex(t, snap.Examples)
	after := newTestIndex(t, loaded.Examples)
	wantResults, err := before.Query(context.Background(), "near bank", 3)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	gotResults, err := after.Query(context.Background(), "near bank", 3)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !reflect.DeepEqual(gotResults, wantResults) {
		t.Errorf("reloaded index answers differently:\ngot  %+v\nwant %+v", gotResults, wantResults)
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.gob")); err == nil {
		t.Error("LoadSnapshot succeeded on a missing file")
	}
}

func TestLoadSnapshotCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.gob")
	if err := os.WriteFile(path, []byte("not a gob stream"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("LoadSnapshot succeeded on corrupt data")
	}
}

func TestLoadSnapshotDimensionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.gob")
	snap := &Snapshot{
		Model:     "all-MiniLM-L6-v2",
		Dimension: 4,
		Examples:  testCorpus(),
	}
	if err := SaveSnapshot(path, snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("LoadSnapshot accepted entries narrower than the declared dimension")
	}
}
