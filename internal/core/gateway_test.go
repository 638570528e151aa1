package core

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type stubClassifier struct {
	predictions []Prediction
	err         error
	calls       int
}

func (s *stubClassifier) Classify(ctx context.Context, text string) ([]Prediction, error) {
	s.calls++
	return s.predictions, s.err
}

type stubCache struct {
	mu      sync.Mutex
	entries map[string]*CacheEntry
	setErr  error
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*CacheEntry)}
}

func (s *stubCache) Get(ctx context.Context, digest string) (*CacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[digest]
	if !ok {
		return nil, errors.New("not found")
	}
	return entry, nil
}

func (s *stubCache) Set(ctx context.Context, entry *CacheEntry) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.MessageDigest] = entry
	return nil
}

func (s *stubCache) Delete(ctx context.Context, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, digest)
	return nil
}

func (s *stubCache) Cleanup(ctx context.Context) error { return nil }

func newTestGateway(classifier Classifier) *ClassifierGateway {
	return NewClassifierGateway(classifier, NewKeywordMatcher(nil), nil, zap.NewNop(), false, 0, time.Second)
}

func TestClassifyNormalization(t *testing.T) {
	tests := []struct {
		name           string
		predictions    []Prediction
		text           string
		wantLabel      Label
		wantConfidence float64
		wantSource     Source
	}{
		{
			"spam label one",
			[]Prediction{{Label: "LABEL_0", Score: 0.03}, {Label: "LABEL_1", Score: 0.97}},
			"some neutral text",
			LabelSpam, 0.97, SourceModel,
		},
		{
			"ham label zero",
			[]Prediction{{Label: "LABEL_0", Score: 0.91}, {Label: "LABEL_1", Score: 0.09}},
			"want to grab lunch tomorrow?",
			LabelHam, 0.91, SourceModel,
		},
		{
			"spam literal lowercase",
			[]Prediction{{Label: "spam", Score: 0.8}},
			"some neutral text",
			LabelSpam, 0.8, SourceModel,
		},
		{
			"spam literal mixed case",
			[]Prediction{{Label: "Spam", Score: 0.8}},
			"some neutral text",
			LabelSpam, 0.8, SourceModel,
		},
		{
			"unrecognized label maps to ham",
			[]Prediction{{Label: "NEUTRAL", Score: 0.5}},
			"some neutral text",
			LabelHam, 0.5, SourceModel,
		},
		{
			"tie keeps first seen",
			[]Prediction{{Label: "LABEL_0", Score: 0.5}, {Label: "LABEL_1", Score: 0.5}},
			"some neutral text",
			LabelHam, 0.5, SourceModel,
		},
		{
			"score clamped above one",
			[]Prediction{{Label: "LABEL_1", Score: 1.4}},
			"some neutral text",
			LabelSpam, 1.0, SourceModel,
		},
		{
			"score clamped below zero",
			[]Prediction{{Label: "LABEL_1", Score: -0.2}},
			"some neutral text",
			LabelSpam, 0.0, SourceModel,
		},
		{
			"confidence rounded to two places",
			[]Prediction{{Label: "LABEL_1", Score: 0.87654}},
			"some neutral text",
			LabelSpam, 0.88, SourceModel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(&stubClassifier{predictions: tt.predictions})
			got := g.Classify(context.Background(), tt.text)
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if got.Source != tt.wantSource {
				t.Errorf("source = %q, want %q", got.Source, tt.wantSource)
			}
		})
	}
}

func TestClassifyErrorFallback(t *testing.T) {
	tests := []struct {
		name        string
		predictions []Prediction
		err         error
	}{
		{"classifier error", nil, errors.New("connection refused")},
		{"empty prediction list", []Prediction{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(&stubClassifier{predictions: tt.predictions, err: tt.err})
			got := g.Classify(context.Background(), "nothing suspicious here")
			want := ClassificationResult{
				Label:      LabelUnknown,
				Confidence: 0.0,
				Source:     SourceErrorFallback,
				Reason:     "service unavailable",
			}
			if got != want {
				t.Errorf("Classify = %+v, want %+v", got, want)
			}
		})
	}
}

func TestClassifyHeuristicEscalation(t *testing.T) {
	tests := []struct {
		name        string
		predictions []Prediction
		err         error
		text        string
		wantSource  Source
	}{
		{
			"ham verdict escalated",
			[]Prediction{{Label: "LABEL_0", Score: 0.95}},
			nil,
			"you won a free gift card, claim now",
			SourceHeuristicModel,
		},
		{
			"error fallback escalated",
			nil,
			errors.New("timeout"),
			"urgent: verify your account",
			SourceHeuristic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(&stubClassifier{predictions: tt.predictions, err: tt.err})
			got := g.Classify(context.Background(), tt.text)
			if got.Label != LabelSpam {
				t.Errorf("label = %q, want %q", got.Label, LabelSpam)
			}
			if got.Confidence != 0.75 {
				t.Errorf("confidence = %v, want 0.75", got.Confidence)
			}
			if got.Source != tt.wantSource {
				t.Errorf("source = %q, want %q", got.Source, tt.wantSource)
			}
			if !strings.HasPrefix(got.Reason, "keyword match:") {
				t.Errorf("reason = %q, want keyword match prefix", got.Reason)
			}
		})
	}
}

func TestClassifyHeuristicNeverDowngrades(t *testing.T) {
	g := newTestGateway(&stubClassifier{
		predictions: []Prediction{{Label: "LABEL_1", Score: 0.99}},
	})
	got := g.Classify(context.Background(), "congratulations, you are a lottery winner")
	if got.Label != LabelSpam {
		t.Fatalf("label = %q, want %q", got.Label, LabelSpam)
	}
	if got.Confidence != 0.99 {
		t.Errorf("confidence = %v, want model score 0.99 to be preserved", got.Confidence)
	}
	if got.Source != SourceModel {
		t.Errorf("source = %q, want %q: a model spam verdict must not be rewritten", got.Source, SourceModel)
	}
}

func TestClassifyCaching(t *testing.T) {
	classifier := &stubClassifier{predictions: []Prediction{{Label: "LABEL_1", Score: 0.9}}}
	cache := newStubCache()
	g := NewClassifierGateway(classifier, NewKeywordMatcher(nil), cache, zap.NewNop(), true, time.Hour, time.Second)

	first := g.Classify(context.Background(), "free prize inside")
	second := g.Classify(context.Background(), "free prize inside")

	if classifier.calls != 1 {
		t.Errorf("classifier called %d times, want 1 (second call should hit the cache)", classifier.calls)
	}
	if first != second {
		t.Errorf("cached result %+v differs from original %+v", second, first)
	}
}

func TestClassifyErrorFallbackNotCached(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("down")}
	cache := newStubCache()
	g := NewClassifierGateway(classifier, NewKeywordMatcher(nil), cache, zap.NewNop(), true, time.Hour, time.Second)

	g.Classify(context.Background(), "plain message with no indicators")
	if len(cache.entries) != 0 {
		t.Errorf("error-fallback result was cached; cache has %d entries", len(cache.entries))
	}
	g.Classify(context.Background(), "plain message with no indicators")
	if classifier.calls != 2 {
		t.Errorf("classifier called %d times, want 2 (outage results must be retried)", classifier.calls)
	}
}

func TestMessageDigestStable(t *testing.T) {
	a := MessageDigest("hello")
	b := MessageDigest("hello")
	c := MessageDigest("hello!")
	if a != b {
		t.Error("digest of identical text differs")
	}
	if a == c {
		t.Error("digest of different text collides")
	}
	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(a))
	}
}
