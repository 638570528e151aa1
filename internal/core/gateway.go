package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ClassifierGateway wraps the external spam classifier behind a total
// contract: Classify always returns a well-formed result, encoding outages
// and malformed responses as an error-fallback value instead of an error.
type ClassifierGateway struct {
	classifier   Classifier
	matcher      *KeywordMatcher
	cache        CacheRepository
	logger       *zap.Logger
	cacheEnabled bool
	cacheTTL     time.Duration
	timeout      time.Duration
}

const (
	// overrideConfidence is the fixed confidence assigned when the keyword
	// heuristic escalates a non-spam model verdict.
	overrideConfidence = 0.75

	defaultClassifyTimeout = 8 * time.Second
)

// NewClassifierGateway creates a new classifier gateway
func NewClassifierGateway(
	classifier Classifier,
	matcher *KeywordMatcher,
	cache CacheRepository,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
	timeout time.Duration,
) *ClassifierGateway {
	if timeout <= 0 {
		timeout = defaultClassifyTimeout
	}
	if matcher == nil {
		matcher = NewKeywordMatcher(nil)
	}
	return &ClassifierGateway{
		classifier:   classifier,
		matcher:      matcher,
		cache:        cache,
		logger:       logger,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
		timeout:      timeout,
	}
}

// MessageDigest returns the cache key for a message.
func MessageDigest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Classify runs the external classifier with a bounded timeout, normalizes
// its ranked output and applies the keyword heuristic. The heuristic only
// ever escalates toward spam, never away from it.
func (g *ClassifierGateway) Classify(ctx context.Context, text string) ClassificationResult {
	digest := MessageDigest(text)

	if g.cacheEnabled && g.cache != nil {
		if entry, err := g.cache.Get(ctx, digest); err == nil && entry != nil {
			g.logger.Debug("Classification cache hit", zap.String("digest", digest))
			return entry.Result
		}
	}

	result := g.classifyRemote(ctx, text)

	// Heuristic escalation. A model spam verdict is never downgraded;
	// missed scams cost more than false alarms in this domain.
	if result.Label != LabelSpam {
		if term, ok := g.matcher.Match(text); ok {
			source := SourceHeuristicModel
			if result.Source == SourceErrorFallback {
				source = SourceHeuristic
			}
			result = ClassificationResult{
				Label:      LabelSpam,
				Confidence: overrideConfidence,
				Source:     source,
				Reason:     fmt.Sprintf("keyword match: %s", term),
			}
		}
	}

	if g.cacheEnabled && g.cache != nil && result.Source != SourceErrorFallback {
		entry := &CacheEntry{
			MessageDigest: digest,
			Result:        result,
			LastSeen:      time.Now(),
			ExpiresAt:     time.Now().Add(g.cacheTTL),
		}
		if err := g.cache.Set(ctx, entry); err != nil {
			g.logger.Error("Failed to update classification cache", zap.Error(err))
		}
	}

	return result
}

// classifyRemote calls the external classifier and normalizes its response.
func (g *ClassifierGateway) classifyRemote(ctx context.Context, text string) ClassificationResult {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	predictions, err := g.classifier.Classify(ctx, text)
	if err != nil || len(predictions) == 0 {
		if err != nil {
			g.logger.Warn("Classifier unavailable", zap.Error(err))
		}
		return ClassificationResult{
			Label:      LabelUnknown,
			Confidence: 0.0,
			Source:     SourceErrorFallback,
			Reason:     "service unavailable",
		}
	}

	best := bestPrediction(predictions)
	label := mapLabel(best.Label)

	return ClassificationResult{
		Label:      label,
		Confidence: RoundConfidence(ClampScore(best.Score)),
		Source:     SourceModel,
		Reason:     fmt.Sprintf("model label %s", best.Label),
	}
}

// bestPrediction selects the entry with the maximum score. Ties keep the
// first-seen entry so normalization stays deterministic.
func bestPrediction(predictions []Prediction) Prediction {
	best := predictions[0]
	for _, p := range predictions[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best
}

// mapLabel translates the external classifier's label vocabulary into the
// internal one. LABEL_1 is the spam class of the reference SMS model.
func mapLabel(external string) Label {
	switch {
	case external == "LABEL_1":
		return LabelSpam
	case strings.EqualFold(external, "spam"):
		return LabelSpam
	default:
		return LabelHam
	}
}
