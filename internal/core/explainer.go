package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ExplanationGenerator produces a human-readable rationale for a flagged
// message by retrieving similar known scams and asking a language model to
// use them as precedent. Every failure along the pipeline falls back to the
// deterministic heuristic explanation; Explain never fails.
type ExplanationGenerator struct {
	index     ScamIndex
	generator TextGenerator
	logger    *zap.Logger
	topK      int
	timeout   time.Duration
}

const (
	defaultTopK            = 3
	defaultGenerateTimeout = 15 * time.Second
)

// NewExplanationGenerator creates a new explanation generator. A nil index or
// generator puts the component into permanent degraded mode where every call
// returns the heuristic fallback; this is how the service keeps serving
// classification when the corpus snapshot is missing.
func NewExplanationGenerator(
	index ScamIndex,
	generator TextGenerator,
	logger *zap.Logger,
	topK int,
	timeout time.Duration,
) *ExplanationGenerator {
	if topK <= 0 {
		topK = defaultTopK
	}
	if timeout <= 0 {
		timeout = defaultGenerateTimeout
	}
	return &ExplanationGenerator{
		index:     index,
		generator: generator,
		logger:    logger,
		topK:      topK,
		timeout:   timeout,
	}
}

// Explain returns an explanation for the message and whether it came from
// the retrieval-augmented path. The pipeline is strictly linear with no
// retries: validate, retrieve, compose, generate. Any failure short-circuits
// to FallbackExplain.
func (g *ExplanationGenerator) Explain(ctx context.Context, text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return FallbackExplain(text), false
	}
	if g.index == nil || g.generator == nil {
		return FallbackExplain(text), false
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	examples, err := g.index.Query(ctx, text, g.topK)
	if err != nil {
		g.logger.Warn("Similarity retrieval failed", zap.Error(err))
		return FallbackExplain(text), false
	}
	if len(examples) == 0 {
		g.logger.Debug("No similar scam examples available")
		return FallbackExplain(text), false
	}

	prompt := composePrompt(text, examples)

	explanation, err := g.generator.Generate(ctx, prompt)
	if err != nil {
		g.logger.Warn("Explanation generation failed", zap.Error(err))
		return FallbackExplain(text), false
	}
	explanation = strings.TrimSpace(explanation)
	if explanation == "" {
		return FallbackExplain(text), false
	}

	return explanation, true
}

// composePrompt builds the generation prompt from the retrieved examples and
// the target message. Examples appear in index-returned order.
func composePrompt(text string, examples []ScoredExample) string {
	var b strings.Builder
	b.WriteString("You are an SMS scam explanation assistant.\n\n")
	b.WriteString("Known scam messages similar to the one under review:\n")
	for i, ex := range examples {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, ex.Example.Tag, ex.Example.Text)
	}
	b.WriteString("\nMessage under review:\n")
	fmt.Fprintf(&b, "%q\n\n", text)
	b.WriteString("Explain why this message is suspicious in under 100 words, using the context as precedent.")
	return b.String()
}
