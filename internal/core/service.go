package core

import (
	"context"

	"go.uber.org/zap"
)

// AnalysisService sequences classification and explanation into the stable
// response contract. The verdict mapping is total: every label value routes
// to exactly one verdict.
type AnalysisService struct {
	gateway   *ClassifierGateway
	explainer *ExplanationGenerator
	logger    *zap.Logger
}

const (
	iconScam       = "🚨"
	iconSafe       = "✅"
	iconSuspicious = "⚠️"

	// sourceKnowledgeBase marks an explanation that came from the
	// retrieval-augmented path rather than the classifier alone.
	sourceKnowledgeBase = "knowledge-base"
	sourceClassifier    = "classifier"

	reasonSafe       = "no scam indicators found"
	reasonSuspicious = "unable to confidently classify the message"
)

// NewAnalysisService creates a new analysis service
func NewAnalysisService(gateway *ClassifierGateway, explainer *ExplanationGenerator, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		gateway:   gateway,
		explainer: explainer,
		logger:    logger,
	}
}

// Analyze classifies a message and, when it is flagged as spam, generates an
// explanation. The result is always well-formed regardless of which external
// dependencies were reachable.
func (s *AnalysisService) Analyze(ctx context.Context, message string) AnalysisResult {
	classification := s.gateway.Classify(ctx, message)

	switch classification.Label {
	case LabelSpam:
		explanation, viaRetrieval := s.explainer.Explain(ctx, message)
		source := string(classification.Source)
		if viaRetrieval {
			source = sourceKnowledgeBase
		}
		s.logger.Info("Message flagged as scam",
			zap.String("source", source),
			zap.Float64("confidence", classification.Confidence))
		return AnalysisResult{
			Verdict:    VerdictScam,
			Icon:       iconScam,
			Label:      LabelSpam,
			Confidence: RoundConfidence(classification.Confidence),
			Source:     source,
			Reason:     explanation,
		}
	case LabelHam:
		return AnalysisResult{
			Verdict:    VerdictSafe,
			Icon:       iconSafe,
			Label:      LabelHam,
			Confidence: RoundConfidence(classification.Confidence),
			Source:     sourceClassifier,
			Reason:     reasonSafe,
		}
	default:
		// Unknown covers classifier outages; the message is neither
		// cleared nor condemned.
		return AnalysisResult{
			Verdict:    VerdictSuspicious,
			Icon:       iconSuspicious,
			Label:      LabelUnknown,
			Confidence: RoundConfidence(classification.Confidence),
			Source:     sourceClassifier,
			Reason:     reasonSuspicious,
		}
	}
}
