package core

import (
	"math"
	"time"
)

// Label is the normalized classification label for a message.
type Label string

const (
	LabelSpam    Label = "spam"
	LabelHam     Label = "ham"
	LabelUnknown Label = "unknown"
)

// Source identifies which part of the pipeline produced a classification.
type Source string

const (
	SourceModel          Source = "model"
	SourceHeuristic      Source = "heuristic"
	SourceHeuristicModel Source = "heuristic+model"
	SourceErrorFallback  Source = "error-fallback"
)

// Verdict is the user-facing outcome of a full analysis.
type Verdict string

const (
	VerdictScam       Verdict = "SCAM"
	VerdictSafe       Verdict = "SAFE"
	VerdictSuspicious Verdict = "SUSPICIOUS"
)

// ScamTag categorizes a known scam example in the corpus.
type ScamTag string

const (
	TagLotteryScam     ScamTag = "lottery_scam"
	TagJobOfferScam    ScamTag = "job_offer_scam"
	TagAdvanceFeeFraud ScamTag = "advance_fee_fraud"
	TagRomanceFraud    ScamTag = "romance_fraud"
	TagPhishing        ScamTag = "phishing"
	TagGeneralScam     ScamTag = "general_scam"
)

// ScamExample is one entry of the known-scam corpus. Examples are immutable
// once ingested; the embedding dimension must match the embedding provider
// used at query time.
type ScamExample struct {
	Text      string
	Tag       ScamTag
	Embedding []float32
}

// ScoredExample is a corpus entry returned from a similarity query together
// with its L2 distance to the query vector. Lower distance means more similar.
type ScoredExample struct {
	Example  ScamExample
	Distance float32
}

// Prediction is one normalized label/score pair from the external classifier.
type Prediction struct {
	Label string
	Score float64
}

// ClassificationResult is the gateway's verdict for a single message.
// It is always well-formed: failures of the external classifier are encoded
// in Label/Source rather than surfaced as errors.
type ClassificationResult struct {
	Label      Label
	Confidence float64
	Source     Source
	Reason     string
}

// AnalysisResult is the stable response contract for a full analysis.
type AnalysisResult struct {
	Verdict    Verdict `json:"verdict"`
	Icon       string  `json:"icon"`
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Reason     string  `json:"reason"`
}

// CacheEntry is a cached classification keyed by the message digest.
type CacheEntry struct {
	MessageDigest string
	Result        ClassificationResult
	LastSeen      time.Time
	ExpiresAt     time.Time
}

// RoundConfidence rounds a confidence value to two decimal places for
// presentation.
func RoundConfidence(v float64) float64 {
	return math.Round(v*100) / 100
}

// ClampScore clamps a raw classifier score into [0,1].
func ClampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
