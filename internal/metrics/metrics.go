package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
)

// Metrics collects the analysis pipeline counters exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal        *prometheus.CounterVec
	classifierFallbacks  prometheus.Counter
	explanationFallbacks prometheus.Counter
	analyzeDuration      prometheus.Histogram
}

// New creates a new metrics collection with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scambuster_requests_total",
			Help: "Total analyzed messages by verdict",
		}, []string{"verdict"}),
		classifierFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "scambuster_classifier_fallbacks_total",
			Help: "Analyses where the remote classifier was unavailable",
		}),
		explanationFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "scambuster_explanation_fallbacks_total",
			Help: "Scam verdicts explained without the retrieval pipeline",
		}),
		analyzeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "scambuster_analyze_duration_seconds",
			Help:    "End-to-end analysis latency",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Observe records one completed analysis.
func (m *Metrics) Observe(result core.AnalysisResult, duration time.Duration) {
	m.requestsTotal.WithLabelValues(string(result.Verdict)).Inc()
	m.analyzeDuration.Observe(duration.Seconds())

	if result.Verdict == core.VerdictSuspicious {
		m.classifierFallbacks.Inc()
	}
	if result.Verdict == core.VerdictScam && result.Source != "knowledge-base" {
		m.explanationFallbacks.Inc()
	}
}

// Handler returns the scrape endpoint handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
