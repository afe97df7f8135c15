// Package monitoring holds the Prometheus metrics for the extraction
// pipeline.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the pipeline. A nil *Metrics
// is valid and records nothing, so components can run unmetered in tests.
type Metrics struct {
	FetchAttemptsTotal *prometheus.CounterVec
	JobsTotal          *prometheus.CounterVec
	ExtractionDuration *prometheus.HistogramVec
}

// New registers the pipeline metrics with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchAttemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "brandscope_fetch_attempts_total",
			Help: "Fetch strategy attempts by strategy name and outcome",
		}, []string{"strategy", "outcome"}),
		JobsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "brandscope_jobs_total",
			Help: "Extraction jobs completed, by kind",
		}, []string{"kind"}),
		ExtractionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "brandscope_extraction_duration_seconds",
			Help:    "End-to-end extraction duration, by kind",
			Buckets: []float64{1, 5, 10, 15, 30, 60, 120},
		}, []string{"kind"}),
	}
}

// ObserveFetchAttempt records one strategy attempt.
func (m *Metrics) ObserveFetchAttempt(strategy, outcome string) {
	if m == nil {
		return
	}
	m.FetchAttemptsTotal.WithLabelValues(strategy, outcome).Inc()
}

// ObserveJob records one completed job and its duration in seconds.
func (m *Metrics) ObserveJob(kind string, seconds float64) {
	if m == nil {
		return
	}
	m.JobsTotal.WithLabelValues(kind).Inc()
	m.ExtractionDuration.WithLabelValues(kind).Observe(seconds)
}
