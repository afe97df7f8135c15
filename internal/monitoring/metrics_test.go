package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveFetchAttempt(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveFetchAttempt("primary", "success")
	m.ObserveFetchAttempt("primary", "success")
	m.ObserveFetchAttempt("proxy_1", "error")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FetchAttemptsTotal.WithLabelValues("primary", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchAttemptsTotal.WithLabelValues("proxy_1", "error")))
}

func TestObserveJob(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveJob("profile", 1.5)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobsTotal.WithLabelValues("profile")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveFetchAttempt("primary", "success")
		m.ObserveJob("news", 0.1)
	})
}
