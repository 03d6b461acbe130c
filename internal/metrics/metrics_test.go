package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", StatusClass(200))
	assert.Equal(t, "4xx", StatusClass(404))
	assert.Equal(t, "5xx", StatusClass(503))
	assert.Equal(t, "error", StatusClass(0))
}

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveGitHubRequest("forks", 200, 10*time.Millisecond)
	m.ObserveGitHubRequest("forks", 200, 10*time.Millisecond)
	m.ObserveGitHubRequest("user", 401, time.Millisecond)
	m.ObservePipelineRun("rendered")
	m.ObserveForksFound(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.githubRequests.WithLabelValues("forks", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.githubRequests.WithLabelValues("user", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pipelineRuns.WithLabelValues("rendered")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGitHubRequest("user", 200, time.Millisecond)
		m.ObservePipelineRun("skipped")
		m.ObserveForksFound(0)
	})
}
