// Package metrics exposes Prometheus instrumentation for GitHub calls and
// pipeline runs. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gotofork"

// Metrics groups the service collectors
type Metrics struct {
	githubRequests *prometheus.CounterVec
	githubDuration *prometheus.HistogramVec
	pipelineRuns   *prometheus.CounterVec
	forksFound     prometheus.Histogram
}

// New creates the collectors and registers them on reg when non-nil
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		githubRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "github",
			Name:      "requests_total",
			Help:      "GitHub API requests by endpoint and status class.",
		}, []string{"endpoint", "status_class"}),
		githubDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "github",
			Name:      "request_duration_seconds",
			Help:      "GitHub API request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		pipelineRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		forksFound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "forks_found",
			Help:      "Number of forks found per fork search.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 100},
		}),
	}
	if reg != nil {
		reg.MustRegister(m.githubRequests, m.githubDuration, m.pipelineRuns, m.forksFound)
	}
	return m
}

// ObserveGitHubRequest records one GitHub call. status 0 means a transport failure.
func (m *Metrics) ObserveGitHubRequest(endpoint string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.githubRequests.WithLabelValues(endpoint, StatusClass(status)).Inc()
	m.githubDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObservePipelineRun records the outcome of one run
func (m *Metrics) ObservePipelineRun(outcome string) {
	if m == nil {
		return
	}
	m.pipelineRuns.WithLabelValues(outcome).Inc()
}

// ObserveForksFound records the size of one fork search result
func (m *Metrics) ObserveForksFound(n int) {
	if m == nil {
		return
	}
	m.forksFound.Observe(float64(n))
}

// Handler serves the exposition format for gatherer, or the default gatherer when nil
func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// StatusClass maps a status code to 2xx/3xx/4xx/5xx, or "error" for 0
func StatusClass(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
