package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instrumentation for a harness run. It is a
// pure observability side-channel: nothing here affects measurement results.
type Metrics struct {
	IterationsCompleted prometheus.Counter
	CurrentIteration    prometheus.Gauge
	PhaseDuration       *prometheus.HistogramVec
	SamplesCollected    *prometheus.CounterVec
	RegressionsDetected prometheus.Counter

	registry *prometheus.Registry
}

// New creates and registers all harness metrics on a private registry, so
// multiple instances can coexist in one process.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.IterationsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "perf_iterations_completed_total",
			Help: "Total number of Monte Carlo iterations completed",
		},
	)

	m.CurrentIteration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "perf_current_iteration",
			Help: "Index of the iteration currently executing",
		},
	)

	m.PhaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "perf_phase_duration_seconds",
			Help:    "Duration of individual render phases",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
		},
		[]string{"renderer", "phase"},
	)

	m.SamplesCollected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "perf_samples_collected_total",
			Help: "Total number of metric samples collected per renderer",
		},
		[]string{"renderer"},
	)

	m.RegressionsDetected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "perf_regressions_detected_total",
			Help: "Total number of baseline regressions detected",
		},
	)

	m.registry.MustRegister(
		m.IterationsCompleted,
		m.CurrentIteration,
		m.PhaseDuration,
		m.SamplesCollected,
		m.RegressionsDetected,
	)

	return m
}

// Handler returns the Prometheus HTTP handler for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr. It blocks, so callers run it in a
// goroutine for the duration of the process.
func (m *Metrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return http.ListenAndServe(addr, mux)
}
