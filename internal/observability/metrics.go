package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the intake Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	SubmissionsTotal       *prometheus.CounterVec
	StoreOperationsTotal   *prometheus.CounterVec
	StoreOperationDuration *prometheus.HistogramVec
	StoreListFailures      *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors on registry. A nil registry
// gets a fresh one with Go and process collectors.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		registry: registry,
		SubmissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_submissions_total",
				Help: "Total number of lead and subscriber submissions by outcome",
			},
			[]string{"kind", "outcome"},
		),
		StoreOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_store_operations_total",
				Help: "Total number of document store operations",
			},
			[]string{"backend", "operation", "outcome"},
		),
		StoreOperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "intake_store_operation_duration_seconds",
				Help:    "Document store operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"backend", "operation"},
		),
		StoreListFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_store_list_failures_total",
				Help: "Listings that failed and were answered with an empty result",
			},
			[]string{"backend"},
		),
	}

	registry.MustRegister(
		m.SubmissionsTotal,
		m.StoreOperationsTotal,
		m.StoreOperationDuration,
		m.StoreListFailures,
	)
	return m
}

// ObserveSubmission records one submission outcome.
func (m *Metrics) ObserveSubmission(kind, outcome string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveStoreOperation records one store call.
func (m *Metrics) ObserveStoreOperation(backend, operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.StoreOperationsTotal.WithLabelValues(backend, operation, outcome).Inc()
	m.StoreOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
}

// ObserveListFailure records a swallowed listing failure.
func (m *Metrics) ObserveListFailure(backend string) {
	if m == nil {
		return
	}
	m.StoreListFailures.WithLabelValues(backend).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
