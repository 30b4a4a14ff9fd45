package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "planets"

// Metrics holds the Prometheus counters, histograms, and gauges for the catalog service.
type Metrics struct {
	// Record source metrics.
	FetchRequests  *prometheus.CounterVec // labels: outcome={success,http_error,transport_error}
	FetchDuration  prometheus.Histogram
	RecordsFetched prometheus.Counter

	// Shaping metrics.
	RowsShaped  prometheus.Counter
	ShapeErrors prometheus.Counter

	ControllerState *prometheus.GaugeVec   // labels: state={loading,error,loaded}
	PageRenders     *prometheus.CounterVec // labels: format={html,json}
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates all service metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	if reg != nil {
		reg.MustRegister(
			m.FetchRequests,
			m.FetchDuration,
			m.RecordsFetched,
			m.RowsShaped,
			m.ShapeErrors,
			m.ControllerState,
			m.PageRenders,
		)
	}
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return NewMetricsWith(nil)
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_requests_total",
			Help:      "Catalog requests by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Catalog request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		RecordsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_fetched_total",
			Help:      "Total raw planet records received from the catalog.",
		}),
		RowsShaped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_shaped_total",
			Help:      "Total display rows produced by the shaping pipeline.",
		}),
		ShapeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shape_errors_total",
			Help:      "Total raw records rejected for malformed numeric fields.",
		}),
		ControllerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "controller_state",
			Help:      "1 for the request state the controller is currently in, 0 otherwise.",
		}, []string{"state"}),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Rendered catalog views by format.",
		}, []string{"format"}),
	}
}
