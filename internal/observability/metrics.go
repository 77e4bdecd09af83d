package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// analysis service.
type Metrics struct {
	AnalysisRequests     *prometheus.CounterVec // labels: kind={coordinates,image}, outcome={model,fallback}
	ValidationRejections *prometheus.CounterVec // labels: kind, reason={body,range,content_type,size,decode}

	// Model client metrics.
	ModelRequests *prometheus.CounterVec   // labels: kind, outcome={success,error}
	ModelDuration *prometheus.HistogramVec // labels: kind

	// Coordinate result cache metrics.
	CacheLookups *prometheus.CounterVec // labels: result={hit,miss}

	EventsPublished prometheus.Counter
	ServiceUp       prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AnalysisRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_api",
			Name:      "analysis_requests_total",
			Help:      "Completed analysis requests by kind and outcome.",
		}, []string{"kind", "outcome"}),
		ValidationRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_api",
			Name:      "validation_rejections_total",
			Help:      "Requests rejected before any model call, by reason.",
		}, []string{"kind", "reason"}),
		ModelRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_api",
			Name:      "model_requests_total",
			Help:      "Generative model calls by kind and outcome.",
		}, []string{"kind", "outcome"}),
		ModelDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flood_api",
			Name:      "model_request_duration_seconds",
			Help:      "Generative model call duration in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"kind"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_api",
			Name:      "cache_lookups_total",
			Help:      "Coordinate result cache lookups by result.",
		}, []string{"result"}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_api",
			Name:      "events_published_total",
			Help:      "Assessment events written to the events topic.",
		}),
		ServiceUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flood_api",
			Name:      "up",
			Help:      "1 while the service is running.",
		}),
	}

	prometheus.MustRegister(
		m.AnalysisRequests,
		m.ValidationRejections,
		m.ModelRequests,
		m.ModelDuration,
		m.CacheLookups,
		m.EventsPublished,
		m.ServiceUp,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		AnalysisRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flood_api", Name: "analysis_requests_total"}, []string{"kind", "outcome"}),
		ValidationRejections: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flood_api", Name: "validation_rejections_total"}, []string{"kind", "reason"}),
		ModelRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flood_api", Name: "model_requests_total"}, []string{"kind", "outcome"}),
		ModelDuration:        prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "flood_api", Name: "model_request_duration_seconds"}, []string{"kind"}),
		CacheLookups:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "flood_api", Name: "cache_lookups_total"}, []string{"result"}),
		EventsPublished:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "flood_api", Name: "events_published_total"}),
		ServiceUp:            prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "flood_api", Name: "up"}),
	}
}
