// Package observability provides metrics collection for the lookup API.
package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the metric collectors for the application.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	LookupChars     prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with its own registry.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mcpdict_requests_total",
			Help: "Total number of API requests by endpoint and status code.",
		}, []string{"endpoint", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mcpdict_request_duration_seconds",
			Help:    "API request duration in seconds by endpoint.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		LookupChars: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mcpdict_lookup_chars",
			Help:    "Distinct characters per lookup request.",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512},
		}),
	}

	collectors := []prometheus.Collector{m.RequestsTotal, m.RequestDuration, m.LookupChars}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return m, nil
}

// Handler returns the HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(endpoint string, status int, seconds float64) {
	m.RequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", status)).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(seconds)
}
