// Package metrics holds the Prometheus metrics of the flight function.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates Prometheus metrics on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ActiveRequests  *prometheus.GaugeVec
	Invocations     *prometheus.CounterVec
	AgentDuration   prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with a custom registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightinfo_http_requests_total",
				Help: "Total number of HTTP requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightinfo_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		ActiveRequests: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightinfo_http_active_requests",
				Help: "Number of currently active HTTP requests",
			},
			[]string{"endpoint"},
		),
		Invocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightinfo_invocations_total",
				Help: "Total number of function invocations by outcome",
			},
			[]string{"outcome"},
		),
		AgentDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "flightinfo_agent_request_duration_seconds",
				Help:    "Duration of completion agent calls in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 90},
			},
		),
	}

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	for _, outcome := range []string{"success", "validation_error", "server_error"} {
		m.Invocations.WithLabelValues(outcome).Add(0)
	}

	return m
}

// ObserveInvocation counts one invocation outcome. Safe on a nil receiver.
func (m *Metrics) ObserveInvocation(outcome string) {
	if m == nil {
		return
	}
	m.Invocations.WithLabelValues(outcome).Inc()
}

// ObserveAgent records the duration of one agent call. Safe on a nil receiver.
func (m *Metrics) ObserveAgent(seconds float64) {
	if m == nil {
		return
	}
	m.AgentDuration.Observe(seconds)
}

// Handler returns a handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: false,
	})
}
