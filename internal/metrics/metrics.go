// Package metrics exposes Prometheus instrumentation for the tool-call
// surface.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the tool-call instruments on a private registry, so tests
// can create as many instances as they like without collisions.
type Metrics struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates and registers the instruments.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solidedge_tool_calls_total",
				Help: "Total tool calls by tool and outcome",
			},
			[]string{"tool", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "solidedge_tool_duration_seconds",
				Help: "Duration of tool calls, including the kernel round-trip",
			},
			[]string{"tool"},
		),
	}
	m.registry.MustRegister(m.calls, m.duration)
	return m
}

// Observe records one completed tool call.
func (m *Metrics) Observe(tool, status string, d time.Duration) {
	m.calls.WithLabelValues(tool, status).Inc()
	m.duration.WithLabelValues(tool).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
