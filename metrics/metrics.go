package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded for each generate request.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics holds the collectors for the generate endpoint on their own registry.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storybot_generate_requests_total",
				Help: "Number of generate requests by content type and outcome",
			},
			[]string{"type", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storybot_generate_duration_seconds",
				Help:    "Latency of upstream generation calls",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
			},
			[]string{"type"},
		),
	}
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) ObserveRequest(contentType, outcome string) {
	m.requests.WithLabelValues(contentType, outcome).Inc()
}

func (m *Metrics) ObserveUpstream(contentType string, d time.Duration) {
	m.duration.WithLabelValues(contentType).Observe(d.Seconds())
}

// RequestCounter returns the request counter for one type and outcome.
func (m *Metrics) RequestCounter(contentType, outcome string) prometheus.Counter {
	return m.requests.WithLabelValues(contentType, outcome)
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
