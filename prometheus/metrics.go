// Package prometheus instruments the yweather pipeline with Prometheus
// counters and histograms.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "yweather"

// Request outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeHTTPError = "http_error"
	OutcomeError     = "error"
)

// Metrics holds the Prometheus collectors for the resolution pipeline.
type Metrics struct {
	Requests        *prometheus.CounterVec // labels: outcome={success,http_error,error}
	RequestDuration prometheus.Histogram   // transport round trip
	Results         *prometheus.CounterVec // labels: outcome={weather,<error code>}
	Temperature     *prometheus.GaugeVec   // labels: woeid, unit
}

// NewMetrics creates the pipeline metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Upstream requests by outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Upstream request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		Results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_total",
			Help:      "Completed resolution passes by outcome.",
		}, []string{"outcome"}),
		Temperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "temperature_degrees",
			Help:      "Latest reported temperature.",
		}, []string{"woeid", "unit"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.Requests,
			m.RequestDuration,
			m.Results,
			m.Temperature,
		)
	}

	return m
}
