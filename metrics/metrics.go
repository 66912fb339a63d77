// Package metrics exposes Prometheus instrumentation for the facade and the
// HTTP transport. Collectors are registered on a caller-supplied registerer so
// several clients (and tests) can coexist in one process.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector groups the tmdbkit metrics.
type Collector struct {
	// Facade metrics
	InFlight     prometheus.Gauge
	Waiting      prometheus.Gauge
	Calls        *prometheus.CounterVec
	CallDuration *prometheus.HistogramVec

	// Transport metrics
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewCollector creates and registers the collectors on reg. A nil reg
// registers nothing, which is useful for tests that only read values back.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tmdb_facade_calls_in_flight",
			Help: "Number of facade calls currently holding a concurrency permit",
		}),
		Waiting: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tmdb_facade_calls_waiting",
			Help: "Number of facade calls waiting for a concurrency permit",
		}),
		Calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tmdb_facade_calls_total",
				Help: "Total number of facade calls by operation and outcome",
			},
			[]string{"operation", "outcome"}, // outcome: "ok", "error", "precondition"
		),
		CallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tmdb_facade_call_duration_seconds",
				Help:    "Duration of facade calls, permit wait excluded",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tmdb_http_requests_total",
				Help: "Total number of HTTP requests sent to TMDb",
			},
			[]string{"method", "result"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tmdb_http_request_duration_seconds",
				Help:    "Duration of HTTP requests sent to TMDb",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// ObserveCall records a completed facade call.
func (c *Collector) ObserveCall(operation, outcome string, d time.Duration) {
	c.Calls.WithLabelValues(operation, outcome).Inc()
	c.CallDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveRequest records a completed transport request.
func (c *Collector) ObserveRequest(method, result string, d time.Duration) {
	c.Requests.WithLabelValues(method, result).Inc()
	c.RequestDuration.WithLabelValues(method).Observe(d.Seconds())
}
