package transport

import (
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/s0up4200/tmdbkit/metrics"
)

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTPTransport) {
		if client != nil {
			t.httpClient = client
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(t *HTTPTransport) {
		t.userAgent = userAgent
	}
}

// WithDefaultTimeout sets the timeout used when a request carries none.
func WithDefaultTimeout(timeout time.Duration) Option {
	return func(t *HTTPTransport) {
		if timeout > 0 {
			t.defaultTimeout = timeout
		}
	}
}

// WithRateLimit caps outgoing requests per second. Calls that cannot get a
// token before their context ends fail with ErrRateLimited.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(t *HTTPTransport) {
		if perSecond > 0 {
			if burst < 1 {
				burst = 1
			}
			t.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// WithCircuitBreaker opens the circuit after failureThreshold consecutive
// network or 5xx failures and probes again after cooldown.
func WithCircuitBreaker(failureThreshold uint32, cooldown time.Duration) Option {
	return func(t *HTTPTransport) {
		if failureThreshold == 0 {
			return
		}
		t.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
			Name:        "tmdb-api",
			MaxRequests: 1,
			Timeout:     cooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failureThreshold
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				t.logger.Info().
					Str("breaker", name).
					Str("from", from.String()).
					Str("to", to.String()).
					Msg("Circuit breaker state transition")
			},
		})
	}
}

// WithMetrics records request outcomes on the given collector.
func WithMetrics(m *metrics.Collector) Option {
	return func(t *HTTPTransport) {
		t.metrics = m
	}
}
