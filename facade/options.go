package facade

import (
	"github.com/rs/zerolog"

	"github.com/s0up4200/tmdbkit/metrics"
)

// DefaultMaxConcurrent is the number of calls allowed in flight at once
const DefaultMaxConcurrent = 30

// Option configures a Client
type Option func(*Client)

// WithMaxConcurrent sets the number of calls allowed in flight at once.
// Values below one make New fail with ErrInvalidConcurrency.
func WithMaxConcurrent(n int) Option {
	return func(c *Client) {
		c.maxConcurrent = n
	}
}

// WithThrowOnError selects whether failed calls return an *APIError (true,
// the default) or the zero value and a nil error.
func WithThrowOnError(throw bool) Option {
	return func(c *Client) {
		c.throwOnError = throw
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics records call counts, durations and permit usage.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Client) {
		c.metrics = m
	}
}
