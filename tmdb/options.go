package tmdb

import (
	"time"

	"github.com/s0up4200/tmdbkit/transport"
)

// Option configures a Client
type Option func(*Client)

// WithCacheLevel sets the cache hint passed to the transport on every call.
func WithCacheLevel(level transport.CacheLevel) Option {
	return func(c *Client) {
		c.cache = level
	}
}

// WithTimeout sets the per-call timeout hint. Zero leaves the transport's
// default in place.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout >= 0 {
			c.timeout = timeout
		}
	}
}
