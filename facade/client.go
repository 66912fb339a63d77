package facade

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/s0up4200/tmdbkit/metrics"
	"github.com/s0up4200/tmdbkit/tmdb"
)

// Client bounds the number of concurrent TMDb calls and turns each Result
// into a (value, error) pair according to the ThrowOnError policy.
//
// Session, account, token and configuration values are cached after the
// calls that fetch them succeed. Each is guarded by its own lock; concurrent
// writers race and the last write wins.
type Client struct {
	api           tmdb.API
	sem           *semaphore.Weighted
	maxConcurrent int
	throwOnError  bool
	logger        zerolog.Logger
	metrics       *metrics.Collector

	sessionID     cached[string]
	accountID     cached[int]
	token         cached[*tmdb.Token]
	configuration cached[*tmdb.Configuration]
}

// New creates a facade over api. By default 30 calls may run at once and
// failures are returned as *APIError.
func New(api tmdb.API, opts ...Option) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("%w: api client is required", tmdb.ErrPrecondition)
	}

	c := &Client{
		api:           api,
		maxConcurrent: DefaultMaxConcurrent,
		throwOnError:  true,
		logger:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.maxConcurrent < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, c.maxConcurrent)
	}
	c.sem = semaphore.NewWeighted(int64(c.maxConcurrent))

	return c, nil
}

// MaxConcurrent returns the concurrency cap.
func (c *Client) MaxConcurrent() int {
	return c.maxConcurrent
}

// ThrowOnError reports the unwrap policy.
func (c *Client) ThrowOnError() bool {
	return c.throwOnError
}

// API returns the wrapped client.
func (c *Client) API() tmdb.API {
	return c.api
}

// call runs fn while holding one permit and unwraps its result. The permit
// is released however fn returns, panics included.
func call[T any](ctx context.Context, c *Client, op string, fn func(context.Context) tmdb.Result[T]) (T, error) {
	var zero T

	if c.metrics != nil {
		c.metrics.Waiting.Inc()
	}
	err := c.sem.Acquire(ctx, 1)
	if c.metrics != nil {
		c.metrics.Waiting.Dec()
	}
	if err != nil {
		return zero, fmt.Errorf("%s: waiting for permit: %w", op, err)
	}
	defer c.sem.Release(1)

	if c.metrics != nil {
		c.metrics.InFlight.Inc()
		defer c.metrics.InFlight.Dec()
	}

	start := time.Now()
	res := fn(ctx)

	if c.metrics != nil {
		c.metrics.ObserveCall(op, outcome(res.Err), time.Since(start))
	}

	return unwrap(c, op, res)
}

// unwrap applies the error policy. Precondition failures are returned
// whatever the policy.
func unwrap[T any](c *Client, op string, res tmdb.Result[T]) (T, error) {
	var zero T

	if res.Err == nil {
		return res.Value, nil
	}

	if errors.Is(res.Err, tmdb.ErrPrecondition) {
		return zero, res.Err
	}

	apiErr := &APIError{Op: op, SourceURL: res.SourceURL, Status: res.Status, Err: res.Err}
	if c.throwOnError {
		return zero, apiErr
	}

	c.logger.Debug().
		Err(apiErr).
		Str("operation", op).
		Str("url", res.SourceURL).
		Msg("TMDb call failed, returning empty result")
	return zero, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, tmdb.ErrPrecondition):
		return "precondition"
	default:
		return "error"
	}
}

// cached is a lazily populated value with its own lock.
type cached[T any] struct {
	mu    sync.RWMutex
	value T
	set   bool
}

func (v *cached[T]) get(field string) (T, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.set {
		var zero T
		return zero, &NotInitializedError{Field: field}
	}
	return v.value, nil
}

func (v *cached[T]) store(value T) {
	v.mu.Lock()
	v.value = value
	v.set = true
	v.mu.Unlock()
}

func (v *cached[T]) clear() {
	v.mu.Lock()
	var zero T
	v.value = zero
	v.set = false
	v.mu.Unlock()
}
