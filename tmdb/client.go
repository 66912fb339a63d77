package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/s0up4200/tmdbkit/endpoints"
	"github.com/s0up4200/tmdbkit/transport"
)

// Client turns method calls into TMDb requests and decodes the responses into
// typed results. It holds no mutable state and is safe for concurrent use.
type Client struct {
	cfg       *endpoints.Config
	transport transport.Transport
	logger    zerolog.Logger
	cache     transport.CacheLevel
	timeout   time.Duration
}

var _ API = (*Client)(nil)

// NewClient creates a client that reads every path, parameter name and wire
// value from cfg. The configuration is read on each call, so edits made
// through the same pointer take effect immediately.
func NewClient(cfg *endpoints.Config, t transport.Transport, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: endpoint configuration is required", ErrPrecondition)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: transport is required", ErrPrecondition)
	}

	c := &Client{
		cfg:       cfg,
		transport: t,
		logger:    logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Config returns the endpoint configuration the client reads from.
func (c *Client) Config() *endpoints.Config {
	return c.cfg
}

func (c *Client) options() transport.Options {
	return transport.Options{
		Cache:   c.cache,
		Timeout: c.timeout,
		UseTLS:  c.cfg.UseTLS,
	}
}

func (c *Client) buildURL(template string, args []string, params *Params) string {
	return BuildURL(c.cfg.BaseURL, template, args, c.cfg.Params.APIKey, c.cfg.APIKey, params)
}

func (c *Client) call(ctx context.Context, method, url string, body []byte) transport.RawResult {
	return c.transport.Call(ctx, transport.Request{
		URL:     url,
		Method:  method,
		Body:    body,
		Options: c.options(),
	})
}

// CallRaw issues a GET against an arbitrary path template and returns the
// undecoded response. Useful for endpoints this package does not model.
func (c *Client) CallRaw(ctx context.Context, template string, args []string, params *Params) RawResult {
	return c.call(ctx, http.MethodGet, c.buildURL(template, args, params), nil)
}

// get performs a GET request and decodes the response into T.
func get[T any](ctx context.Context, c *Client, template string, args []string, params *Params) Result[T] {
	raw := c.call(ctx, http.MethodGet, c.buildURL(template, args, params), nil)
	return decode[T](c, raw)
}

// send performs a request carrying a JSON body. A nil body sends none.
func send[T any](ctx context.Context, c *Client, method, template string, args []string, params *Params, body any) Result[T] {
	url := c.buildURL(template, args, params)

	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			return Result[T]{SourceURL: url, Err: fmt.Errorf("failed to encode request body: %w", err)}
		}
	}

	raw := c.call(ctx, method, url, data)
	return decode[T](c, raw)
}

// decode converts a raw transport result into a typed envelope. It never
// panics: a panic raised while decoding is reported as the envelope error.
func decode[T any](c *Client, raw transport.RawResult) (result Result[T]) {
	result.SourceURL = raw.SourceURL

	defer func() {
		if r := recover(); r != nil {
			result = Result[T]{
				SourceURL: raw.SourceURL,
				Err:       fmt.Errorf("decode %s: panic: %v", raw.SourceURL, r),
			}
		}
	}()

	body := strings.TrimSpace(raw.JSON)

	if raw.Err != nil {
		result.Err = raw.Err
		if body != "" {
			var status StatusResponse
			if err := json.Unmarshal([]byte(body), &status); err != nil {
				c.logger.Debug().Err(err).Str("url", raw.SourceURL).Msg("Error body is not a status response")
			} else {
				result.Status = &status
			}
		}
		return result
	}

	result.ETag = raw.ETag
	if body == "" {
		return result
	}

	var value T
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		result.Err = fmt.Errorf("decode %s: %w", raw.SourceURL, err)
		return result
	}
	result.Value = value

	return result
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// precondition wraps err as the envelope of a call that was never sent.
func precondition[T any](op string, err error) Result[T] {
	var pe *PreconditionError
	if errors.As(err, &pe) && pe.Op == "" {
		pe.Op = op
	}
	return Result[T]{Err: err}
}
