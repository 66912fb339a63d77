package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/s0up4200/tmdbkit/metrics"
)

const defaultTimeout = 30 * time.Second

// HTTPTransport implements Transport on top of net/http.
type HTTPTransport struct {
	httpClient     *http.Client
	userAgent      string
	defaultTimeout time.Duration
	limiter        *rate.Limiter
	breaker        *gobreaker.CircuitBreaker[*http.Response]
	metrics        *metrics.Collector
	logger         zerolog.Logger
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates a transport with a 30 second default timeout and
// no rate limiting or circuit breaking.
func NewHTTPTransport(logger zerolog.Logger, opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		httpClient:     &http.Client{},
		userAgent:      "tmdbkit",
		defaultTimeout: defaultTimeout,
		logger:         logger,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Call performs a JSON request
func (t *HTTPTransport) Call(ctx context.Context, req Request) RawResult {
	target := resolveURL(req.URL, req.UseTLS)
	result := RawResult{SourceURL: target}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	ctx, cancel := t.withTimeout(ctx, req.Timeout)
	defer cancel()

	var body io.Reader = http.NoBody
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		result.Err = fmt.Errorf("failed to create request: %w", err)
		return result
	}
	httpReq.Header.Set("Accept", "application/json")
	if len(req.Body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	t.applyHeaders(httpReq, req.Cache)

	t.logger.Debug().
		Str("method", method).
		Str("url", target).
		Stringer("cache", req.Cache).
		Msg("Making TMDb API request")

	resp, err := t.do(ctx, httpReq)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Err = fmt.Errorf("failed to read response body: %w", err)
		return result
	}

	result.JSON = string(data)
	result.ETag = resp.Header.Get("ETag")
	if err := checkStatus(resp, target); err != nil {
		result.Err = err
	}

	return result
}

// Download streams url into fileName. A partially written file is removed on
// failure.
func (t *HTTPTransport) Download(ctx context.Context, url, fileName string, opts Options) FileResult {
	target := resolveURL(url, opts.UseTLS)
	result := FileResult{SourceURL: target}

	ctx, cancel := t.withTimeout(ctx, opts.Timeout)
	defer cancel()

	resp, err := t.get(ctx, target, opts.Cache)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, target); err != nil {
		result.Err = err
		return result
	}

	if dir := filepath.Dir(fileName); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			result.Err = fmt.Errorf("failed to create %s: %w", dir, err)
			return result
		}
	}

	f, err := os.Create(fileName)
	if err != nil {
		result.Err = fmt.Errorf("failed to create %s: %w", fileName, err)
		return result
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(fileName)
		result.Err = fmt.Errorf("failed to write %s: %w", fileName, err)
		return result
	}
	if err := f.Close(); err != nil {
		os.Remove(fileName)
		result.Err = fmt.Errorf("failed to close %s: %w", fileName, err)
		return result
	}

	if abs, err := filepath.Abs(fileName); err == nil {
		result.FilePath = abs
	} else {
		result.FilePath = fileName
	}

	return result
}

// Read streams url into memory
func (t *HTTPTransport) Read(ctx context.Context, url string, opts Options) BytesResult {
	target := resolveURL(url, opts.UseTLS)
	result := BytesResult{SourceURL: target}

	ctx, cancel := t.withTimeout(ctx, opts.Timeout)
	defer cancel()

	resp, err := t.get(ctx, target, opts.Cache)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, target); err != nil {
		result.Err = err
		return result
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Err = fmt.Errorf("failed to read response body: %w", err)
		return result
	}
	result.Bytes = data

	return result
}

func (t *HTTPTransport) get(ctx context.Context, target string, cache CacheLevel) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	t.applyHeaders(req, cache)

	t.logger.Debug().Str("url", target).Msg("Fetching TMDb resource")

	return t.do(ctx, req)
}

// do sends req through the optional rate limiter and circuit breaker.
func (t *HTTPTransport) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			t.observe(req.Method, "rate_limited", start)
			return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}

	if t.breaker == nil {
		resp, err := t.httpClient.Do(req)
		if err != nil {
			t.observe(req.Method, "error", start)
			return nil, fmt.Errorf("request failed: %w", err)
		}
		t.observe(req.Method, outcome(resp.StatusCode), start)
		return resp, nil
	}

	resp, err := t.breaker.Execute(func() (*http.Response, error) {
		resp, err := t.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			// Counted as a failure, but the response is still handed back.
			return resp, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, URL: req.URL.String()}
		}
		return resp, nil
	})

	var httpErr *HTTPError
	switch {
	case err == nil:
		t.observe(req.Method, outcome(resp.StatusCode), start)
		return resp, nil
	case errors.As(err, &httpErr) && resp != nil:
		t.observe(req.Method, outcome(resp.StatusCode), start)
		return resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		t.observe(req.Method, "rejected", start)
		t.logger.Warn().Err(err).Str("url", req.URL.String()).Msg("Request rejected by circuit breaker")
		return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	default:
		t.observe(req.Method, "error", start)
		return nil, fmt.Errorf("request failed: %w", err)
	}
}

func (t *HTTPTransport) applyHeaders(req *http.Request, cache CacheLevel) {
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if cache == CacheNone {
		req.Header.Set("Cache-Control", "no-cache")
	}
}

func (t *HTTPTransport) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = t.defaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (t *HTTPTransport) observe(method, result string, start time.Time) {
	if t.metrics != nil {
		t.metrics.ObserveRequest(method, result, time.Since(start))
	}
}

func checkStatus(resp *http.Response, target string) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, URL: target}
	}
	return nil
}

func outcome(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "server_error"
	case statusCode >= 400:
		return "client_error"
	default:
		return "ok"
	}
}

// resolveURL upgrades plain http URLs when TLS is requested.
func resolveURL(url string, useTLS bool) string {
	if useTLS && strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}
