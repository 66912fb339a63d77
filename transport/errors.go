package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrCircuitOpen indicates the circuit breaker rejected the call
	ErrCircuitOpen = errors.New("tmdb transport: circuit open")
	// ErrRateLimited indicates the local rate limiter could not grant a token
	ErrRateLimited = errors.New("tmdb transport: rate limited")
)

// HTTPError represents a non-2xx response
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("tmdb HTTP error: status %d from %s", e.StatusCode, e.URL)
}

// IsNotFound checks if the error indicates a not found response
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsServerError checks if the response was a 5xx
func (e *HTTPError) IsServerError() bool {
	return e.StatusCode >= 500
}
