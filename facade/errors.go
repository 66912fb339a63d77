package facade

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/s0up4200/tmdbkit/tmdb"
	"github.com/s0up4200/tmdbkit/transport"
)

// Common errors
var (
	// ErrNotInitialized is matched by every *NotInitializedError
	ErrNotInitialized = errors.New("facade state not initialized")
	// ErrInvalidConcurrency indicates a concurrency cap below one
	ErrInvalidConcurrency = errors.New("max concurrent calls must be at least 1")
)

// NotInitializedError reports a read of cached session state before the call
// that populates it has succeeded.
type NotInitializedError struct {
	Field string
}

// Error implements the error interface
func (e *NotInitializedError) Error() string {
	return fmt.Sprintf("%s is not initialized", e.Field)
}

// Is matches ErrNotInitialized
func (e *NotInitializedError) Is(target error) bool {
	return target == ErrNotInitialized
}

// APIError is returned for a failed TMDb call when ThrowOnError is enabled.
// It wraps the transport or decode error and carries the API's status
// payload when one was returned.
type APIError struct {
	Op        string
	SourceURL string
	Status    *tmdb.StatusResponse
	Err       error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Status != nil && e.Status.StatusMessage != "" {
		return fmt.Sprintf("tmdb %s failed: %v (status %d: %s)", e.Op, e.Err, e.Status.StatusCode, e.Status.StatusMessage)
	}
	return fmt.Sprintf("tmdb %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code, or 0 when the call failed before
// a response was received.
func (e *APIError) StatusCode() int {
	var httpErr *transport.HTTPError
	if errors.As(e.Err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode() == http.StatusNotFound || (e.Status != nil && e.Status.StatusCode == 34)
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	code := e.StatusCode()
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
