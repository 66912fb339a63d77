package tmdb

import "github.com/s0up4200/tmdbkit/transport"

// Result is the outcome of one orchestrated call. When Err is set, Value is
// the zero value and Status may carry the API's own error payload.
type Result[T any] struct {
	Value     T
	Err       error
	Status    *StatusResponse
	ETag      string
	SourceURL string
}

// OK reports whether the call succeeded
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// StatusResponse is TMDb's status envelope, returned by mutations and in the
// body of most error responses.
type StatusResponse struct {
	Success       bool   `json:"success,omitempty"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// RawResult is the undecoded outcome of a call.
type RawResult = transport.RawResult
