package transport

import (
	"context"
	"time"
)

// CacheLevel is an opaque caching hint. The core passes it through untouched;
// only a Transport implementation may give it meaning.
type CacheLevel int

const (
	CacheDefault CacheLevel = iota
	CacheNone
	CacheShort
	CacheLong
)

// String returns the cache level name
func (l CacheLevel) String() string {
	switch l {
	case CacheNone:
		return "none"
	case CacheShort:
		return "short"
	case CacheLong:
		return "long"
	default:
		return "default"
	}
}

// Options carries the per-call hints shared by every transport operation.
type Options struct {
	Cache   CacheLevel
	Timeout time.Duration
	UseTLS  bool
}

// Request describes a single JSON API call.
type Request struct {
	URL    string
	Method string
	Body   []byte
	Options
}

// RawResult is the outcome of a JSON call. JSON may be set even when Err is,
// since the API reports error details in the body.
type RawResult struct {
	SourceURL string
	JSON      string
	ETag      string
	Err       error
}

// FileResult is the outcome of a download to disk.
type FileResult struct {
	SourceURL string
	FilePath  string
	Err       error
}

// BytesResult is the outcome of reading a resource into memory.
type BytesResult struct {
	SourceURL string
	Bytes     []byte
	Err       error
}

// Transport performs HTTP calls on behalf of the tmdb client. Implementations
// report every failure through the result's Err field rather than panicking.
type Transport interface {
	// Call performs a JSON request and returns the body text and ETag
	Call(ctx context.Context, req Request) RawResult

	// Download streams url into fileName
	Download(ctx context.Context, url, fileName string, opts Options) FileResult

	// Read streams url into memory
	Read(ctx context.Context, url string, opts Options) BytesResult
}
