// Package transporttest provides an in-memory Transport for tests.
package transporttest

import (
	"context"
	"sync"
	"time"

	"github.com/s0up4200/tmdbkit/transport"
)

// Handler produces the result for a recorded request.
type Handler func(req transport.Request) transport.RawResult

// Fake records every call and answers from Handler. With Delay set, each
// call holds for that long so callers can observe how many run at once.
type Fake struct {
	Handler Handler
	Delay   time.Duration

	// Files and Bytes answer Download and Read by URL.
	Files map[string]string
	Bytes map[string][]byte

	mu        sync.Mutex
	requests  []transport.Request
	active    int
	maxActive int
}

var _ transport.Transport = (*Fake)(nil)

// New returns a fake that answers every call with json.
func New(json string) *Fake {
	return &Fake{
		Handler: func(req transport.Request) transport.RawResult {
			return transport.RawResult{SourceURL: req.URL, JSON: json}
		},
	}
}

// Call implements transport.Transport
func (f *Fake) Call(ctx context.Context, req transport.Request) transport.RawResult {
	f.enter(req)
	defer f.leave()

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return transport.RawResult{SourceURL: req.URL, Err: ctx.Err()}
		}
	}

	if f.Handler == nil {
		return transport.RawResult{SourceURL: req.URL}
	}
	res := f.Handler(req)
	if res.SourceURL == "" {
		res.SourceURL = req.URL
	}
	return res
}

// Download implements transport.Transport
func (f *Fake) Download(_ context.Context, url, fileName string, opts transport.Options) transport.FileResult {
	f.enter(transport.Request{URL: url, Options: opts})
	defer f.leave()

	if _, ok := f.Files[url]; !ok {
		return transport.FileResult{SourceURL: url, Err: &transport.HTTPError{StatusCode: 404, Status: "404 Not Found", URL: url}}
	}
	return transport.FileResult{SourceURL: url, FilePath: fileName}
}

// Read implements transport.Transport
func (f *Fake) Read(_ context.Context, url string, opts transport.Options) transport.BytesResult {
	f.enter(transport.Request{URL: url, Options: opts})
	defer f.leave()

	data, ok := f.Bytes[url]
	if !ok {
		return transport.BytesResult{SourceURL: url, Err: &transport.HTTPError{StatusCode: 404, Status: "404 Not Found", URL: url}}
	}
	return transport.BytesResult{SourceURL: url, Bytes: data}
}

// Requests returns a copy of the recorded requests in call order.
func (f *Fake) Requests() []transport.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]transport.Request(nil), f.requests...)
}

// LastRequest returns the most recent request.
func (f *Fake) LastRequest() transport.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return transport.Request{}
	}
	return f.requests[len(f.requests)-1]
}

// MaxActive returns the highest number of calls observed in flight at once.
func (f *Fake) MaxActive() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxActive
}

func (f *Fake) enter(req transport.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	f.active++
	if f.active > f.maxActive {
		f.maxActive = f.active
	}
}

func (f *Fake) leave() {
	f.mu.Lock()
	f.active--
	f.mu.Unlock()
}
