// Package transport defines the port the tmdb client uses to reach the
// network, together with a net/http implementation.
//
// The tmdb package never talks to net/http directly. It hands a Request to a
// Transport and receives a RawResult holding the response text, the ETag and
// any error. Failures are values, not panics: a non-2xx status becomes an
// *HTTPError while the body is still returned, because TMDb describes errors
// in a JSON payload.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	t := transport.NewHTTPTransport(logger,
//		transport.WithRateLimit(40, 10),
//		transport.WithCircuitBreaker(5, time.Minute),
//	)
//
// The cache hint on Options is opaque to callers. HTTPTransport only maps
// CacheNone to a Cache-Control: no-cache header.
//
// # Error Handling
//
//   - HTTPError: non-2xx response, with IsNotFound/IsUnauthorized/IsServerError helpers
//   - ErrCircuitOpen: the breaker rejected the call without sending it
//   - ErrRateLimited: no rate token could be obtained before the context ended
package transport
