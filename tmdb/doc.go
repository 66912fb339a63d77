// Package tmdb provides a typed client for the TMDb v3 movie metadata API.
//
// Every remote capability is a method on Client that builds the request URL
// from an endpoints.Config, hands it to a transport.Transport and decodes the
// response into a Result. Methods never return a bare error and never panic:
// failures travel inside the Result.
//
// # Architecture
//
//   - Builder: BuildURL, Params, FlagsToParameter, JoinIDs and EscapeQuery are pure helpers
//   - Client: one method per endpoint, grouped by area (movies, people, lists, search...)
//   - Result: the typed envelope carrying Value, Err, Status, ETag and SourceURL
//   - API: interface definition for testability and wrapping
//
// # Usage
//
//	cfg := endpoints.Defaults(os.Getenv("TMDB_API_KEY"))
//	t := transport.NewHTTPTransport(logger)
//	client, err := tmdb.NewClient(&cfg, t, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res := client.GetMovie(ctx, 550, tmdb.MovieOptions{
//		Append: tmdb.AppendCasts | tmdb.AppendTrailers,
//	})
//	if !res.OK() {
//		if res.Status != nil {
//			log.Printf("tmdb said %d: %s", res.Status.StatusCode, res.Status.StatusMessage)
//		}
//		log.Fatal(res.Err)
//	}
//	fmt.Println(res.Value.Title)
//
// # Error Handling
//
// A Result carries one of:
//
//   - transport errors (*transport.HTTPError, network errors), with Status decoded from the body when possible
//   - decode errors for malformed payloads
//   - *PreconditionError when an option has no configured wire value; nothing is sent
//
// A successful call with an empty body yields the zero Value and no error.
package tmdb
