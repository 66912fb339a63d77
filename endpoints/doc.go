// Package endpoints holds the wire-level vocabulary of the TMDb v3 API.
//
// Rather than scattering literal paths and query names through the client,
// every method template, parameter name and enum value lives in a single
// Config value. The tmdb package reads from it on every call, which lets an
// application ship corrected values (for example after an API rename) by
// persisting a new Config instead of rebuilding.
//
// # Usage
//
//	cfg := endpoints.Defaults(os.Getenv("TMDB_API_KEY"))
//
//	// Persist alongside other settings
//	if err := endpoints.Save("endpoints.yaml", cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Restore later
//	cfg, err := endpoints.Load("endpoints.yaml")
//
// Method templates use positional placeholders ({0}, {1}) that the request
// builder substitutes in order.
package endpoints
