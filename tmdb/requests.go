package tmdb

import (
	"time"

	"github.com/s0up4200/tmdbkit/endpoints"
)

// PageOptions selects a page and response language. Zero values are omitted
// from the request.
type PageOptions struct {
	Page     int
	Language string
}

func (o PageOptions) apply(p *Params, names *endpoints.Params) *Params {
	p.AddInt(names.Page, o.Page)
	p.AddString(names.Language, o.Language)
	return p
}

// DateRangeOptions bounds a change listing. Zero times are omitted.
type DateRangeOptions struct {
	Page      int
	StartDate time.Time
	EndDate   time.Time
}

func (o DateRangeOptions) apply(p *Params, names *endpoints.Params) *Params {
	p.AddInt(names.Page, o.Page)
	p.AddString(names.StartDate, formatDate(o.StartDate))
	p.AddString(names.EndDate, formatDate(o.EndDate))
	return p
}

// AccountMovieOptions pages and sorts an account's movie listings.
type AccountMovieOptions struct {
	Page      int
	Language  string
	SortBy    AccountSort
	SortOrder SortOrder
}

// MovieOptions controls a movie lookup.
type MovieOptions struct {
	Language string
	Append   MovieAppend
}

// PersonOptions controls a person lookup.
type PersonOptions struct {
	Append PersonAppend
}

// GenreMovieOptions pages a genre's movie listing.
type GenreMovieOptions struct {
	Page             int
	Language         string
	IncludeAllMovies *bool
	IncludeAdult     *bool
}

// SearchMovieOptions narrows a movie search.
type SearchMovieOptions struct {
	Page               int
	Language           string
	IncludeAdult       *bool
	Year               int
	PrimaryReleaseYear int
	SearchType         SearchType
}

// SearchPersonOptions narrows a person search.
type SearchPersonOptions struct {
	Page         int
	IncludeAdult *bool
	SearchType   SearchType
}

// SearchListOptions narrows a list search.
type SearchListOptions struct {
	Page         int
	IncludeAdult *bool
}

// Bool returns a pointer to b, for the optional flags above.
func Bool(b bool) *bool {
	return &b
}

func addBool(p *Params, name string, b *bool, v *endpoints.Values) {
	if b != nil {
		p.Add(name, boolValue(*b, v))
	}
}

type mediaBody struct {
	MediaType string `json:"media_type,omitempty"`
	MediaID   int    `json:"media_id"`
	Favorite  *bool  `json:"favorite,omitempty"`
	Watchlist *bool  `json:"watchlist,omitempty"`
}

type ratingBody struct {
	Value float64 `json:"value"`
}

type listBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language,omitempty"`
}
