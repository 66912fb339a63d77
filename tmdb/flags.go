package tmdb

import "github.com/s0up4200/tmdbkit/endpoints"

// MovieAppend selects extra data to embed in a movie lookup through the
// append_to_response parameter.
type MovieAppend uint

const (
	AppendAlternativeTitles MovieAppend = 1 << iota
	AppendCasts
	AppendImages
	AppendKeywords
	AppendReleases
	AppendTrailers
	AppendTranslations
	AppendSimilarMovies
	AppendReviews
	AppendLists
	AppendChanges

	AppendNone MovieAppend = 0
	AppendAll  MovieAppend = AppendAlternativeTitles | AppendCasts | AppendImages | AppendKeywords |
		AppendReleases | AppendTrailers | AppendTranslations | AppendSimilarMovies |
		AppendReviews | AppendLists | AppendChanges
)

var movieAppendOrder = []MovieAppend{
	AppendAlternativeTitles,
	AppendCasts,
	AppendImages,
	AppendKeywords,
	AppendReleases,
	AppendTrailers,
	AppendTranslations,
	AppendSimilarMovies,
	AppendReviews,
	AppendLists,
	AppendChanges,
}

// Has reports whether every flag in f is set.
func (a MovieAppend) Has(f MovieAppend) bool {
	return a&f == f
}

// Parameter renders the set flags with the configured names and separator.
func (a MovieAppend) Parameter(v *endpoints.Values) string {
	return FlagsToParameter(a, movieAppendOrder, func(f MovieAppend) string {
		switch f {
		case AppendAlternativeTitles:
			return v.AppendAlternativeTitles
		case AppendCasts:
			return v.AppendCasts
		case AppendImages:
			return v.AppendImages
		case AppendKeywords:
			return v.AppendKeywords
		case AppendReleases:
			return v.AppendReleases
		case AppendTrailers:
			return v.AppendTrailers
		case AppendTranslations:
			return v.AppendTranslations
		case AppendSimilarMovies:
			return v.AppendSimilarMovies
		case AppendReviews:
			return v.AppendReviews
		case AppendLists:
			return v.AppendLists
		case AppendChanges:
			return v.AppendChanges
		}
		return ""
	}, v.AppendSeparator)
}

// PersonAppend selects extra data to embed in a person lookup.
type PersonAppend uint

const (
	PersonAppendCredits PersonAppend = 1 << iota
	PersonAppendImages
	PersonAppendChanges

	PersonAppendNone PersonAppend = 0
	PersonAppendAll  PersonAppend = PersonAppendCredits | PersonAppendImages | PersonAppendChanges
)

var personAppendOrder = []PersonAppend{
	PersonAppendCredits,
	PersonAppendImages,
	PersonAppendChanges,
}

// Has reports whether every flag in f is set.
func (a PersonAppend) Has(f PersonAppend) bool {
	return a&f == f
}

// Parameter renders the set flags with the configured names and separator.
func (a PersonAppend) Parameter(v *endpoints.Values) string {
	return FlagsToParameter(a, personAppendOrder, func(f PersonAppend) string {
		switch f {
		case PersonAppendCredits:
			return v.PersonAppendCredits
		case PersonAppendImages:
			return v.PersonAppendImages
		case PersonAppendChanges:
			return v.PersonAppendChanges
		}
		return ""
	}, v.AppendSeparator)
}
