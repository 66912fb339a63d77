package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/s0up4200/tmdbkit/tmdb"
)

var movieAppendNames = map[string]tmdb.MovieAppend{
	"alternative_titles": tmdb.AppendAlternativeTitles,
	"casts":              tmdb.AppendCasts,
	"images":             tmdb.AppendImages,
	"keywords":           tmdb.AppendKeywords,
	"releases":           tmdb.AppendReleases,
	"trailers":           tmdb.AppendTrailers,
	"translations":       tmdb.AppendTranslations,
	"similar_movies":     tmdb.AppendSimilarMovies,
	"reviews":            tmdb.AppendReviews,
	"lists":              tmdb.AppendLists,
	"changes":            tmdb.AppendChanges,
	"all":                tmdb.AppendAll,
}

var personAppendNames = map[string]tmdb.PersonAppend{
	"credits": tmdb.PersonAppendCredits,
	"images":  tmdb.PersonAppendImages,
	"changes": tmdb.PersonAppendChanges,
	"all":     tmdb.PersonAppendAll,
}

// parseAppend combines comma-separated names into a flag set
func parseAppend[F ~uint](names []string, known map[string]F) (F, error) {
	var set F
	for _, name := range names {
		for part := range strings.SplitSeq(name, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			flag, ok := known[part]
			if !ok {
				return 0, fmt.Errorf("unknown append value %q", part)
			}
			set |= flag
		}
	}
	return set, nil
}

// parseIDs converts positional arguments to ids
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		for part := range strings.SplitSeq(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid id %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parseSortOrder(s string) (tmdb.SortOrder, error) {
	switch strings.ToLower(s) {
	case "":
		return tmdb.SortOrderDefault, nil
	case "asc":
		return tmdb.SortOrderAscending, nil
	case "desc":
		return tmdb.SortOrderDescending, nil
	}
	return 0, fmt.Errorf("invalid sort order %q (must be 'asc' or 'desc')", s)
}

func parseDiscoverSort(s string) (tmdb.DiscoverSort, error) {
	switch strings.ToLower(s) {
	case "":
		return tmdb.DiscoverSortDefault, nil
	case "popularity":
		return tmdb.DiscoverSortPopularity, nil
	case "release_date":
		return tmdb.DiscoverSortReleaseDate, nil
	case "vote_average":
		return tmdb.DiscoverSortVoteAverage, nil
	}
	return 0, fmt.Errorf("invalid sort %q (must be popularity, release_date or vote_average)", s)
}

func parseSearchType(s string) (tmdb.SearchType, error) {
	switch strings.ToLower(s) {
	case "":
		return tmdb.SearchTypeDefault, nil
	case "phrase":
		return tmdb.SearchTypePhrase, nil
	case "ngram":
		return tmdb.SearchTypeNgram, nil
	}
	return 0, fmt.Errorf("invalid search type %q (must be 'phrase' or 'ngram')", s)
}
