package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// helperFunctions returns the movie-independent helpers available in every
// expression.
func helperFunctions() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(t time.Time) int {
			if t.IsZero() {
				return -1
			}
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": parseDate,
		"now":       time.Now,
		// String helpers ignore case; the built-in string operators do not
		"hasSubstr": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefix": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffix": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// compileEnvironment declares every name an expression may use, so that
// typos fail at compile time.
func compileEnvironment(custom map[string]any) map[string]any {
	env := movieEnvironment(tmdb.MovieResult{})
	maps.Copy(env, helperFunctions())
	maps.Copy(env, custom)
	return env
}

// movieEnvironment exposes a search result's fields and the helpers bound
// to it.
func movieEnvironment(m tmdb.MovieResult) map[string]any {
	released := parseDate(m.ReleaseDate)
	year := 0
	if !released.IsZero() {
		year = released.Year()
	}

	return map[string]any{
		"ID":               m.ID,
		"Title":            m.Title,
		"OriginalTitle":    m.OriginalTitle,
		"OriginalLanguage": m.OriginalLanguage,
		"Overview":         m.Overview,
		"ReleaseDate":      released,
		"Year":             year,
		"Adult":            m.Adult,
		"Video":            m.Video,
		"Popularity":       m.Popularity,
		"VoteAverage":      m.VoteAverage,
		"VoteCount":        m.VoteCount,
		"GenreIDs":         m.GenreIDs,
		"Rating":           m.Rating,
		"HasPoster":        m.PosterPath != "",

		"hasGenre": func(id int) bool {
			return slices.Contains(m.GenreIDs, id)
		},
		"hasAnyGenre": func(ids ...int) bool {
			return slices.ContainsFunc(ids, func(id int) bool {
				return slices.Contains(m.GenreIDs, id)
			})
		},
		"releasedAfter": func(t time.Time) bool {
			return !released.IsZero() && released.After(t)
		},
		"releasedBefore": func(t time.Time) bool {
			return !released.IsZero() && released.Before(t)
		},
		"isReleased": func() bool {
			return !released.IsZero() && !released.After(time.Now())
		},
	}
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}
