// Package filter selects TMDb movie results with expr-lang expressions.
//
// # Usage
//
//	f, err := filter.Compile(`Year >= 2000 and VoteAverage > 7.5 and hasGenre(878)`)
//	if err != nil {
//		return err
//	}
//	matches, err := f.Apply(results.Results)
//
// # Fields
//
//   - ID, Title, OriginalTitle, OriginalLanguage, Overview
//   - ReleaseDate (time.Time, zero when unknown), Year
//   - Adult, Video, HasPoster
//   - Popularity, VoteAverage, VoteCount, GenreIDs
//   - Rating (only set in an account's rated listing)
//
// # Functions
//
//   - hasGenre(id), hasAnyGenre(ids...)
//   - releasedAfter(date), releasedBefore(date), isReleased()
//   - daysSince(date), daysAgo(n), monthsAgo(n), yearsAgo(n), parseDate("2006-01-02"), now()
//   - hasSubstr(s, sub), hasPrefix(s, prefix), hasSuffix(s, suffix), lower(s), upper(s)
//
// The hasX helpers ignore case. For a case-sensitive test use the
// operators: Title contains "Club", Title startsWith "The".
//
// Unknown names fail at compile time with a *CompilationError. Runtime
// failures, such as indexing past the end of GenreIDs, are reported as
// *EvaluationError.
package filter
