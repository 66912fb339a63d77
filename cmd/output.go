package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/s0up4200/tmdbkit/tmdb"
)

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

func year(date string) string {
	if len(date) < 4 {
		return "----"
	}
	return date[:4]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// printMovieResults renders a page of results as a table
func printMovieResults(page *tmdb.SearchContainer[tmdb.MovieResult], results []tmdb.MovieResult) {
	if len(results) == 0 {
		fmt.Println("No movies found.")
		return
	}

	fmt.Println(strings.Repeat("━", 85))
	fmt.Printf("%-8s %-50s %-6s %-7s %s\n", "ID", "TITLE", "YEAR", "RATING", "VOTES")
	fmt.Println(strings.Repeat("━", 85))
	for _, m := range results {
		fmt.Printf("%-8d %-50s %-6s %-7.1f %d\n", m.ID, truncate(m.Title, 48), year(m.ReleaseDate), m.VoteAverage, m.VoteCount)
	}
	fmt.Println(strings.Repeat("━", 85))

	if page != nil {
		fmt.Printf("Page %d of %d (%d results in total, %d shown)\n", page.Page, page.TotalPages, page.TotalResults, len(results))
	}
}

func printMovie(m *tmdb.Movie) {
	fmt.Printf("%s (%s)\n", m.Title, year(m.ReleaseDate))
	if m.Tagline != "" {
		fmt.Printf("  %s\n", m.Tagline)
	}
	fmt.Printf("  TMDb ID: %d", m.ID)
	if m.IMDbID != "" {
		fmt.Printf("  IMDb: %s", m.IMDbID)
	}
	fmt.Println()
	if m.Runtime > 0 {
		fmt.Printf("  Runtime: %d min\n", m.Runtime)
	}
	fmt.Printf("  Rating: %.1f (%d votes)\n", m.VoteAverage, m.VoteCount)

	if len(m.Genres) > 0 {
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		fmt.Printf("  Genres: %s\n", strings.Join(names, ", "))
	}
	if m.PosterPath != "" {
		fmt.Printf("  Poster: %s\n", client.ImageURL("w500", m.PosterPath))
	}
	if m.Overview != "" {
		fmt.Printf("\n%s\n", m.Overview)
	}

	if m.Casts != nil && len(m.Casts.Cast) > 0 {
		fmt.Println("\nCast:")
		for _, c := range m.Casts.Cast[:min(10, len(m.Casts.Cast))] {
			fmt.Printf("  • %s as %s\n", c.Name, c.Character)
		}
	}
	if m.Trailers != nil {
		for _, t := range m.Trailers.YouTube {
			fmt.Printf("  Trailer: %s https://www.youtube.com/watch?v=%s\n", t.Name, t.Source)
		}
	}
	if m.Keywords != nil && len(m.Keywords.Keywords) > 0 {
		names := make([]string, len(m.Keywords.Keywords))
		for i, k := range m.Keywords.Keywords {
			names[i] = k.Name
		}
		fmt.Printf("\nKeywords: %s\n", strings.Join(names, ", "))
	}
}
