package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/tmdb"
)

var (
	movieAppend []string
	imdbLookup  bool
)

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie <id>...",
	Short: "Show movie details",
	Long: `Show details for one or more movies by TMDb id, or by IMDb id with --imdb.

Extra data can be embedded with --append, e.g. --append casts,trailers,keywords.
Several ids are fetched concurrently within the configured concurrency cap.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMovie,
}

func init() {
	rootCmd.AddCommand(movieCmd)

	movieCmd.Flags().StringSliceVarP(&movieAppend, "append", "a", nil, "extra data to embed (alternative_titles, casts, images, keywords, releases, trailers, translations, similar_movies, reviews, lists, changes, all)")
	movieCmd.Flags().BoolVar(&imdbLookup, "imdb", false, "treat the argument as an IMDb id (tt...)")
}

func runMovie(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	appendSet, err := parseAppend(movieAppend, movieAppendNames)
	if err != nil {
		return err
	}
	opts := tmdb.MovieOptions{Language: language, Append: appendSet}

	var movies []*tmdb.Movie
	if imdbLookup {
		for _, imdbID := range args {
			movie, err := client.GetMovieByIMDbID(ctx, strings.TrimSpace(imdbID), opts)
			if err != nil {
				return fmt.Errorf("failed to get movie %s: %w", imdbID, err)
			}
			movies = append(movies, movie)
		}
	} else {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		logger.Debug().Ints("ids", ids).Str("append", appendSet.Parameter(&endpoint.Values)).Msg("Fetching movies")

		movies, err = client.GetMovies(ctx, ids, opts)
		if err != nil {
			return fmt.Errorf("failed to get movies: %w", err)
		}
	}

	if jsonOutput {
		return printJSON(movies)
	}

	for i, movie := range movies {
		if movie == nil {
			fmt.Printf("Movie #%d: not found\n", i+1)
			continue
		}
		if i > 0 {
			fmt.Println(strings.Repeat("-", 80))
		}
		printMovie(movie)
	}
	return nil
}

// popularCmd lists one of TMDb's curated movie listings
var popularCmd = &cobra.Command{
	Use:       "popular [popular|top_rated|upcoming|now_playing]",
	Short:     "List popular, top rated, upcoming or now playing movies",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"popular", "top_rated", "upcoming", "now_playing"},
	RunE:      runPopular,
}

var listPage int

func init() {
	rootCmd.AddCommand(popularCmd)

	popularCmd.Flags().IntVar(&listPage, "page", 0, "result page")
	addFilterFlags(popularCmd)
}

func runPopular(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	opts := tmdb.PageOptions{Page: listPage, Language: language}

	kind := "popular"
	if len(args) == 1 {
		kind = args[0]
	}

	var (
		page *tmdb.SearchContainer[tmdb.MovieResult]
		err  error
	)
	switch kind {
	case "popular":
		page, err = client.GetPopularMovies(ctx, opts)
	case "top_rated":
		page, err = client.GetTopRatedMovies(ctx, opts)
	case "upcoming":
		page, err = client.GetUpcomingMovies(ctx, opts)
	case "now_playing":
		page, err = client.GetNowPlayingMovies(ctx, opts)
	default:
		return fmt.Errorf("unknown listing %q", kind)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s movies: %w", kind, err)
	}

	return showMoviePage(page)
}

// showMoviePage filters and prints a movie listing
func showMoviePage(page *tmdb.SearchContainer[tmdb.MovieResult]) error {
	if page == nil {
		fmt.Println("No movies found.")
		return nil
	}

	results, err := applyFilter(page.Results)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(results)
	}
	printMovieResults(page, results)
	return nil
}
