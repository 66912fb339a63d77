package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/tmdb"
)

var (
	searchYear       int
	searchAdult      bool
	searchType       string
	discoverSort     string
	discoverOrder    string
	discoverGenres   []int
	discoverAnyGenre bool
	discoverMinVotes int
	discoverMinScore float64
	discoverFrom     string
	discoverTo       string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies by title",
	Long: `Search TMDb for movies by title. Results can be narrowed further with a
filter expression, e.g. --filter 'VoteAverage > 7 and hasGenre(878)'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchYear, "year", "y", 0, "release year")
	searchCmd.Flags().BoolVar(&searchAdult, "adult", false, "include adult titles")
	searchCmd.Flags().StringVar(&searchType, "type", "", "search type (phrase, ngram)")
	searchCmd.Flags().IntVar(&listPage, "page", 0, "result page")
	addFilterFlags(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	st, err := parseSearchType(searchType)
	if err != nil {
		return err
	}

	opts := tmdb.SearchMovieOptions{
		Page:       listPage,
		Language:   language,
		Year:       searchYear,
		SearchType: st,
	}
	if cmd.Flags().Changed("adult") {
		opts.IncludeAdult = tmdb.Bool(searchAdult)
	}

	query := strings.Join(args, " ")
	logger.Info().Str("query", query).Msg("Searching movies")

	page, err := client.SearchMovie(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return showMoviePage(page)
}

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover movies by genre, rating and release date",
	Args:  cobra.NoArgs,
	RunE:  runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	discoverCmd.Flags().StringVar(&discoverSort, "sort", "", "sort by (popularity, release_date, vote_average)")
	discoverCmd.Flags().StringVar(&discoverOrder, "order", "", "sort order (asc, desc)")
	discoverCmd.Flags().IntSliceVarP(&discoverGenres, "genre", "g", nil, "genre ids")
	discoverCmd.Flags().BoolVar(&discoverAnyGenre, "any-genre", false, "match any of the genres instead of all")
	discoverCmd.Flags().IntVar(&discoverMinVotes, "min-votes", 0, "minimum vote count")
	discoverCmd.Flags().Float64Var(&discoverMinScore, "min-score", 0, "minimum vote average")
	discoverCmd.Flags().StringVar(&discoverFrom, "from", "", "released on or after (YYYY-MM-DD)")
	discoverCmd.Flags().StringVar(&discoverTo, "to", "", "released on or before (YYYY-MM-DD)")
	discoverCmd.Flags().IntVarP(&searchYear, "year", "y", 0, "release year")
	discoverCmd.Flags().IntVar(&listPage, "page", 0, "result page")
	addFilterFlags(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	f, err := buildDiscoverFilter()
	if err != nil {
		return err
	}

	page, err := client.DiscoverMovies(ctx, f)
	if err != nil {
		return fmt.Errorf("discover failed: %w", err)
	}
	return showMoviePage(page)
}

func buildDiscoverFilter() (tmdb.DiscoverFilter, error) {
	sortBy, err := parseDiscoverSort(discoverSort)
	if err != nil {
		return tmdb.DiscoverFilter{}, err
	}
	order, err := parseSortOrder(discoverOrder)
	if err != nil {
		return tmdb.DiscoverFilter{}, err
	}

	f := tmdb.DiscoverFilter{
		Page:           listPage,
		Language:       language,
		Year:           searchYear,
		VoteCountGte:   discoverMinVotes,
		VoteAverageGte: discoverMinScore,
		Genres:         discoverGenres,
		SortBy:         sortBy,
		SortOrder:      order,
	}
	if discoverAnyGenre {
		f.GenresOperator = tmdb.OperatorOr
	}

	if discoverFrom != "" {
		if f.ReleaseDateGte, err = time.Parse(time.DateOnly, discoverFrom); err != nil {
			return tmdb.DiscoverFilter{}, fmt.Errorf("invalid --from date: %w", err)
		}
	}
	if discoverTo != "" {
		if f.ReleaseDateLte, err = time.Parse(time.DateOnly, discoverTo); err != nil {
			return tmdb.DiscoverFilter{}, fmt.Errorf("invalid --to date: %w", err)
		}
	}

	return f, nil
}
