package facade

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tmdbkit/tmdb"
)

type movieList = tmdb.SearchContainer[tmdb.MovieResult]

// GetMovie returns a movie with the extra data selected in opts.
func (c *Client) GetMovie(ctx context.Context, id int, opts tmdb.MovieOptions) (*tmdb.Movie, error) {
	return call(ctx, c, "GetMovie", func(ctx context.Context) tmdb.Result[*tmdb.Movie] {
		return c.api.GetMovie(ctx, id, opts)
	})
}

// GetMovieByIMDbID returns a movie by its IMDb id.
func (c *Client) GetMovieByIMDbID(ctx context.Context, imdbID string, opts tmdb.MovieOptions) (*tmdb.Movie, error) {
	return call(ctx, c, "GetMovieByIMDbID", func(ctx context.Context) tmdb.Result[*tmdb.Movie] {
		return c.api.GetMovieByIMDbID(ctx, imdbID, opts)
	})
}

// GetMovies fetches several movies at once, still bounded by the
// concurrency cap. Results keep the order of ids. With ThrowOnError
// disabled, failed lookups leave nil entries.
func (c *Client) GetMovies(ctx context.Context, ids []int, opts tmdb.MovieOptions) ([]*tmdb.Movie, error) {
	movies := make([]*tmdb.Movie, len(ids))
	if len(ids) == 0 {
		return movies, nil
	}

	var g errgroup.Group
	g.SetLimit(c.maxConcurrent)

	for i, id := range ids {
		g.Go(func() error {
			movie, err := c.GetMovie(ctx, id, opts)
			if err != nil {
				return err
			}
			// each goroutine owns its slot
			movies[i] = movie
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("requested", len(ids)).Msg("Fetched movie batch")
	return movies, nil
}

// GetMovieAlternativeTitles returns a movie's alternative titles.
func (c *Client) GetMovieAlternativeTitles(ctx context.Context, id int, country string) (*tmdb.AlternativeTitles, error) {
	return call(ctx, c, "GetMovieAlternativeTitles", func(ctx context.Context) tmdb.Result[*tmdb.AlternativeTitles] {
		return c.api.GetMovieAlternativeTitles(ctx, id, country)
	})
}

// GetMovieCasts returns a movie's cast and crew.
func (c *Client) GetMovieCasts(ctx context.Context, id int) (*tmdb.Casts, error) {
	return call(ctx, c, "GetMovieCasts", func(ctx context.Context) tmdb.Result[*tmdb.Casts] {
		return c.api.GetMovieCasts(ctx, id)
	})
}

// GetMovieImages returns a movie's posters and backdrops.
func (c *Client) GetMovieImages(ctx context.Context, id int, language string) (*tmdb.Images, error) {
	return call(ctx, c, "GetMovieImages", func(ctx context.Context) tmdb.Result[*tmdb.Images] {
		return c.api.GetMovieImages(ctx, id, language)
	})
}

// GetMovieKeywords returns a movie's keywords.
func (c *Client) GetMovieKeywords(ctx context.Context, id int) (*tmdb.Keywords, error) {
	return call(ctx, c, "GetMovieKeywords", func(ctx context.Context) tmdb.Result[*tmdb.Keywords] {
		return c.api.GetMovieKeywords(ctx, id)
	})
}

// GetMovieReleases returns a movie's per-country releases.
func (c *Client) GetMovieReleases(ctx context.Context, id int) (*tmdb.Releases, error) {
	return call(ctx, c, "GetMovieReleases", func(ctx context.Context) tmdb.Result[*tmdb.Releases] {
		return c.api.GetMovieReleases(ctx, id)
	})
}

// GetMovieTrailers returns a movie's trailers.
func (c *Client) GetMovieTrailers(ctx context.Context, id int, language string) (*tmdb.Trailers, error) {
	return call(ctx, c, "GetMovieTrailers", func(ctx context.Context) tmdb.Result[*tmdb.Trailers] {
		return c.api.GetMovieTrailers(ctx, id, language)
	})
}

// GetMovieTranslations returns a movie's translations.
func (c *Client) GetMovieTranslations(ctx context.Context, id int) (*tmdb.Translations, error) {
	return call(ctx, c, "GetMovieTranslations", func(ctx context.Context) tmdb.Result[*tmdb.Translations] {
		return c.api.GetMovieTranslations(ctx, id)
	})
}

// GetSimilarMovies returns movies similar to id.
func (c *Client) GetSimilarMovies(ctx context.Context, id int, opts tmdb.PageOptions) (*movieList, error) {
	return call(ctx, c, "GetSimilarMovies", func(ctx context.Context) tmdb.Result[*movieList] {
		return c.api.GetSimilarMovies(ctx, id, opts)
	})
}

// GetMovieReviews returns reviews of a movie.
func (c *Client) GetMovieReviews(ctx context.Context, id int, opts tmdb.PageOptions) (*tmdb.SearchContainer[tmdb.Review], error) {
	return call(ctx, c, "GetMovieReviews", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.Review]] {
		return c.api.GetMovieReviews(ctx, id, opts)
	})
}

// GetMovieLists returns the lists containing a movie.
func (c *Client) GetMovieLists(ctx context.Context, id int, opts tmdb.PageOptions) (*tmdb.SearchContainer[tmdb.List], error) {
	return call(ctx, c, "GetMovieLists", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.List]] {
		return c.api.GetMovieLists(ctx, id, opts)
	})
}

// GetMovieChanges returns a movie's edit history.
func (c *Client) GetMovieChanges(ctx context.Context, id int, opts tmdb.DateRangeOptions) (*tmdb.Changes, error) {
	return call(ctx, c, "GetMovieChanges", func(ctx context.Context) tmdb.Result[*tmdb.Changes] {
		return c.api.GetMovieChanges(ctx, id, opts)
	})
}

// GetLatestMovie returns the most recently added movie.
func (c *Client) GetLatestMovie(ctx context.Context) (*tmdb.Movie, error) {
	return call(ctx, c, "GetLatestMovie", c.api.GetLatestMovie)
}

// GetUpcomingMovies returns movies releasing soon.
func (c *Client) GetUpcomingMovies(ctx context.Context, opts tmdb.PageOptions) (*movieList, error) {
	return call(ctx, c, "GetUpcomingMovies", func(ctx context.Context) tmdb.Result[*movieList] {
		return c.api.GetUpcomingMovies(ctx, opts)
	})
}

// GetNowPlayingMovies returns movies in theatres.
func (c *Client) GetNowPlayingMovies(ctx context.Context, opts tmdb.PageOptions) (*movieList, error) {
	return call(ctx, c, "GetNowPlayingMovies", func(ctx context.Context) tmdb.Result[*movieList] {
		return c.api.GetNowPlayingMovies(ctx, opts)
	})
}

// GetPopularMovies returns the current popular movies.
func (c *Client) GetPopularMovies(ctx context.Context, opts tmdb.PageOptions) (*movieList, error) {
	return call(ctx, c, "GetPopularMovies", func(ctx context.Context) tmdb.Result[*movieList] {
		return c.api.GetPopularMovies(ctx, opts)
	})
}

// GetTopRatedMovies returns the highest rated movies.
func (c *Client) GetTopRatedMovies(ctx context.Context, opts tmdb.PageOptions) (*movieList, error) {
	return call(ctx, c, "GetTopRatedMovies", func(ctx context.Context) tmdb.Result[*movieList] {
		return c.api.GetTopRatedMovies(ctx, opts)
	})
}

// GetCollection returns a collection and its movies.
func (c *Client) GetCollection(ctx context.Context, id int, language string) (*tmdb.Collection, error) {
	return call(ctx, c, "GetCollection", func(ctx context.Context) tmdb.Result[*tmdb.Collection] {
		return c.api.GetCollection(ctx, id, language)
	})
}

// GetCollectionImages returns a collection's images.
func (c *Client) GetCollectionImages(ctx context.Context, id int, language string) (*tmdb.Images, error) {
	return call(ctx, c, "GetCollectionImages", func(ctx context.Context) tmdb.Result[*tmdb.Images] {
		return c.api.GetCollectionImages(ctx, id, language)
	})
}
