package tmdb

import (
	"context"
	"net/http"
)

// GetMovie retrieves a movie by TMDb id. Extra data selected in
// opts.Append is embedded in the same response.
func (c *Client) GetMovie(ctx context.Context, id int, opts MovieOptions) Result[*Movie] {
	return c.movie(ctx, itoa(id), opts)
}

// GetMovieByIMDbID retrieves a movie by its IMDb id (tt0137523).
func (c *Client) GetMovieByIMDbID(ctx context.Context, imdbID string, opts MovieOptions) Result[*Movie] {
	return c.movie(ctx, imdbID, opts)
}

func (c *Client) movie(ctx context.Context, id string, opts MovieOptions) Result[*Movie] {
	p := NewParams()
	p.AddString(c.cfg.Params.Language, opts.Language)
	p.AddString(c.cfg.Params.AppendToResponse, opts.Append.Parameter(&c.cfg.Values))
	return get[*Movie](ctx, c, c.cfg.Methods.Movie, []string{id}, p)
}

// GetMovieAlternativeTitles retrieves a movie's alternative titles,
// optionally for a single country.
func (c *Client) GetMovieAlternativeTitles(ctx context.Context, id int, country string) Result[*AlternativeTitles] {
	p := NewParams().AddString(c.cfg.Params.Country, country)
	return get[*AlternativeTitles](ctx, c, c.cfg.Methods.MovieAlternativeTitles, []string{itoa(id)}, p)
}

// GetMovieCasts retrieves a movie's cast and crew.
func (c *Client) GetMovieCasts(ctx context.Context, id int) Result[*Casts] {
	return get[*Casts](ctx, c, c.cfg.Methods.MovieCasts, []string{itoa(id)}, nil)
}

// GetMovieImages retrieves a movie's posters and backdrops. Language narrows
// the images to that language plus language-neutral ones.
func (c *Client) GetMovieImages(ctx context.Context, id int, language string) Result[*Images] {
	p := NewParams().AddString(c.cfg.Params.Language, language)
	if language != "" {
		p.Add(c.cfg.Params.IncludeImageLanguage, language+",null")
	}
	return get[*Images](ctx, c, c.cfg.Methods.MovieImages, []string{itoa(id)}, p)
}

// GetMovieKeywords retrieves a movie's keywords.
func (c *Client) GetMovieKeywords(ctx context.Context, id int) Result[*Keywords] {
	return get[*Keywords](ctx, c, c.cfg.Methods.MovieKeywords, []string{itoa(id)}, nil)
}

// GetMovieReleases retrieves a movie's per-country releases.
func (c *Client) GetMovieReleases(ctx context.Context, id int) Result[*Releases] {
	return get[*Releases](ctx, c, c.cfg.Methods.MovieReleases, []string{itoa(id)}, nil)
}

// GetMovieTrailers retrieves a movie's trailers.
func (c *Client) GetMovieTrailers(ctx context.Context, id int, language string) Result[*Trailers] {
	p := NewParams().AddString(c.cfg.Params.Language, language)
	return get[*Trailers](ctx, c, c.cfg.Methods.MovieTrailers, []string{itoa(id)}, p)
}

// GetMovieTranslations retrieves the languages a movie is translated into.
func (c *Client) GetMovieTranslations(ctx context.Context, id int) Result[*Translations] {
	return get[*Translations](ctx, c, c.cfg.Methods.MovieTranslations, []string{itoa(id)}, nil)
}

// GetSimilarMovies retrieves movies similar to id.
func (c *Client) GetSimilarMovies(ctx context.Context, id int, opts PageOptions) Result[*SearchContainer[MovieResult]] {
	p := opts.apply(NewParams(), &c.cfg.Params)
	return get[*SearchContainer[MovieResult]](ctx, c, c.cfg.Methods.MovieSimilar, []string{itoa(id)}, p)
}

// GetMovieReviews retrieves user reviews of a movie.
func (c *Client) GetMovieReviews(ctx context.Context, id int, opts PageOptions) Result[*SearchContainer[Review]] {
	p := opts.apply(NewParams(), &c.cfg.Params)
	return get[*SearchContainer[Review]](ctx, c, c.cfg.Methods.MovieReviews, []string{itoa(id)}, p)
}

// GetMovieLists retrieves the lists a movie belongs to.
func (c *Client) GetMovieLists(ctx context.Context, id int, opts PageOptions) Result[*SearchContainer[List]] {
	p := opts.apply(NewParams(), &c.cfg.Params)
	return get[*SearchContainer[List]](ctx, c, c.cfg.Methods.MovieLists, []string{itoa(id)}, p)
}

// GetMovieChanges retrieves the edit history of a movie.
func (c *Client) GetMovieChanges(ctx context.Context, id int, opts DateRangeOptions) Result[*Changes] {
	p := opts.apply(NewParams(), &c.cfg.Params)
	return get[*Changes](ctx, c, c.cfg.Methods.MovieChanges, []string{itoa(id)}, p)
}

// GetLatestMovie retrieves the most recently added movie.
func (c *Client) GetLatestMovie(ctx context.Context) Result[*Movie] {
	return get[*Movie](ctx, c, c.cfg.Methods.MovieLatest, nil, nil)
}

// GetUpcomingMovies retrieves movies releasing soon.
func (c *Client) GetUpcomingMovies(ctx context.Context, opts PageOptions) Result[*SearchContainer[MovieResult]] {
	return c.movieListing(ctx, c.cfg.Methods.MovieUpcoming, opts)
}

// GetNowPlayingMovies retrieves movies currently in theatres.
func (c *Client) GetNowPlayingMovies(ctx context.Context, opts PageOptions) Result[*SearchContainer[MovieResult]] {
	return c.movieListing(ctx, c.cfg.Methods.MovieNowPlaying, opts)
}

// GetPopularMovies retrieves the current popular movies.
func (c *Client) GetPopularMovies(ctx context.Context, opts PageOptions) Result[*SearchContainer[MovieResult]] {
	return c.movieListing(ctx, c.cfg.Methods.MoviePopular, opts)
}

// GetTopRatedMovies retrieves the highest rated movies.
func (c *Client) GetTopRatedMovies(ctx context.Context, opts PageOptions) Result[*SearchContainer[MovieResult]] {
	return c.movieListing(ctx, c.cfg.Methods.MovieTopRated, opts)
}

func (c *Client) movieListing(ctx context.Context, template string, opts PageOptions) Result[*SearchContainer[MovieResult]] {
	p := opts.apply(NewParams(), &c.cfg.Params)
	return get[*SearchContainer[MovieResult]](ctx, c, template, nil, p)
}

// GetMovieAccountState retrieves the session user's favorite, rating and
// watchlist state for a movie.
func (c *Client) GetMovieAccountState(ctx context.Context, id int, sessionID string) Result[*AccountState] {
	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	return get[*AccountState](ctx, c, c.cfg.Methods.MovieAccountStates, []string{itoa(id)}, p)
}

// SetMovieRating rates a movie on behalf of a session user.
func (c *Client) SetMovieRating(ctx context.Context, id int, sessionID string, value float64) Result[*StatusResponse] {
	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	return send[*StatusResponse](ctx, c, http.MethodPost, c.cfg.Methods.MovieRating, []string{itoa(id)}, p, ratingBody{Value: value})
}

// SetMovieRatingAsGuest rates a movie on behalf of a guest session.
func (c *Client) SetMovieRatingAsGuest(ctx context.Context, id int, guestSessionID string, value float64) Result[*StatusResponse] {
	p := NewParams().Add(c.cfg.Params.GuestSessionID, guestSessionID)
	return send[*StatusResponse](ctx, c, http.MethodPost, c.cfg.Methods.MovieRating, []string{itoa(id)}, p, ratingBody{Value: value})
}
