package facade

import (
	"context"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// GetAccountLists returns the lists of the cached account.
func (c *Client) GetAccountLists(ctx context.Context, opts tmdb.PageOptions) (*tmdb.SearchContainer[tmdb.List], error) {
	accountID, sessionID, err := c.accountSession()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "GetAccountLists", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.List]] {
		return c.api.GetAccountLists(ctx, accountID, sessionID, opts)
	})
}

// GetAccountFavoriteMovies returns the favorites of the cached account.
func (c *Client) GetAccountFavoriteMovies(ctx context.Context, opts tmdb.AccountMovieOptions) (*tmdb.SearchContainer[tmdb.MovieResult], error) {
	accountID, sessionID, err := c.accountSession()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "GetAccountFavoriteMovies", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.MovieResult]] {
		return c.api.GetAccountFavoriteMovies(ctx, accountID, sessionID, opts)
	})
}

// GetAccountRatedMovies returns the movies the cached account has rated.
func (c *Client) GetAccountRatedMovies(ctx context.Context, opts tmdb.AccountMovieOptions) (*tmdb.SearchContainer[tmdb.MovieResult], error) {
	accountID, sessionID, err := c.accountSession()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "GetAccountRatedMovies", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.MovieResult]] {
		return c.api.GetAccountRatedMovies(ctx, accountID, sessionID, opts)
	})
}

// GetAccountWatchlistMovies returns the watchlist of the cached account.
func (c *Client) GetAccountWatchlistMovies(ctx context.Context, opts tmdb.AccountMovieOptions) (*tmdb.SearchContainer[tmdb.MovieResult], error) {
	accountID, sessionID, err := c.accountSession()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "GetAccountWatchlistMovies", func(ctx context.Context) tmdb.Result[*tmdb.SearchContainer[tmdb.MovieResult]] {
		return c.api.GetAccountWatchlistMovies(ctx, accountID, sessionID, opts)
	})
}

// SetFavorite marks or unmarks a movie as a favorite of the cached account.
func (c *Client) SetFavorite(ctx context.Context, movieID int, favorite bool) (*tmdb.StatusResponse, error) {
	accountID, sessionID, err := c.accountSession()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "SetFavorite", func(ctx context.Context) tmdb.Result[*tmdb.StatusResponse] {
		return c.api.SetAccountFavorite(ctx, accountID, sessionID, movieID, favorite)
	})
}

// SetWatchlist adds a movie to, or removes it from, the cached account's
// watchlist.
func (c *Client) SetWatchlist(ctx context.Context, movieID int, watchlist bool) (*tmdb.StatusResponse, error) {
	accountID, sessionID, err := c.accountSession()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "SetWatchlist", func(ctx context.Context) tmdb.Result[*tmdb.StatusResponse] {
		return c.api.SetAccountWatchlist(ctx, accountID, sessionID, movieID, watchlist)
	})
}

// GetMovieAccountState returns the cached session's state for a movie.
func (c *Client) GetMovieAccountState(ctx context.Context, movieID int) (*tmdb.AccountState, error) {
	sessionID, err := c.SessionID()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "GetMovieAccountState", func(ctx context.Context) tmdb.Result[*tmdb.AccountState] {
		return c.api.GetMovieAccountState(ctx, movieID, sessionID)
	})
}

// RateMovie rates a movie as the cached session user.
func (c *Client) RateMovie(ctx context.Context, movieID int, value float64) (*tmdb.StatusResponse, error) {
	sessionID, err := c.SessionID()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "RateMovie", func(ctx context.Context) tmdb.Result[*tmdb.StatusResponse] {
		return c.api.SetMovieRating(ctx, movieID, sessionID, value)
	})
}

// RateMovieAsGuest rates a movie with a guest session.
func (c *Client) RateMovieAsGuest(ctx context.Context, movieID int, guestSessionID string, value float64) (*tmdb.StatusResponse, error) {
	return call(ctx, c, "RateMovieAsGuest", func(ctx context.Context) tmdb.Result[*tmdb.StatusResponse] {
		return c.api.SetMovieRatingAsGuest(ctx, movieID, guestSessionID, value)
	})
}

// CreateList creates a list owned by the cached session user.
func (c *Client) CreateList(ctx context.Context, name, description, language string) (*tmdb.ListCreated, error) {
	sessionID, err := c.SessionID()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "CreateList", func(ctx context.Context) tmdb.Result[*tmdb.ListCreated] {
		return c.api.CreateList(ctx, sessionID, name, description, language)
	})
}

// AddListItem adds a movie to a list owned by the cached session user.
func (c *Client) AddListItem(ctx context.Context, listID string, movieID int) (*tmdb.StatusResponse, error) {
	sessionID, err := c.SessionID()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "AddListItem", func(ctx context.Context) tmdb.Result[*tmdb.StatusResponse] {
		return c.api.AddListItem(ctx, sessionID, listID, movieID)
	})
}

// RemoveListItem removes a movie from a list owned by the cached session
// user.
func (c *Client) RemoveListItem(ctx context.Context, listID string, movieID int) (*tmdb.StatusResponse, error) {
	sessionID, err := c.SessionID()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "RemoveListItem", func(ctx context.Context) tmdb.Result[*tmdb.StatusResponse] {
		return c.api.RemoveListItem(ctx, sessionID, listID, movieID)
	})
}

// DeleteList deletes a list owned by the cached session user.
func (c *Client) DeleteList(ctx context.Context, listID string) (*tmdb.StatusResponse, error) {
	sessionID, err := c.SessionID()
	if err != nil {
		return nil, err
	}
	return call(ctx, c, "DeleteList", func(ctx context.Context) tmdb.Result[*tmdb.StatusResponse] {
		return c.api.DeleteList(ctx, sessionID, listID)
	})
}
