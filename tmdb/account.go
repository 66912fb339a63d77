package tmdb

import (
	"context"
	"net/http"
)

// GetAccount retrieves the profile behind a session.
func (c *Client) GetAccount(ctx context.Context, sessionID string) Result[*Account] {
	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	return get[*Account](ctx, c, c.cfg.Methods.Account, nil, p)
}

// GetAccountLists retrieves the lists an account has created.
func (c *Client) GetAccountLists(ctx context.Context, accountID int, sessionID string, opts PageOptions) Result[*SearchContainer[List]] {
	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	opts.apply(p, &c.cfg.Params)
	return get[*SearchContainer[List]](ctx, c, c.cfg.Methods.AccountLists, []string{itoa(accountID)}, p)
}

// GetAccountFavoriteMovies retrieves an account's favorite movies.
func (c *Client) GetAccountFavoriteMovies(ctx context.Context, accountID int, sessionID string, opts AccountMovieOptions) Result[*SearchContainer[MovieResult]] {
	return c.accountMovies(ctx, "GetAccountFavoriteMovies", c.cfg.Methods.AccountFavoriteMovies, accountID, sessionID, opts)
}

// GetAccountRatedMovies retrieves the movies an account has rated. Each
// result carries the account's rating.
func (c *Client) GetAccountRatedMovies(ctx context.Context, accountID int, sessionID string, opts AccountMovieOptions) Result[*SearchContainer[MovieResult]] {
	return c.accountMovies(ctx, "GetAccountRatedMovies", c.cfg.Methods.AccountRatedMovies, accountID, sessionID, opts)
}

// GetAccountWatchlistMovies retrieves an account's watchlist.
func (c *Client) GetAccountWatchlistMovies(ctx context.Context, accountID int, sessionID string, opts AccountMovieOptions) Result[*SearchContainer[MovieResult]] {
	return c.accountMovies(ctx, "GetAccountWatchlistMovies", c.cfg.Methods.AccountWatchlistMovies, accountID, sessionID, opts)
}

func (c *Client) accountMovies(ctx context.Context, op, template string, accountID int, sessionID string, opts AccountMovieOptions) Result[*SearchContainer[MovieResult]] {
	sortBy, err := opts.SortBy.wire(&c.cfg.Values)
	if err != nil {
		return precondition[*SearchContainer[MovieResult]](op, err)
	}
	sortOrder, err := opts.SortOrder.wire(&c.cfg.Values)
	if err != nil {
		return precondition[*SearchContainer[MovieResult]](op, err)
	}

	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	p.AddInt(c.cfg.Params.Page, opts.Page)
	p.AddString(c.cfg.Params.Language, opts.Language)
	p.AddString(c.cfg.Params.SortBy, sortBy)
	p.AddString(c.cfg.Params.SortOrder, sortOrder)

	return get[*SearchContainer[MovieResult]](ctx, c, template, []string{itoa(accountID)}, p)
}

// SetAccountFavorite adds a movie to, or removes it from, an account's
// favorites.
func (c *Client) SetAccountFavorite(ctx context.Context, accountID int, sessionID string, movieID int, favorite bool) Result[*StatusResponse] {
	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	body := mediaBody{MediaType: c.cfg.Values.MediaTypeMovie, MediaID: movieID, Favorite: &favorite}
	return send[*StatusResponse](ctx, c, http.MethodPost, c.cfg.Methods.AccountFavorite, []string{itoa(accountID)}, p, body)
}

// SetAccountWatchlist adds a movie to, or removes it from, an account's
// watchlist.
func (c *Client) SetAccountWatchlist(ctx context.Context, accountID int, sessionID string, movieID int, watchlist bool) Result[*StatusResponse] {
	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	body := mediaBody{MediaType: c.cfg.Values.MediaTypeMovie, MediaID: movieID, Watchlist: &watchlist}
	return send[*StatusResponse](ctx, c, http.MethodPost, c.cfg.Methods.AccountWatchlist, []string{itoa(accountID)}, p, body)
}
