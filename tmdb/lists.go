package tmdb

import (
	"context"
	"net/http"
)

// GetList retrieves a list and its items.
func (c *Client) GetList(ctx context.Context, listID string) Result[*List] {
	return get[*List](ctx, c, c.cfg.Methods.List, []string{listID}, nil)
}

// GetListItemStatus reports whether movieID is on a list.
func (c *Client) GetListItemStatus(ctx context.Context, listID string, movieID int) Result[*ListItemStatus] {
	p := NewParams().Add(c.cfg.Params.MovieID, itoa(movieID))
	return get[*ListItemStatus](ctx, c, c.cfg.Methods.ListItemStatus, []string{listID}, p)
}

// CreateList creates a list owned by the session user.
func (c *Client) CreateList(ctx context.Context, sessionID, name, description, language string) Result[*ListCreated] {
	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	body := listBody{Name: name, Description: description, Language: language}
	return send[*ListCreated](ctx, c, http.MethodPost, c.cfg.Methods.ListCreate, nil, p, body)
}

// AddListItem adds a movie to a list.
func (c *Client) AddListItem(ctx context.Context, sessionID, listID string, movieID int) Result[*StatusResponse] {
	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	return send[*StatusResponse](ctx, c, http.MethodPost, c.cfg.Methods.ListAddItem, []string{listID}, p, mediaBody{MediaID: movieID})
}

// RemoveListItem removes a movie from a list.
func (c *Client) RemoveListItem(ctx context.Context, sessionID, listID string, movieID int) Result[*StatusResponse] {
	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	return send[*StatusResponse](ctx, c, http.MethodPost, c.cfg.Methods.ListRemoveItem, []string{listID}, p, mediaBody{MediaID: movieID})
}

// DeleteList deletes a list. The request carries no body.
func (c *Client) DeleteList(ctx context.Context, sessionID, listID string) Result[*StatusResponse] {
	p := NewParams().Add(c.cfg.Params.SessionID, sessionID)
	return send[*StatusResponse](ctx, c, http.MethodDelete, c.cfg.Methods.ListDelete, []string{listID}, p, nil)
}
