package tmdb

import (
	"context"
)

// GetConfiguration retrieves the API's image and change-key configuration.
func (c *Client) GetConfiguration(ctx context.Context) Result[*Configuration] {
	return get[*Configuration](ctx, c, c.cfg.Methods.Configuration, nil, nil)
}

// GetAuthenticationToken requests a new token that the user must approve
// before it can be exchanged for a session.
func (c *Client) GetAuthenticationToken(ctx context.Context) Result[*Token] {
	return get[*Token](ctx, c, c.cfg.Methods.AuthenticationTokenNew, nil, nil)
}

// GetSession exchanges an approved request token for a session.
func (c *Client) GetSession(ctx context.Context, requestToken string) Result[*Session] {
	p := NewParams().Add(c.cfg.Params.RequestToken, requestToken)
	return get[*Session](ctx, c, c.cfg.Methods.AuthenticationSessionNew, nil, p)
}

// GetGuestSession creates an anonymous session.
func (c *Client) GetGuestSession(ctx context.Context) Result[*GuestSession] {
	return get[*GuestSession](ctx, c, c.cfg.Methods.AuthenticationGuestSessionNew, nil, nil)
}
