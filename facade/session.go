package facade

import (
	"context"
	"fmt"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// ConsentFunc asks the user to approve token, typically by sending them to
// TMDb's approval page. It may block until a decision is made.
type ConsentFunc func(ctx context.Context, token *tmdb.Token) (bool, error)

// SessionID returns the cached session id.
func (c *Client) SessionID() (string, error) {
	return c.sessionID.get("session id")
}

// AccountID returns the cached account id.
func (c *Client) AccountID() (int, error) {
	return c.accountID.get("account id")
}

// AuthenticationToken returns the cached request token.
func (c *Client) AuthenticationToken() (*tmdb.Token, error) {
	return c.token.get("authentication token")
}

// Configuration returns the cached API configuration.
func (c *Client) Configuration() (*tmdb.Configuration, error) {
	return c.configuration.get("configuration")
}

// SetSessionID restores a session obtained earlier, skipping the token flow.
func (c *Client) SetSessionID(sessionID string) {
	c.sessionID.store(sessionID)
}

// SetAccountID restores an account id obtained earlier.
func (c *Client) SetAccountID(accountID int) {
	c.accountID.store(accountID)
}

// ClearSession forgets the cached session, account and token.
func (c *Client) ClearSession() {
	c.sessionID.clear()
	c.accountID.clear()
	c.token.clear()
}

// GetConfiguration fetches the API configuration and caches it.
func (c *Client) GetConfiguration(ctx context.Context) (*tmdb.Configuration, error) {
	cfg, err := call(ctx, c, "GetConfiguration", c.api.GetConfiguration)
	if err == nil && cfg != nil {
		c.configuration.store(cfg)
	}
	return cfg, err
}

// GetAuthenticationToken requests a new token and caches it.
func (c *Client) GetAuthenticationToken(ctx context.Context) (*tmdb.Token, error) {
	token, err := call(ctx, c, "GetAuthenticationToken", c.api.GetAuthenticationToken)
	if err == nil && token != nil {
		c.token.store(token)
	}
	return token, err
}

// GetSession exchanges an approved token for a session and caches the
// session id.
func (c *Client) GetSession(ctx context.Context, requestToken string) (*tmdb.Session, error) {
	session, err := call(ctx, c, "GetSession", func(ctx context.Context) tmdb.Result[*tmdb.Session] {
		return c.api.GetSession(ctx, requestToken)
	})
	if err == nil && session != nil && session.SessionID != "" {
		c.sessionID.store(session.SessionID)
	}
	return session, err
}

// GetSessionWithCachedToken exchanges the cached token for a session.
func (c *Client) GetSessionWithCachedToken(ctx context.Context) (*tmdb.Session, error) {
	token, err := c.AuthenticationToken()
	if err != nil {
		return nil, err
	}
	return c.GetSession(ctx, token.RequestToken)
}

// GetSessionWithoutToken runs the whole session flow: it requests a token,
// asks consent to approve it, and exchanges it for a session only when
// consent is given. A refusal returns a nil session and no error. No permit
// is held while consent is pending.
func (c *Client) GetSessionWithoutToken(ctx context.Context, consent ConsentFunc) (*tmdb.Session, error) {
	if consent == nil {
		return nil, fmt.Errorf("%w: consent callback is required", tmdb.ErrPrecondition)
	}

	token, err := c.GetAuthenticationToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}

	approved, err := consent(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("consent for request token: %w", err)
	}
	if !approved {
		c.logger.Debug().Msg("Request token was not approved")
		return nil, nil
	}

	return c.GetSession(ctx, token.RequestToken)
}

// GetGuestSession creates an anonymous session.
func (c *Client) GetGuestSession(ctx context.Context) (*tmdb.GuestSession, error) {
	return call(ctx, c, "GetGuestSession", c.api.GetGuestSession)
}

// GetAccount fetches the account behind the cached session and caches its
// id.
func (c *Client) GetAccount(ctx context.Context) (*tmdb.Account, error) {
	sessionID, err := c.SessionID()
	if err != nil {
		return nil, err
	}

	account, err := call(ctx, c, "GetAccount", func(ctx context.Context) tmdb.Result[*tmdb.Account] {
		return c.api.GetAccount(ctx, sessionID)
	})
	if err == nil && account != nil {
		c.accountID.store(account.ID)
	}
	return account, err
}

// accountSession returns the cached account and session ids.
func (c *Client) accountSession() (int, string, error) {
	accountID, err := c.AccountID()
	if err != nil {
		return 0, "", err
	}
	sessionID, err := c.SessionID()
	if err != nil {
		return 0, "", err
	}
	return accountID, sessionID, nil
}
