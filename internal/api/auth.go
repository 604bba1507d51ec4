package api

import "context"

// Login exchanges credentials for a token pair. The pair is returned but not
// stored — callers decide when to commit it via SetTokens.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out TokenResponse
	if err := c.doJSON(ctx, "POST", c.url("auth", "login"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. The backend does not log the account in;
// the session store follows up with Login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var out User
	if err := c.doJSON(ctx, "POST", c.url("auth", "register"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the refresh token server-side.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh_token": refreshToken}
	return c.doJSON(ctx, "POST", c.url("auth", "logout"), body, nil)
}

// Refresh exchanges the refresh token for a fresh pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var out TokenResponse
	if err := c.doJSON(ctx, "POST", c.url("auth", "refresh"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the profile of the bearer-token holder.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.doJSON(ctx, "GET", c.url("auth", "me"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
