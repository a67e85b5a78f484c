package client

import "context"

// Login exchanges credentials for a session. Credential persistence is
// the caller's job; the client only reads tokens back through its
// TokenStore.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var s Session
	err := c.post(ctx, "/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &s)
	return s, err
}

// Register creates a customer account and returns the initial session.
func (c *Client) Register(ctx context.Context, name, email, password, phone, address string) (Session, error) {
	var s Session
	err := c.post(ctx, "/v1/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"phone":    phone,
		"address":  address,
	}, &s)
	return s, err
}

// Refresh rotates a refresh token for a fresh session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	var s Session
	err := c.post(ctx, "/v1/auth/refresh", map[string]string{
		"refresh_token": refreshToken,
	}, &s)
	return s, err
}

// Logout revokes the given refresh token server-side.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.post(ctx, "/v1/auth/logout", map[string]string{
		"refresh_token": refreshToken,
	}, nil)
}

// Me fetches the authenticated account's profile.
func (c *Client) Me(ctx context.Context) (Account, error) {
	var out struct {
		User Account `json:"user"`
	}
	err := c.get(ctx, "/v1/me", nil, &out)
	return out.User, err
}

// UpdateMe updates the profile fields of the authenticated account.
func (c *Client) UpdateMe(ctx context.Context, name, phone, address string) (Account, error) {
	var out struct {
		User Account `json:"user"`
	}
	err := c.put(ctx, "/v1/me", map[string]string{
		"name":    name,
		"phone":   phone,
		"address": address,
	}, &out)
	return out.User, err
}
