package api

import (
	"context"
	"net/url"

	"kiib/internal/domain"
)

// Login exchanges form-encoded credentials for a bearer token and role.
// The backend requires the OAuth2 password form, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Credential, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		Role        string `json:"role"`
	}
	if err := c.postForm(ctx, "/auth/login", form, &payload); err != nil {
		return domain.Credential{}, err
	}

	role, err := domain.ParseRole(payload.Role)
	if err != nil {
		return domain.Credential{}, err
	}
	return domain.Credential{AccessToken: payload.AccessToken, Role: role}, nil
}

// Register creates a new student account.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.postJSON(ctx, "/auth/register", reg, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// Me fetches the authenticated account's profile.
func (c *Client) Me(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.getJSON(ctx, "/auth/me", &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// UpdateProfile partially updates the caller's own profile.
func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.patchJSON(ctx, "/auth/me", update, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}
