package api

import (
	"context"
	"net/http"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
)

// Credentials is the backend's response to a successful login or
// registration: both tokens plus the identity they belong to.
type Credentials struct {
	Access  string          `json:"access"`
	Refresh string          `json:"refresh"`
	User    models.Identity `json:"user"`
}

// RegisterRequest carries the fields of the registration form. The
// password-confirmation check happens client-side before this is sent, but
// the backend receives both fields and re-validates.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
}

// ProfileUpdate is a partial profile edit; zero fields are left untouched
// by the backend.
type ProfileUpdate struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// AuthGateway talks to the backend's auth endpoints.
type AuthGateway struct {
	c *Client
}

// Auth returns the auth gateway bound to c.
func (c *Client) Auth() *AuthGateway { return &AuthGateway{c: c} }

// Login exchanges a username and password for a token pair and identity.
// A rejection maps to ErrUnauthorized and does not fire the unauthorized
// hook; the caller shows it as a form error.
func (g *AuthGateway) Login(ctx context.Context, username, password string) (*Credentials, error) {
	in := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}
	var out Credentials
	if err := g.c.do(ctx, http.MethodPost, "/api/auth/login/", in, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register provisions a new account and returns the same shape as Login.
func (g *AuthGateway) Register(ctx context.Context, req *RegisterRequest) (*Credentials, error) {
	var out Credentials
	if err := g.c.do(ctx, http.MethodPost, "/api/auth/register/", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout asks the backend to invalidate the refresh token. Best effort:
// callers log failures and clear local state regardless.
func (g *AuthGateway) Logout(ctx context.Context, refreshToken string) error {
	in := struct {
		Refresh string `json:"refresh"`
	}{refreshToken}
	return g.c.do(ctx, http.MethodPost, "/api/auth/logout/", in, nil, false)
}

// CurrentUser fetches the identity belonging to the attached access token.
func (g *AuthGateway) CurrentUser(ctx context.Context) (*models.Identity, error) {
	var out models.Identity
	if err := g.c.do(ctx, http.MethodGet, "/api/auth/user/", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial profile edit and returns the updated
// identity.
func (g *AuthGateway) UpdateProfile(ctx context.Context, upd *ProfileUpdate) (*models.Identity, error) {
	var out models.Identity
	if err := g.c.do(ctx, http.MethodPatch, "/api/auth/user/", upd, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}
