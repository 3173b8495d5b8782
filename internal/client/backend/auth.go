package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/lifeverse/dm-frontend/internal/model"
)

// Login exchanges credentials for a token pair. The backend expects a
// form-encoded body with the email passed as username. No bearer is
// attached and no refresh-retry applies.
func (c *Client) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("auth/login", nil), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	var login model.LoginResponse
	if err := decode(resp, &login); err != nil {
		return nil, err
	}

	return &login, nil
}

func (c *Client) Signup(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	var user model.User
	if err := c.postJSON(ctx, "auth/signup", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Rotate exchanges a refresh token for a fresh pair. Called by the
// single-flight gate only; it never goes through the 401-retry path itself.
func (c *Client) Rotate(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	payload := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: refreshToken}

	var login model.LoginResponse
	if err := c.postJSON(ctx, "auth/rotate", payload, &login); err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	}, nil
}

func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) MyProfiles(ctx context.Context) ([]model.Profile, error) {
	var list model.ProfileList
	if err := c.do(ctx, http.MethodGet, "auth/me/profiles", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Profiles, nil
}

func (c *Client) CreateProfile(ctx context.Context, req model.ProfileCreate) (*model.Profile, error) {
	var profile model.Profile
	if err := c.do(ctx, http.MethodPost, "auth/me/profiles", nil, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
