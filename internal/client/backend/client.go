package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/lifeverse/dm-frontend/internal/config"
)

// ErrSessionExpired is returned once the refresh token itself is rejected;
// the stored tokens are cleared before it surfaces and the caller must treat
// the session as logged out.
var ErrSessionExpired = errors.New("session expired")

// APIError carries a non-2xx backend response. The backend reports failures
// as {"detail": "..."}.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Detail)
}

// Client issues REST calls against the backend with automatic bearer
// attachment and a single-flight refresh-and-retry protocol on 401.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore

	refresh          singleflight.Group
	onSessionExpired func()
}

// New builds a client; tokens may be nil, in which case every call goes out
// unauthenticated and 401 responses surface as plain APIErrors.
func New(cfg *config.Config, tokens TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
	}
}

// OnSessionExpired registers a hook invoked after a failed rotation has
// cleared the token store. Must be set before the client is shared.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// do issues an authenticated request, retrying exactly once after a
// successful token rotation. The body is re-marshalled per attempt so a
// retry never replays a consumed reader.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	access := c.currentAccess()

	resp, err := c.attempt(ctx, method, path, query, body, access)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil {
		drain(resp)

		access, err = c.refreshAccess(ctx, access)
		if err != nil {
			return err
		}

		resp, err = c.attempt(ctx, method, path, query, body, access)
		if err != nil {
			return err
		}
	}

	return decode(resp, out)
}

func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, body any, access string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	return resp, nil
}

// refreshAccess is the single-flight gate: no matter how many calls hit 401
// concurrently, exactly one rotation exchange reaches the backend and every
// waiter shares its outcome. staleAccess is the token the failed attempt
// used; if the store already holds a different one, a sibling rotated first
// and this call just reuses it.
func (c *Client) refreshAccess(ctx context.Context, staleAccess string) (string, error) {
	v, err, _ := c.refresh.Do("refresh", func() (any, error) {
		pair, ok := c.tokens.Get()
		if !ok || pair.RefreshToken == "" {
			return nil, ErrSessionExpired
		}

		if pair.AccessToken != "" && pair.AccessToken != staleAccess {
			return pair.AccessToken, nil
		}

		rotated, rerr := c.Rotate(ctx, pair.RefreshToken)
		if rerr != nil {
			_ = c.tokens.Clear()
			if c.onSessionExpired != nil {
				c.onSessionExpired()
			}
			return nil, fmt.Errorf("token rotation failed: %w", ErrSessionExpired)
		}

		if serr := c.tokens.Set(rotated); serr != nil {
			return nil, fmt.Errorf("failed to store rotated tokens: %w", serr)
		}

		return rotated.AccessToken, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (c *Client) currentAccess() string {
	if c.tokens == nil {
		return ""
	}
	pair, ok := c.tokens.Get()
	if !ok {
		return ""
	}
	return pair.AccessToken
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func decode(resp *http.Response, out any) error {
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode}

		var payload struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Detail = payload.Detail
		}

		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// postJSON issues an unauthenticated JSON POST; login, signup and rotate
// bypass the bearer/refresh machinery entirely.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}

	return decode(resp, out)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
