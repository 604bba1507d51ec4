// Package api is the client for the Inkwell REST backend. It owns the
// bearer-token pair: the in-memory copy and the durable token file are
// updated together, and every read goes through one accessor.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "http://localhost:8000/api/v1"

// Client is an authenticated Inkwell API client.
type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	access  string
	refresh string
	store   *TokenStore
}

// New creates a Client against the given base URL. If baseURL is empty the
// local development backend is used. store may be nil, in which case tokens
// live only in memory for the process lifetime.
func New(baseURL string, store *TokenStore) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	// Strip trailing slash for consistent URL building.
	baseURL = strings.TrimRight(baseURL, "/")

	c := &Client{
		baseURL: baseURL,
		store:   store,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	if store != nil {
		// Reload survival: pick up whatever the last run left behind.
		if access, refresh, err := store.Load(); err == nil {
			c.access = access
			c.refresh = refresh
		}
	}
	return c
}

// SetTimeout overrides the default request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.http.Timeout = d
	}
}

// SetTokens replaces the held pair and mirrors it to durable storage.
func (c *Client) SetTokens(t TokenResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.access = t.AccessToken
	c.refresh = t.RefreshToken
	if c.store != nil {
		return c.store.Save(t.AccessToken, t.RefreshToken)
	}
	return nil
}

// ClearTokens drops both the in-memory and the durable pair. Safe to call
// repeatedly.
func (c *Client) ClearTokens() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.access = ""
	c.refresh = ""
	if c.store != nil {
		return c.store.Clear()
	}
	return nil
}

// AccessToken returns the current bearer credential, empty when signed out.
func (c *Client) AccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.access
}

// RefreshTokenValue returns the current refresh token.
func (c *Client) RefreshTokenValue() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refresh
}

// HasTokens reports whether a durable credential is held.
func (c *Client) HasTokens() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.access != "" || c.refresh != ""
}

// do executes the request with standard headers.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if token := c.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	if req.Header.Get("Content-Type") == "" && req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

// doJSON sends a request and decodes the JSON response into out. A 204 or
// empty body with a nil decode target is normalized to an empty result.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return &Error{Message: fmt.Sprintf("network error: %v", err)}
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Status: resp.StatusCode, Message: genericMessage}
	}
	return nil
}

// url builds an API URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.baseURL + "/" + strings.Join(parts, "/")
}

// checkStatus returns an *Error for non-2xx responses, carrying the server's
// detail message when it sent one.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg := genericMessage
	if body, err := io.ReadAll(resp.Body); err == nil && len(body) > 0 {
		var d errDetail
		if err := json.Unmarshal(body, &d); err == nil && d.Detail != "" {
			msg = d.Detail
		}
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}
