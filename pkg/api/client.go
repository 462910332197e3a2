// Package api is the typed client for the boutique backend. All
// requests go through one transport that injects the bearer token and
// reports authorization-denied responses through a single registered
// callback, so forced logout applies uniformly no matter which
// endpoint tripped it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// requestTimeout is deliberately generous: report and prediction
// generation can take far longer than ordinary CRUD calls.
const requestTimeout = 60 * time.Second

// TokenSource returns the current access token, or "" when anonymous.
type TokenSource func() string

// APIError is a non-2xx response translated into an error. Message is
// taken from the backend body when one is present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// Client talks to the boutique backend.
type Client struct {
	baseURL string
	http    *http.Client

	mu             sync.Mutex
	onUnauthorized func()
}

// NewClient builds a client for the given base URL. tokens may be nil
// for a client that only calls public endpoints.
func NewClient(baseURL string, tokens TokenSource) *Client {
	c := &Client{baseURL: strings.TrimSuffix(baseURL, "/")}
	c.http = &http.Client{
		Timeout: requestTimeout,
		Transport: &authTransport{
			tokens: tokens,
			onDenied: func() {
				c.mu.Lock()
				fn := c.onUnauthorized
				c.mu.Unlock()
				if fn != nil {
					fn()
				}
			},
			next: http.DefaultTransport,
		},
	}
	return c
}

// SetOnUnauthorized registers the callback fired whenever any response
// comes back 401. Registered once at startup by the session holder.
func (c *Client) SetOnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// authTransport adds the Authorization header on the way out and fires
// onDenied when the backend rejects the credentials.
type authTransport struct {
	tokens   TokenSource
	onDenied func()
	next     http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens != nil {
		if token := t.tokens(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		t.onDenied()
	}
	return resp, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do performs one request and decodes the JSON response into out when
// out is non-nil. Non-2xx statuses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// decodeError pulls a human-readable message out of an error body.
// Java services answer {"message": ...}, the Python one {"detail": ...}.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Detail != "" {
			apiErr.Message = body.Detail
		}
	}
	return apiErr
}
