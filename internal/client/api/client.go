package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the current access token for outgoing requests.
// An empty string means no credential is attached.
type TokenSource interface {
	AccessToken() string
}

// Client is the HTTP core shared by all gateways. It owns the base URL,
// the transport, and the credential attachment; gateways only describe
// request/response shapes.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// New builds a Client for the backend at baseURL. Timeout is the transport
// default for every call; there is no retry policy.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// OnUnauthorized registers a hook invoked whenever a call outside the auth
// endpoints comes back 401/403. The session store uses it to drive itself
// to the anonymous state.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// do issues one JSON request. in and out may be nil. notifyUnauthorized
// controls whether a 401/403 fires the OnUnauthorized hook; login and
// register pass false since a bad password there is a form error, not a
// session invalidation.
func (c *Client) do(ctx context.Context, method, path string, in, out any, notifyUnauthorized bool) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if notifyUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return &BusinessError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}

	default:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
}

// readDetail extracts the backend's detail message from an error body.
// A body that is not the expected envelope is passed through as-is.
func readDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil && eb.Detail != "" {
		return eb.Detail
	}
	return strings.TrimSpace(string(data))
}
