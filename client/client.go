// Package client is the REST facade over the DFW Parking API. It
// attaches the stored bearer credential to every request, unwraps the
// success/data envelope, normalizes document-store identifier fields
// and turns an authorization failure into a cleared session plus a
// login redirect. It holds no business logic.
package client

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
	"time"
)

const defaultBaseURL = "http://localhost:8080"

// ErrSessionExpired is returned when the server rejects the bearer
// token. The stored credentials have already been cleared by the time
// the caller sees it.
var ErrSessionExpired = errors.New("session expired, please log in again")

// TokenStore is the credential surface the client needs: read the
// current access token and wipe it when the server says it is no
// longer good.
type TokenStore interface {
	AccessToken() (string, error)
	Clear() error
}

// Client talks to the API. OnSessionExpired, when set, is invoked
// after a 401 clears the stored credentials; the CLI uses it to steer
// the user to the login flow.
type Client struct {
	HTTP             *http.Client
	BaseURL          string
	Tokens           TokenStore
	OnSessionExpired func()
}

func New(baseURL string, tokens TokenStore) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: baseURL,
		Tokens:  tokens,
	}
}

// envelope is the server's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	base.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if query != nil {
		base.RawQuery = query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, base.String(), rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Tokens != nil {
		if tok, err := c.Tokens.AccessToken(); err == nil && tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

// doJSON executes the request, unwraps the envelope, applies the id
// normalization and decodes the data payload into dest (which may be
// nil for fire-and-forget calls).
func (c *Client) doJSON(req *http.Request, dest any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.Tokens != nil {
			_ = c.Tokens.Clear()
		}
		if c.OnSessionExpired != nil {
			c.OnSessionExpired()
		}
		return ErrSessionExpired
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if env.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, env.Error)
		}
		return fmt.Errorf("request failed: %s", resp.Status)
	}
	if dest == nil || len(env.Data) == 0 {
		return nil
	}

	// Round-trip through the generic form so document primary keys
	// become "id" at every nesting depth before typed decoding.
	var generic any
	if err := json.Unmarshal(env.Data, &generic); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	normalized, err := json.Marshal(NormalizeIDs(generic))
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, dest)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, dest)
}

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return c.doJSON(req, dest)
}

func (c *Client) put(ctx context.Context, path string, body, dest any) error {
	req, err := c.newRequest(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return c.doJSON(req, dest)
}

func (c *Client) patch(ctx context.Context, path string, body, dest any) error {
	req, err := c.newRequest(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		return err
	}
	return c.doJSON(req, dest)
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}
