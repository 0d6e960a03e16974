// Package client talks to the dashboard's catalog API on behalf of forms,
// row action menus and the storefront.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tokoadmin/internal/models"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for any non-2xx response. Message is the plain-text
// body the API sent.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.Code, e.Message)
}

// Client is a catalog API client bound to one base URL and caller token.
type Client struct {
	baseURL string
	token   string
	http    Doer
}

// Option configures a Client.
type Option func(*Client)

// WithToken authenticates requests with a bearer token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithDoer replaces the default HTTP client.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// New creates a client for the API served at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) path(storeID string, kind models.Kind, id string) string {
	p := fmt.Sprintf("%s/api/%s/%s", c.baseURL, storeID, kind.Route())
	if id != "" {
		p += "/" + id
	}
	return p
}

// List decodes the store's entities of kind into out.
func (c *Client) List(ctx context.Context, storeID string, kind models.Kind, out interface{}) error {
	return c.do(ctx, http.MethodGet, c.path(storeID, kind, ""), nil, out)
}

// Get decodes one entity into out. An absent entity decodes as JSON null.
func (c *Client) Get(ctx context.Context, storeID string, kind models.Kind, id string, out interface{}) error {
	return c.do(ctx, http.MethodGet, c.path(storeID, kind, id), nil, out)
}

// Create posts in and decodes the created entity into out, if non-nil.
func (c *Client) Create(ctx context.Context, storeID string, kind models.Kind, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, c.path(storeID, kind, ""), in, out)
}

// Update patches the entity and decodes the updated entity into out, if non-nil.
func (c *Client) Update(ctx context.Context, storeID string, kind models.Kind, id string, in, out interface{}) error {
	return c.do(ctx, http.MethodPatch, c.path(storeID, kind, id), in, out)
}

// Delete removes the entity and decodes its prior state into out, if non-nil.
func (c *Client) Delete(ctx context.Context, storeID string, kind models.Kind, id string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, c.path(storeID, kind, id), nil, out)
}

func (c *Client) do(ctx context.Context, method, url string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
