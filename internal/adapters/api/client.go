// Package api is the client for the task-management REST backend.
//
// The backend owns all records; this package holds no state beyond the base
// URL. Non-2xx responses are normalized into *api.Error carrying the
// backend's message field when present, so callers can surface it verbatim.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error is a normalized backend failure.
type Error struct {
	Status  int
	Message string
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	return e.Message
}

// IsNotFound returns true when the backend reported a missing resource.
func (e *Error) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// Client wraps HTTP access to the backend.
type Client struct {
	base string
	hc   *http.Client
}

// New creates a Client for the backend at baseURL.
// PRE: baseURL is a reachable http(s) URL without trailing slash
// POST: Returns a ready-to-use client with a request timeout applied
func New(baseURL string) *Client {
	return &Client{
		base: baseURL,
		hc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// do performs one request against the backend and decodes the JSON response
// into out when out is non-nil.
// PRE: path starts with "/"
// POST: Non-2xx responses return *Error; out is populated on success
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return normalizeError(res.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// normalizeError maps a non-2xx response to an *Error, preferring the
// backend's message field and falling back to a generic one.
func normalizeError(status int, body []byte) *Error {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return &Error{Status: status, Message: envelope.Message}
	}
	return &Error{Status: status, Message: fmt.Sprintf("Request failed (%d)", status)}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
