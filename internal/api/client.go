// Package api is the JSON client of the clinic backend and of the external
// services the client talks to directly (CURP registry, medication lookup,
// translation).
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
	"github.com/thenoetrevino/plantel/internal/user"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// DefaultTimeout applies when Options.Timeout is zero
const DefaultTimeout = 10 * time.Second

// Options configures a Client
type Options struct {
	BaseURL        string
	CURPURL        string
	MedicationURL  string
	TranslationURL string
	Timeout        time.Duration
	// User names the operator; empty means the current system user
	User string
	// HTTP overrides the transport, mainly for tests
	HTTP *http.Client
}

// Client talks JSON over HTTP to the backend
type Client struct {
	BaseURL        string
	CURPURL        string
	MedicationURL  string
	TranslationURL string
	User           string
	HTTP           *http.Client
}

// New creates a Client
func New(opts Options) *Client {
	httpClient := opts.HTTP
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	operator := opts.User
	if operator == "" {
		operator = user.GetCurrentUsername()
	}
	return &Client{
		BaseURL:        strings.TrimRight(opts.BaseURL, "/"),
		CURPURL:        strings.TrimRight(opts.CURPURL, "/"),
		MedicationURL:  strings.TrimRight(opts.MedicationURL, "/"),
		TranslationURL: strings.TrimRight(opts.TranslationURL, "/"),
		User:           operator,
		HTTP:           httpClient,
	}
}

// getJSON issues a GET against the backend and decodes the response
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, c.BaseURL+path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, c.BaseURL+path, body, out)
}

func (c *Client) putJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, c.BaseURL+path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, c.BaseURL+path, nil, nil)
}

// doJSON sends body as JSON to an absolute URL and decodes a 2xx response
// into out. Non-2xx responses become *Error.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) error {
	resp, requestID, err := c.send(ctx, method, url, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readError(resp, requestID)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, url, err)
	}
	return nil
}

// send builds and executes a request. The caller closes the body.
func (c *Client) send(ctx context.Context, method, url string, body any) (*http.Response, string, error) {
	var reader io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, "", fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set(user.Header, c.User)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, requestID, fmt.Errorf("%s %s: %w", method, url, err)
	}
	return resp, requestID, nil
}
