// Package iorest provides a JSON-over-HTTP client shared by the remote
// source adapters.
package iorest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	protdb "github.com/gnames/protdb/pkg"
)

// DefaultTimeout is used when a non-positive timeout is given.
const DefaultTimeout = 30 * time.Second

// maxBody limits the size of a response body that is read into memory.
const maxBody = 32 << 20

// Client performs single GET requests without retries or caching.
type Client struct {
	httpClient *http.Client
	enc        gnfmt.GNjson
}

// New creates a Client with the given timeout for one request.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetJSON fetches endpoint and decodes its JSON body into v.
// Status 404 and 410 produce NotFoundError, every other failure
// produces UnavailableError.
func (c *Client) GetJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return UnavailableError(endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "protdb/"+protdb.Version)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UnavailableError(endpoint, err)
	}
	defer resp.Body.Close()

	slog.Debug("Remote GET",
		"url", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound,
		resp.StatusCode == http.StatusGone:
		return NotFoundError(endpoint, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return UnavailableError(endpoint,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return UnavailableError(endpoint, err)
	}

	if err := c.enc.Decode(body, v); err != nil {
		return UnavailableError(endpoint,
			fmt.Errorf("cannot decode JSON: %w", err))
	}
	return nil
}

// JoinURL appends escaped path segments to a base URL.
func JoinURL(base string, segments ...string) string {
	esc := make([]string, len(segments))
	for i, v := range segments {
		esc[i] = url.PathEscape(v)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(esc, "/")
}
