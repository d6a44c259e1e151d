// Package http provides a net/http implementation of sitefetch.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/sitefetch"
)

// Ensure Fetcher implements sitefetch.Fetcher at compile time.
var _ sitefetch.Fetcher = (*Fetcher)(nil)

// Fetcher downloads URLs with a single HTTP GET each.
// Redirects and default headers are left to the underlying http.Client.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets a per-request timeout.
// By default no timeout is enforced and a hung server hangs the fetch.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the http.Client used for requests.
// WithTimeout, if also given, overrides the client's Timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	if f.timeout > 0 {
		c := *f.client
		c.Timeout = f.timeout
		f.client = &c
	}

	return f
}

// Fetch returns the body of the given URL as a string.
// Any status other than 200 is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body of %s: %w", url, err)
	}

	return string(body), nil
}

// Close drops idle keep-alive connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
