// Package rod provides a headless Chrome implementation of sitefetch.Fetcher
// for pages whose content is rendered by JavaScript.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/sitefetch"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the number of pages served before the browser is replaced.
const DefaultMaxPages = 75

// Ensure Fetcher implements sitefetch.Fetcher at compile time.
var _ sitefetch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *browser
	timeout  time.Duration
	maxPages int64
	closed   atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each Fetch. Zero, the default, means no bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets how many pages a browser serves before it is replaced.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher launches a headless Chrome browser and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(f)
	}

	b, err := launchBrowser(f.maxPages)
	if err != nil {
		return nil, err
	}
	f.browser = b

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", sitefetch.Errorf(sitefetch.EINVALID, "fetcher closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	b, release := f.browser.acquire()
	if b == nil {
		return "", sitefetch.Errorf(sitefetch.EINVALID, "fetcher closed")
	}
	defer release()

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.browser.close()
}

// LauncherPID returns the process ID of the browser launcher.
// It exists so tests can verify cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.browser.pid()
}

// RetiredBrowsers returns how many replaced browsers are still kept alive
// for pages opened before the replacement.
func (f *Fetcher) RetiredBrowsers() int {
	return f.browser.retiredCount()
}
