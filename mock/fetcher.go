package mock

import (
	"context"

	"github.com/fwojciec/sitefetch"
)

// Compile-time interface verification.
var (
	_ sitefetch.Fetcher        = (*Fetcher)(nil)
	_ sitefetch.TitleExtractor = (*TitleExtractor)(nil)
	_ sitefetch.Downloader     = (*Downloader)(nil)
)

// Fetcher is a mock implementation of sitefetch.Fetcher.
// A nil CloseFn makes Close a no-op.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

// TitleExtractor is a mock implementation of sitefetch.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(html string) (string, error)
}

func (e *TitleExtractor) ExtractTitle(html string) (string, error) {
	return e.ExtractTitleFn(html)
}

// Downloader is a mock implementation of sitefetch.Downloader.
type Downloader struct {
	RunFn func(ctx context.Context, strategy sitefetch.Strategy, progress sitefetch.ProgressFunc, canceler *sitefetch.Canceler) ([]*sitefetch.Result, error)
}

func (d *Downloader) Run(ctx context.Context, strategy sitefetch.Strategy, progress sitefetch.ProgressFunc, canceler *sitefetch.Canceler) ([]*sitefetch.Result, error) {
	return d.RunFn(ctx, strategy, progress, canceler)
}
