package download

import (
	"context"

	"github.com/fwojciec/sitefetch"
	"github.com/fwojciec/sitefetch/future"
)

// Fetch downloads url with f on the calling goroutine.
// Transport failures are returned as *sitefetch.FetchError.
func Fetch(ctx context.Context, f sitefetch.Fetcher, url string) (*sitefetch.Result, error) {
	content, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, &sitefetch.FetchError{URL: url, Err: err}
	}
	return sitefetch.NewResult(url, content), nil
}

// FetchAsync starts downloading url on its own goroutine and returns
// immediately. Awaiting the future yields the same result and error
// Fetch would have returned.
func FetchAsync(ctx context.Context, f sitefetch.Fetcher, url string) *future.Future[*sitefetch.Result] {
	return future.Go(func() (*sitefetch.Result, error) {
		return Fetch(ctx, f, url)
	})
}
