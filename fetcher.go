package sitefetch

import "context"

// Fetcher retrieves the content of a URL.
// Implementations make a single attempt per call and never retry.
type Fetcher interface {
	// Fetch downloads the URL and returns its body.
	// The context controls the lifetime of the underlying transport call.
	Fetch(ctx context.Context, url string) (content string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// TitleExtractor extracts a human-readable title from fetched HTML.
type TitleExtractor interface {
	ExtractTitle(html string) (string, error)
}

// Downloader downloads a fixed list of URLs with a chosen Strategy.
type Downloader interface {
	// Run fetches every URL using strategy. progress may be nil. canceler
	// may be nil and is only observed by strategies that support cancellation.
	// A canceled run returns a *CanceledError and no results.
	Run(ctx context.Context, strategy Strategy, progress ProgressFunc, canceler *Canceler) ([]*Result, error)
}
