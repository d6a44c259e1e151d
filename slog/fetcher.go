// Package slog provides log/slog decorators for sitefetch interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/sitefetch"
)

// Ensure LoggingFetcher implements sitefetch.Fetcher.
var _ sitefetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every download with the size and hash of what came back.
type LoggingFetcher struct {
	next   sitefetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitefetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher. A successful fetch is logged with
// its character count and content hash; a failed one with its error.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (content string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			f.logger.Warn("fetch failed",
				"url", url,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		f.logger.Info("fetch",
			"url", url,
			"chars", utf8.RuneCountInString(content),
			"hash", sitefetch.ComputeHash(content),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
