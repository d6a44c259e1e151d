package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitefetch"
	"github.com/google/uuid"
)

// Ensure LoggingDownloader implements sitefetch.Downloader.
var _ sitefetch.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with per-run logging.
// Each run is tagged with a random run id.
type LoggingDownloader struct {
	next   sitefetch.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next sitefetch.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Run delegates to the wrapped downloader, logging start, progress, and outcome.
func (d *LoggingDownloader) Run(ctx context.Context, strategy sitefetch.Strategy, progress sitefetch.ProgressFunc, canceler *sitefetch.Canceler) (results []*sitefetch.Result, err error) {
	logger := d.logger.With("run", uuid.NewString(), "strategy", strategy.String())
	logger.Info("run started")

	defer func(begin time.Time) {
		switch {
		case sitefetch.IsCanceled(err):
			logger.Info("run canceled",
				"duration", time.Since(begin),
				"err", err,
			)
		default:
			logger.Info("run finished",
				"count", len(results),
				"digest", sitefetch.Digest(results),
				"duration", time.Since(begin),
				"err", err,
			)
		}
	}(time.Now())

	var logged sitefetch.ProgressFunc
	if progress != nil {
		logged = func(p sitefetch.Progress) {
			logger.Debug("progress",
				"completed", p.Completed,
				"total", p.Total,
				"percent", p.Percent,
			)
			progress(p)
		}
	}

	return d.next.Run(ctx, strategy, logged, canceler)
}
