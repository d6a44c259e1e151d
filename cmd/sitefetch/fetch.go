package main

import (
	"time"

	"github.com/fwojciec/sitefetch"
)

// Run executes the fetch command.
// Cancellation is reported but is not an error. Failures are returned
// unprinted; the caller reports them.
func (c *FetchCmd) Run(deps *Dependencies) error {
	start := time.Now()

	if c.CancelAfter > 0 {
		timer := time.AfterFunc(c.CancelAfter, deps.Canceler.Cancel)
		defer timer.Stop()
	}

	var progress sitefetch.ProgressFunc
	if c.Strategy.ReportsProgress() {
		progress = deps.Printer.Progress
	}

	results, err := deps.Downloader.Run(deps.Ctx, c.Strategy, progress, deps.Canceler)
	switch {
	case sitefetch.IsCanceled(err):
		deps.Printer.Canceled()
	case err != nil:
		return err
	default:
		deps.Printer.Results(results)
	}

	deps.Printer.Elapsed(time.Since(start))
	return nil
}
