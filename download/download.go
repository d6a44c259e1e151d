// Package download orchestrates fetching a fixed list of URLs.
// It offers one entry point per execution strategy: sequential, parallel,
// sequential with suspendable fetches, launch-all-then-join, and parallel
// inside a future with progress reporting.
package download

import (
	"context"
	"runtime"
	"slices"

	"github.com/fwojciec/sitefetch"
	"github.com/fwojciec/sitefetch/future"
	"golang.org/x/sync/errgroup"
)

// Ensure Runner implements sitefetch.Downloader at compile time.
var _ sitefetch.Downloader = (*Runner)(nil)

// Runner downloads a fixed list of URLs with a shared Fetcher.
// Runner is safe for concurrent use; each call is an independent run.
type Runner struct {
	fetcher     sitefetch.Fetcher
	urls        []string
	concurrency int
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency sets the worker pool size used by the parallel strategies.
// Defaults to runtime.NumCPU(). Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRunner creates a Runner that downloads urls with fetcher.
func NewRunner(fetcher sitefetch.Fetcher, urls []string, opts ...Option) *Runner {
	r := &Runner{
		fetcher:     fetcher,
		urls:        slices.Clone(urls),
		concurrency: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run downloads every URL using strategy.
// StrategyParallelAsync is awaited before Run returns.
func (r *Runner) Run(ctx context.Context, strategy sitefetch.Strategy, progress sitefetch.ProgressFunc, canceler *sitefetch.Canceler) ([]*sitefetch.Result, error) {
	switch strategy {
	case sitefetch.StrategySequential:
		return r.Sequential(ctx)
	case sitefetch.StrategyParallel:
		return r.Parallel(ctx)
	case sitefetch.StrategySequentialAsync:
		return r.SequentialAsync(ctx, progress, canceler)
	case sitefetch.StrategyJoinAsync:
		return r.JoinAsync(ctx)
	case sitefetch.StrategyParallelAsync:
		return r.ParallelAsync(ctx, progress).Await(ctx)
	default:
		return nil, sitefetch.Errorf(sitefetch.EINVALID, "unknown strategy %q", strategy)
	}
}

// Sequential fetches each URL in order on the calling goroutine.
// The first failure ends the run.
func (r *Runner) Sequential(ctx context.Context) ([]*sitefetch.Result, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	results := make([]*sitefetch.Result, 0, len(r.urls))
	for _, url := range r.urls {
		res, err := Fetch(ctx, r.fetcher, url)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Parallel fetches all URLs on a pool of at most concurrency goroutines and
// blocks until every fetch finishes. Results are in completion order.
// The first failure cancels the remaining fetches and no results are returned.
func (r *Runner) Parallel(ctx context.Context) ([]*sitefetch.Result, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	acc := NewAccumulator(len(r.urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, url := range r.urls {
		g.Go(func() error {
			res, err := Fetch(gctx, r.fetcher, url)
			if err != nil {
				return err
			}
			acc.Add(res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return acc.Results(), nil
}

// SequentialAsync awaits one suspendable fetch at a time, in order.
// After each completion it appends the result, reports progress, and then
// checks canceler. The canceler is also checked before the first fetch.
// A fetch already in flight is never interrupted by the canceler.
//
// On cancellation it returns a *sitefetch.CanceledError and no results;
// results completed before the checkpoint have already been reported.
func (r *Runner) SequentialAsync(ctx context.Context, progress sitefetch.ProgressFunc, canceler *sitefetch.Canceler) ([]*sitefetch.Result, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	total := len(r.urls)
	results := make([]*sitefetch.Result, 0, total)

	if canceler.Canceled() {
		return nil, &sitefetch.CanceledError{Completed: 0, Total: total}
	}

	for _, url := range r.urls {
		res, err := FetchAsync(ctx, r.fetcher, url).Await(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, res)

		if progress != nil {
			progress(sitefetch.NewProgress(slices.Clone(results), total))
		}

		if canceler.Canceled() {
			return nil, &sitefetch.CanceledError{Completed: len(results), Total: total}
		}
	}

	return results, nil
}

// JoinAsync starts a suspendable fetch for every URL without waiting, then
// waits for all of them. Results are in launch order. If any fetch fails,
// the earliest failure in launch order is returned, but only after every
// fetch has finished.
func (r *Runner) JoinAsync(ctx context.Context) ([]*sitefetch.Result, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	pending := make([]*future.Future[*sitefetch.Result], len(r.urls))
	for i, url := range r.urls {
		pending[i] = FetchAsync(ctx, r.fetcher, url)
	}

	return future.All(ctx, pending...)
}

// ParallelAsync runs the parallel pool inside a future and returns at once.
// Each completion is appended and reported by a single collector goroutine,
// so snapshots arrive in completion order and workers never wait on the
// progress callback. The first failure fails the future.
func (r *Runner) ParallelAsync(ctx context.Context, progress sitefetch.ProgressFunc) *future.Future[[]*sitefetch.Result] {
	if err := r.validate(); err != nil {
		return future.Failed[[]*sitefetch.Result](err)
	}

	return future.Go(func() ([]*sitefetch.Result, error) {
		total := len(r.urls)
		acc := NewAccumulator(total)

		// Buffered to total so no worker blocks on the collector.
		resultCh := make(chan *sitefetch.Result, total)
		collected := make(chan struct{})

		go func() {
			defer close(collected)
			for res := range resultCh {
				snapshot := acc.Add(res)
				if progress != nil {
					progress(snapshot)
				}
			}
		}()

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.concurrency)
		for _, url := range r.urls {
			g.Go(func() error {
				res, err := Fetch(gctx, r.fetcher, url)
				if err != nil {
					return err
				}
				resultCh <- res
				return nil
			})
		}
		err := g.Wait()
		close(resultCh)
		<-collected

		if err != nil {
			return nil, err
		}
		return acc.Results(), nil
	})
}

func (r *Runner) validate() error {
	if r.fetcher == nil {
		return sitefetch.Errorf(sitefetch.EINVALID, "fetcher required")
	}
	if len(r.urls) == 0 {
		return sitefetch.Errorf(sitefetch.EINVALID, "at least one URL required")
	}
	return nil
}
