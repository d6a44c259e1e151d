package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/sitefetch"
	main "github.com/fwojciec/sitefetch/cmd/sitefetch"
	"github.com/fwojciec/sitefetch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(d sitefetch.Downloader) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &main.Dependencies{
		Ctx:        context.Background(),
		Stdout:     &stdout,
		Stderr:     &stderr,
		Downloader: d,
		Canceler:   sitefetch.NewCanceler(),
		Printer:    main.NewPrinter(&stdout, nil, true),
	}, &stdout, &stderr
}

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes progress only to reporting strategies", func(t *testing.T) {
		t.Parallel()

		for _, strategy := range sitefetch.Strategies() {
			var gotProgress bool
			deps, _, _ := newDeps(&mock.Downloader{
				RunFn: func(_ context.Context, s sitefetch.Strategy, progress sitefetch.ProgressFunc, _ *sitefetch.Canceler) ([]*sitefetch.Result, error) {
					gotProgress = progress != nil
					return nil, nil
				},
			})

			err := (&main.FetchCmd{Strategy: strategy}).Run(deps)

			require.NoError(t, err)
			assert.Equal(t, strategy.ReportsProgress(), gotProgress, strategy)
		}
	})

	t.Run("cancel-after fires the canceler", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.Downloader{
			RunFn: func(_ context.Context, _ sitefetch.Strategy, _ sitefetch.ProgressFunc, canceler *sitefetch.Canceler) ([]*sitefetch.Result, error) {
				select {
				case <-canceler.Done():
					return nil, &sitefetch.CanceledError{Completed: 0, Total: 5}
				case <-time.After(5 * time.Second):
					return nil, errors.New("canceler never fired")
				}
			},
		})

		err := (&main.FetchCmd{Strategy: sitefetch.StrategySequentialAsync, CancelAfter: 10 * time.Millisecond}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "The async download was cancelled")
	})

	t.Run("returns failure without printing it", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(&mock.Downloader{
			RunFn: func(context.Context, sitefetch.Strategy, sitefetch.ProgressFunc, *sitefetch.Canceler) ([]*sitefetch.Result, error) {
				return nil, &sitefetch.FetchError{URL: "https://x.example.com", Err: errors.New("reset")}
			},
		})

		err := (&main.FetchCmd{Strategy: sitefetch.StrategyJoinAsync}).Run(deps)

		require.EqualError(t, err, "fetch https://x.example.com: reset")
		assert.Empty(t, stderr.String())
		assert.NotContains(t, stdout.String(), "Total execution time")
	})
}
