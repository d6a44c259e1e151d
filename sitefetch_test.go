package sitefetch_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/sitefetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultURLs(t *testing.T) {
	t.Parallel()

	urls := sitefetch.DefaultURLs()

	assert.Len(t, urls, 5)
	urls[0] = "changed"
	assert.Equal(t, "https://www.yahoo.com", sitefetch.DefaultURLs()[0])
}

func TestResult_Length(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, sitefetch.NewResult("u", "").Length())
	assert.Equal(t, 5, sitefetch.NewResult("u", "hello").Length())
	assert.Equal(t, 4, sitefetch.NewResult("u", "żółw").Length())
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sitefetch.ComputeHash("abc"), sitefetch.ComputeHash("abc"))
	assert.NotEqual(t, sitefetch.ComputeHash("abc"), sitefetch.ComputeHash("abd"))
}

func TestDigest(t *testing.T) {
	t.Parallel()

	a := sitefetch.NewResult("https://a.example.com", "a")
	b := sitefetch.NewResult("https://b.example.com", "b")

	assert.Equal(t, sitefetch.Digest([]*sitefetch.Result{a, b}), sitefetch.Digest([]*sitefetch.Result{b, a}))
	assert.NotEqual(t, sitefetch.Digest([]*sitefetch.Result{a, b}), sitefetch.Digest([]*sitefetch.Result{a}))
	assert.NotEqual(t,
		sitefetch.Digest([]*sitefetch.Result{a, b}),
		sitefetch.Digest([]*sitefetch.Result{a, sitefetch.NewResult("https://b.example.com", "changed")}),
	)
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		completed, total, want int
	}{
		{0, 5, 0},
		{1, 5, 20},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 66},
		{1, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sitefetch.Percent(tt.completed, tt.total))
	}
}

func TestNewProgress(t *testing.T) {
	t.Parallel()

	results := []*sitefetch.Result{sitefetch.NewResult("a", "x"), sitefetch.NewResult("b", "y")}

	p := sitefetch.NewProgress(results, 4)

	assert.Equal(t, 2, p.Completed)
	assert.Equal(t, 4, p.Total)
	assert.Equal(t, 50, p.Percent)
}

func TestCanceler(t *testing.T) {
	t.Parallel()

	t.Run("starts unset", func(t *testing.T) {
		t.Parallel()

		assert.False(t, sitefetch.NewCanceler().Canceled())
	})

	t.Run("nil canceler is never canceled", func(t *testing.T) {
		t.Parallel()

		var c *sitefetch.Canceler
		assert.False(t, c.Canceled())
	})

	t.Run("cancel is one-shot and idempotent", func(t *testing.T) {
		t.Parallel()

		c := sitefetch.NewCanceler()
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Cancel()
			}()
		}
		wg.Wait()

		assert.True(t, c.Canceled())
		select {
		case <-c.Done():
		default:
			t.Fatal("Done not closed")
		}
	})
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for _, s := range sitefetch.Strategies() {
		got, err := sitefetch.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := sitefetch.ParseStrategy("threads")
	assert.Equal(t, sitefetch.EINVALID, sitefetch.ErrorCode(err))
}

func TestStrategy_Capabilities(t *testing.T) {
	t.Parallel()

	assert.True(t, sitefetch.StrategySequentialAsync.ReportsProgress())
	assert.True(t, sitefetch.StrategyParallelAsync.ReportsProgress())
	assert.False(t, sitefetch.StrategyParallel.ReportsProgress())
	assert.False(t, sitefetch.StrategyJoinAsync.ReportsProgress())

	assert.True(t, sitefetch.StrategySequentialAsync.Cancelable())
	assert.False(t, sitefetch.StrategyParallelAsync.Cancelable())
}
