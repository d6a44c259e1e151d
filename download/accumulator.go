package download

import (
	"slices"
	"sync"

	"github.com/fwojciec/sitefetch"
)

// Accumulator collects results from concurrent producers.
// It only supports appending. Accumulator is safe for concurrent use.
type Accumulator struct {
	mu      sync.Mutex
	results []*sitefetch.Result
	total   int
}

// NewAccumulator returns an empty Accumulator for a run of total URLs.
func NewAccumulator(total int) *Accumulator {
	return &Accumulator{
		results: make([]*sitefetch.Result, 0, total),
		total:   total,
	}
}

// Add appends r and returns a snapshot that includes it.
func (a *Accumulator) Add(r *sitefetch.Result) sitefetch.Progress {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.results = append(a.results, r)
	return sitefetch.NewProgress(slices.Clone(a.results), a.total)
}

// Results returns a copy of the results in append order.
func (a *Accumulator) Results() []*sitefetch.Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.results)
}
