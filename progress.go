package sitefetch

// Progress is a point-in-time summary of a run.
type Progress struct {
	// Results completed so far, in completion order. The slice is a copy
	// and is safe to retain after the callback returns.
	Results   []*Result
	Completed int
	Total     int
	Percent   int
}

// NewProgress builds a snapshot from the results completed so far.
func NewProgress(results []*Result, total int) Progress {
	return Progress{
		Results:   results,
		Completed: len(results),
		Total:     total,
		Percent:   Percent(len(results), total),
	}
}

// Percent returns completed*100/total rounded down.
// Returns 0 when total is not positive.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return completed * 100 / total
}

// ProgressFunc is called after each completed fetch, in completion order.
// It is a one-way notification and returns nothing to the run.
type ProgressFunc func(Progress)
