package sitefetch

// Strategy selects how a run schedules its fetches.
type Strategy string

// Strategy constants.
const (
	// StrategySequential fetches one URL at a time on the calling goroutine.
	StrategySequential Strategy = "sync"
	// StrategyParallel fetches on a bounded pool of goroutines and blocks until all finish.
	StrategyParallel Strategy = "parallel"
	// StrategySequentialAsync awaits one suspendable fetch at a time, reporting
	// progress and honoring cancellation between fetches.
	StrategySequentialAsync Strategy = "async"
	// StrategyJoinAsync launches every fetch at once and joins them all.
	StrategyJoinAsync Strategy = "join"
	// StrategyParallelAsync runs the parallel pool inside a future and reports
	// progress as fetches complete.
	StrategyParallelAsync Strategy = "parallel-async"
)

// Strategies returns all strategies in presentation order.
func Strategies() []Strategy {
	return []Strategy{
		StrategySequential,
		StrategyParallel,
		StrategySequentialAsync,
		StrategyJoinAsync,
		StrategyParallelAsync,
	}
}

// ParseStrategy returns the Strategy named s.
// Returns EINVALID for unknown names.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", Errorf(EINVALID, "unknown strategy %q", s)
}

// String returns the strategy name.
func (s Strategy) String() string {
	return string(s)
}

// ReportsProgress reports whether the strategy emits progress snapshots.
func (s Strategy) ReportsProgress() bool {
	return s == StrategySequentialAsync || s == StrategyParallelAsync
}

// Cancelable reports whether the strategy observes a Canceler.
func (s Strategy) Cancelable() bool {
	return s == StrategySequentialAsync
}
