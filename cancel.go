package sitefetch

import "sync"

// Canceler is a one-shot cancellation signal. It starts unset and, once
// Cancel is called, stays set for the rest of its life.
//
// Unlike context cancellation, a Canceler never interrupts work in flight.
// Runs observe it only at explicit checkpoints between fetches.
//
// Canceler is safe for concurrent use. The zero value is not usable; use NewCanceler.
type Canceler struct {
	once sync.Once
	done chan struct{}
}

// NewCanceler returns an unset Canceler.
func NewCanceler() *Canceler {
	return &Canceler{done: make(chan struct{})}
}

// Cancel sets the signal. Calls after the first have no effect.
func (c *Canceler) Cancel() {
	c.once.Do(func() { close(c.done) })
}

// Canceled reports whether Cancel has been called.
// A nil Canceler is never canceled.
func (c *Canceler) Canceled() bool {
	if c == nil {
		return false
	}
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when Cancel is called.
func (c *Canceler) Done() <-chan struct{} {
	return c.done
}
