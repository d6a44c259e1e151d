// Package future provides single-assignment results of work running on
// another goroutine. A Future lets a caller start work, continue, and
// resume later with the same value/error contract the work would have
// returned synchronously.
package future

import "context"

// Future holds the eventual result of a computation.
// Future is safe for concurrent use by multiple goroutines.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts fn on a new goroutine and returns a Future for its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}

// Failed returns a Future that already holds err.
func Failed[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Done returns a channel that is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx is done.
// If ctx ends first, Await returns ctx.Err() and the underlying work
// keeps running; a later Await still observes its result.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Poll returns the result without blocking.
// ok is false while the work is still running.
func (f *Future[T]) Poll() (value T, ok bool, err error) {
	select {
	case <-f.done:
		return f.value, true, f.err
	default:
		var zero T
		return zero, false, nil
	}
}

// All waits for every future to resolve, including after a failure, and
// returns their values in argument order. If any future failed, All returns
// the error of the earliest failed future in argument order and no values.
func All[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	for _, f := range futures {
		select {
		case <-f.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	values := make([]T, len(futures))
	for i, f := range futures {
		if f.err != nil {
			return nil, f.err
		}
		values[i] = f.value
	}
	return values, nil
}
