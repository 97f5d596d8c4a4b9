package stream

import (
	"context"
	"sync"
)

// Future is a resolve-once promise. Combinators return a Future so a caller
// can block on a value that materializes only when the opposite party of a
// rendezvous arrives.
type Future[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	value T
	err   error
}

// NewFuture returns an unresolved future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolve completes the future with a value. Resolving or failing a future
// twice panics.
func (f *Future[T]) Resolve(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.done:
		panic("stream: future resolved twice")
	default:
	}
	f.value = v
	close(f.done)
}

// Fail completes the future with an error.
func (f *Future[T]) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.done:
		panic("stream: future resolved twice")
	default:
	}
	f.err = err
	close(f.done)
}

// Done returns a channel closed once the future is resolved or failed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future completes or ctx is cancelled. Cancellation
// does not close the underlying stream; a caller wanting that must pair the
// context with an explicit Close.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
