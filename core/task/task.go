// Package task runs the portal's simulated network operations: work that
// completes after a fixed delay measured on an injectable clock.
package task

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// Task is an operation in flight. It cannot be cancelled once started.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// After arms a timer for delay on clk and returns immediately. fn runs once
// the timer fires and its result becomes the result of the Task.
func After[T any](clk clock.Clock, delay time.Duration, fn func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	timer := clk.Timer(delay)
	go func() {
		defer close(t.done)
		<-timer.C
		t.val, t.err = fn()
	}()
	return t
}

// Done is closed once the task has completed.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes or ctx is done. Giving up on the wait
// does not stop the task.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
