// Package schedule provides the delayed one-shot callbacks that drive the
// session countdown. Production code uses System; tests use Manual to advance
// a simulated clock deterministically.
package schedule

import (
	"sync/atomic"
	"time"
)

// Handle refers to a pending callback.
type Handle interface {
	// Stop cancels the callback. It reports whether the call prevented the
	// callback from running; stopping twice is a no-op.
	Stop() bool
}

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	After(d time.Duration, fn func()) Handle
	Now() time.Time
}

// System schedules callbacks on the wall clock. Fired callbacks are handed to
// the dispatch function, which is expected to run them on the UI goroutine.
type System struct {
	dispatch func(func())
}

// NewSystem creates a wall-clock scheduler. A nil dispatch runs callbacks on
// the timer goroutine.
func NewSystem(dispatch func(func())) *System {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &System{dispatch: dispatch}
}

type systemHandle struct {
	timer   *time.Timer
	stopped atomic.Bool
}

// After implements Scheduler.
func (system *System) After(d time.Duration, fn func()) Handle {
	handle := &systemHandle{}
	handle.timer = time.AfterFunc(d, func() {
		system.dispatch(func() {
			// The timer may have fired while Stop was racing with dispatch.
			if handle.stopped.Load() {
				return
			}
			fn()
		})
	})
	return handle
}

// Now implements Scheduler.
func (system *System) Now() time.Time {
	return time.Now()
}

func (handle *systemHandle) Stop() bool {
	if handle == nil || handle.stopped.Swap(true) {
		return false
	}
	return handle.timer.Stop()
}
