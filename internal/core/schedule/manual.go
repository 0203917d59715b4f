package schedule

import (
	"sort"
	"time"
)

// Manual is a simulated clock. Callbacks only run from Advance, on the
// caller's goroutine.
type Manual struct {
	now     time.Time
	seq     int
	pending []*manualHandle
}

type manualHandle struct {
	owner *Manual
	due   time.Time
	seq   int
	fn    func()
	done  bool
}

// NewManual creates a simulated clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// After implements Scheduler.
func (manual *Manual) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	manual.seq++
	handle := &manualHandle{owner: manual, due: manual.now.Add(d), seq: manual.seq, fn: fn}
	manual.pending = append(manual.pending, handle)
	return handle
}

// Now implements Scheduler.
func (manual *Manual) Now() time.Time {
	return manual.now
}

// Advance moves the clock forward by d and runs every callback that becomes
// due, in due order. Callbacks scheduled while advancing run too if they fall
// inside the window.
func (manual *Manual) Advance(d time.Duration) {
	target := manual.now.Add(d)
	for {
		next := manual.nextDue(target)
		if next == nil {
			break
		}
		manual.now = next.due
		next.done = true
		manual.remove(next)
		next.fn()
	}
	manual.now = target
}

// Pending returns the number of callbacks that have not run or been stopped.
func (manual *Manual) Pending() int {
	return len(manual.pending)
}

func (manual *Manual) nextDue(target time.Time) *manualHandle {
	if len(manual.pending) == 0 {
		return nil
	}
	sort.SliceStable(manual.pending, func(i, j int) bool {
		if manual.pending[i].due.Equal(manual.pending[j].due) {
			return manual.pending[i].seq < manual.pending[j].seq
		}
		return manual.pending[i].due.Before(manual.pending[j].due)
	})
	if manual.pending[0].due.After(target) {
		return nil
	}
	return manual.pending[0]
}

func (manual *Manual) remove(handle *manualHandle) {
	for i, pending := range manual.pending {
		if pending == handle {
			manual.pending = append(manual.pending[:i], manual.pending[i+1:]...)
			return
		}
	}
}

func (handle *manualHandle) Stop() bool {
	if handle == nil || handle.done {
		return false
	}
	handle.done = true
	handle.owner.remove(handle)
	return true
}
