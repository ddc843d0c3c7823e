package core

import (
	"sort"
	"time"
)

// Scheduler is the host timer service used by the simulation.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) *TimerHandle
}

// TimerHandle refers to one scheduled callback.
type TimerHandle struct {
	id       uint64
	deadline time.Duration
	fn       func()
	owner    *Timers
	done     bool
}

// Cancel stops the callback from firing.
// Returns false if it already fired or was cancelled.
func (h *TimerHandle) Cancel() bool {
	if h == nil || h.done {
		return false
	}
	h.done = true
	h.owner.remove(h.id)
	return true
}

// Pending reports whether the callback is still waiting to fire.
func (h *TimerHandle) Pending() bool {
	return h != nil && !h.done
}

// Timers is a simulated-time timer queue driven by the frame loop.
// Callbacks run synchronously inside Advance, on the caller's goroutine.
type Timers struct {
	now     time.Duration
	nextID  uint64
	pending []*TimerHandle
}

// NewTimers creates an empty timer queue at time zero.
func NewTimers() *Timers {
	return &Timers{}
}

// Now returns the simulated time elapsed since creation.
func (t *Timers) Now() time.Duration {
	return t.now
}

// Len returns the number of callbacks waiting to fire.
func (t *Timers) Len() int {
	return len(t.pending)
}

// ScheduleOnce registers fn to run once delay has elapsed.
func (t *Timers) ScheduleOnce(delay time.Duration, fn func()) *TimerHandle {
	if delay < 0 {
		delay = 0
	}
	t.nextID++
	h := &TimerHandle{
		id:       t.nextID,
		deadline: t.now + delay,
		fn:       fn,
		owner:    t,
	}
	t.pending = append(t.pending, h)
	return h
}

// Advance moves simulated time forward and fires every due callback in
// deadline order (ties fire in scheduling order). Now reads as the firing
// deadline inside a callback, so a callback that reschedules itself runs
// again in this call if its next deadline falls within the frame.
func (t *Timers) Advance(dt time.Duration) {
	target := t.now + dt

	for {
		due := t.nextDue(target)
		if due == nil {
			break
		}
		if due.deadline > t.now {
			t.now = due.deadline
		}
		due.done = true
		t.remove(due.id)
		due.fn()
	}
	t.now = target
}

// Clear cancels every pending callback.
func (t *Timers) Clear() {
	for _, h := range t.pending {
		h.done = true
	}
	t.pending = t.pending[:0]
}

func (t *Timers) nextDue(target time.Duration) *TimerHandle {
	if len(t.pending) == 0 {
		return nil
	}
	sort.SliceStable(t.pending, func(i, j int) bool {
		return t.pending[i].deadline < t.pending[j].deadline
	})
	if first := t.pending[0]; first.deadline <= target {
		return first
	}
	return nil
}

func (t *Timers) remove(id uint64) {
	for i, h := range t.pending {
		if h.id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
}
