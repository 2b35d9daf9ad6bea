package presstest

import (
	"time"

	"github.com/go-drift/press/pkg/schedule"
)

// Scheduler is a schedule.Scheduler driven by explicit Advance calls
// instead of real timers. Callbacks run inline from Advance, in due-time
// order with scheduling order breaking ties, and callbacks scheduled
// while advancing fire in the same Advance if they fall within it.
//
// Scheduler is not safe for concurrent use; it models a single event
// loop.
type Scheduler struct {
	clock *FakeClock
	tasks []*fakeTask
	seq   int
}

// NewScheduler returns a Scheduler with its own FakeClock.
func NewScheduler() *Scheduler {
	return &Scheduler{clock: NewFakeClock()}
}

// Clock returns the fake clock the scheduler advances.
func (s *Scheduler) Clock() *FakeClock {
	return s.clock
}

// Schedule registers fn to run once the clock has advanced by d.
func (s *Scheduler) Schedule(d time.Duration, fn func()) schedule.Handle {
	if d < 0 {
		d = 0
	}
	t := &fakeTask{
		due: s.clock.Now().Add(d),
		seq: s.seq,
		fn:  fn,
	}
	s.seq++
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every non-canceled task
// that falls due on the way, including tasks scheduled by the tasks
// themselves.
func (s *Scheduler) Advance(d time.Duration) {
	deadline := s.clock.Now().Add(d)
	for {
		next := s.takeNextDue(deadline)
		if next == nil {
			break
		}
		s.clock.Set(next.due)
		next.fn()
	}
	s.clock.Set(deadline)
}

// Pending returns the number of scheduled tasks that have neither run
// nor been canceled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

// takeNextDue removes and returns the earliest non-canceled task due at
// or before deadline, dropping canceled tasks as it goes.
func (s *Scheduler) takeNextDue(deadline time.Time) *fakeTask {
	var next *fakeTask
	nextIdx := -1
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.canceled {
			continue
		}
		kept = append(kept, t)
		if t.due.After(deadline) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.seq < next.seq) {
			next = t
			nextIdx = len(kept) - 1
		}
	}
	if next != nil {
		kept = append(kept[:nextIdx], kept[nextIdx+1:]...)
	}
	s.tasks = kept
	return next
}

type fakeTask struct {
	due      time.Time
	seq      int
	fn       func()
	canceled bool
}

func (t *fakeTask) Cancel() {
	t.canceled = true
}
