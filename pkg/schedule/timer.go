package schedule

import (
	"sync/atomic"
	"time"
)

// TimerScheduler schedules callbacks with real timers.
//
// Dispatch, when set, forwards each fired callback onto the embedder's
// event loop (for example a Bubble Tea program's Send, or the UI-thread
// dispatch of a native shell). When Dispatch is nil, callbacks run directly
// on the timer goroutine and the caller is responsible for any
// synchronization.
//
// A canceled handle never runs its callback, even if the underlying timer
// fired while the dispatch was still in flight.
type TimerScheduler struct {
	Dispatch func(func())
}

// NewTimerScheduler creates a scheduler that delivers callbacks through
// dispatch. Pass nil to run callbacks on the timer goroutine.
func NewTimerScheduler(dispatch func(func())) *TimerScheduler {
	return &TimerScheduler{Dispatch: dispatch}
}

// Schedule runs fn after d. The returned handle cancels the callback.
func (s *TimerScheduler) Schedule(d time.Duration, fn func()) Handle {
	task := &timerTask{}
	run := func() {
		// Settle the race between Cancel and a timer that already fired:
		// whoever flips done first wins.
		if !task.done.CompareAndSwap(false, true) {
			return
		}
		fn()
	}
	task.timer = time.AfterFunc(d, func() {
		if s.Dispatch != nil {
			s.Dispatch(run)
			return
		}
		run()
	})
	return task
}

type timerTask struct {
	timer *time.Timer
	done  atomic.Bool
}

func (t *timerTask) Cancel() {
	if t.done.CompareAndSwap(false, true) {
		t.timer.Stop()
	}
}
