// Package schedule provides the deferred-callback primitive the press
// detector requires from its environment: run a callback after a delay,
// cancelable, delivered on the embedder's event loop.
package schedule

import "time"

// Clock provides the current time. The default implementation uses system
// time; tests inject a fake clock to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System is the wall clock.
var System Clock = systemClock{}

// Handle cancels a scheduled callback. Canceling is idempotent; canceling
// after the callback has started running has no effect.
type Handle interface {
	Cancel()
}

// Scheduler schedules callbacks to run after a delay. Implementations must
// deliver callbacks on the same goroutine that drives the scheduling
// caller, or document that the caller must arrange delivery itself.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Handle
}
