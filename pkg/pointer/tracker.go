package pointer

import "github.com/go-drift/press/pkg/geometry"

// Tracker fills in per-pointer movement deltas for embedders whose input
// source reports absolute positions only. Track each event in arrival
// order; state for a pointer is dropped once its stream ends with PhaseUp
// or PhaseCancel.
//
// Tracker is not safe for concurrent use; call it from the event loop that
// delivers the events.
type Tracker struct {
	positions map[int64]geometry.Offset
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{positions: make(map[int64]geometry.Offset)}
}

// Track records ev's position and returns a copy of ev with Delta set to
// the movement since the pointer's previous event. A PhaseDown event, or
// the first event seen for a pointer, carries a zero delta.
func (t *Tracker) Track(ev Event) Event {
	if ev.Phase != PhaseDown {
		if last, ok := t.positions[ev.PointerID]; ok {
			ev.Delta = ev.Position.Sub(last)
		}
	}
	t.positions[ev.PointerID] = ev.Position

	if ev.Phase == PhaseUp || ev.Phase == PhaseCancel {
		delete(t.positions, ev.PointerID)
	}
	return ev
}

// Active returns the number of pointers currently being tracked.
func (t *Tracker) Active() int {
	return len(t.positions)
}
