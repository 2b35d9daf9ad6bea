// Package pointer defines the pointer event model consumed by the press
// detector. Embedders classify each platform touch or mouse event into one
// of four phases and deliver it, with positions already resolved, on a
// single event-loop goroutine.
package pointer

import (
	"fmt"

	"github.com/go-drift/press/pkg/geometry"
)

// Phase identifies where an event sits in a pointer's lifecycle.
type Phase int

const (
	// PhaseDown marks first contact of a pointer.
	PhaseDown Phase = iota
	// PhaseMove marks motion while the pointer is down.
	PhaseMove
	// PhaseUp marks a normal release.
	PhaseUp
	// PhaseCancel marks an aborted interaction (e.g. the platform claimed
	// the pointer stream for scrolling, or the window lost focus).
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// Event is a single pointer lifecycle event.
type Event struct {
	// PointerID distinguishes simultaneous pointers (fingers, mice).
	PointerID int64
	// Position is the pointer location in logical coordinates.
	Position geometry.Offset
	// Delta is the movement since the previous event of this pointer.
	// Zero for PhaseDown.
	Delta geometry.Offset
	// Phase is the lifecycle phase of this event.
	Phase Phase
}

func (e Event) String() string {
	return fmt.Sprintf("%s pointer=%d at (%.1f, %.1f)", e.Phase, e.PointerID, e.Position.X, e.Position.Y)
}
