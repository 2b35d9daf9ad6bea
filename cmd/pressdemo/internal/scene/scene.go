package scene

import (
	"time"

	"github.com/go-drift/press/pkg/geometry"
	"github.com/go-drift/press/pkg/pointer"
	"github.com/go-drift/press/pkg/press"
	"github.com/go-drift/press/pkg/schedule"
)

// Scene owns a node tree and applies pointer events to its press flags.
// Nodes behave like toolkit views: a plain node shows pressed state the
// moment it is touched, a defer-press node waits out the tap timeout
// before committing (so a scroll could still claim the gesture), and a
// release flashes pressed state for the pressed-state duration.
//
// Apply must run on the same goroutine as the detector, before the
// detector sees each event.
type Scene struct {
	root      *Node
	scheduler schedule.Scheduler
	timings   press.Timings

	active  *Node
	promote schedule.Handle
}

// New creates a scene driven by the given scheduler. Zero timing fields
// fall back to the detector defaults.
func New(root *Node, scheduler schedule.Scheduler, timings press.Timings) *Scene {
	if timings.TapTimeout <= 0 {
		timings.TapTimeout = press.DefaultTapTimeout
	}
	if timings.PressedStateDuration <= 0 {
		timings.PressedStateDuration = press.DefaultPressedStateDuration
	}
	return &Scene{
		root:      root,
		scheduler: scheduler,
		timings:   timings,
	}
}

// Root returns the scene's window node.
func (s *Scene) Root() *Node { return s.root }

// HitTest returns the topmost visible node containing p, or nil if the
// point misses everything. The window root is never a target.
func (s *Scene) HitTest(p geometry.Offset) *Node {
	hit := hitTest(s.root, p)
	if hit == s.root {
		return nil
	}
	return hit
}

func hitTest(n *Node, p geometry.Offset) *Node {
	if !n.Visible() || !n.frame.Contains(p) {
		return nil
	}
	// Later siblings draw on top, so scan front to back.
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTest(n.children[i], p); hit != nil {
			return hit
		}
	}
	return n
}

// Apply updates node flags for one pointer event.
func (s *Scene) Apply(ev pointer.Event) {
	switch ev.Phase {
	case pointer.PhaseDown:
		s.abandonStream()
		target := s.HitTest(ev.Position)
		if target == nil {
			return
		}
		s.active = target
		target.cancelUnset()
		if target.deferPress {
			target.prePressed = true
			s.promote = s.scheduler.Schedule(s.timings.TapTimeout, func() {
				s.promote = nil
				if s.active == target && target.prePressed {
					target.prePressed = false
					target.pressed = true
				}
			})
		} else {
			target.pressed = true
		}

	case pointer.PhaseMove:
		if s.active == nil {
			return
		}
		// Leaving the node abandons its press for the rest of the
		// stream; coming back does not re-press.
		if !s.active.frame.Contains(ev.Position) {
			s.cancelPromote()
			s.active.clearFlags()
		}

	case pointer.PhaseUp:
		s.cancelPromote()
		target := s.active
		s.active = nil
		if target == nil {
			return
		}
		if target.prePressed {
			// Tap released before the timeout: flash pressed state.
			target.prePressed = false
			target.pressed = true
			s.scheduleUnset(target, s.timings.PressedStateDuration)
		} else if target.pressed {
			s.scheduleUnset(target, 0)
		}

	case pointer.PhaseCancel:
		s.abandonStream()
	}
}

// Reset clears every flag and pending callback, leaving the tree idle.
func (s *Scene) Reset() {
	s.cancelPromote()
	s.active = nil
	s.root.Walk(func(n *Node) bool {
		n.cancelUnset()
		n.clearFlags()
		return true
	})
}

func (s *Scene) abandonStream() {
	s.cancelPromote()
	if s.active != nil {
		s.active.clearFlags()
		s.active = nil
	}
}

func (s *Scene) cancelPromote() {
	if s.promote != nil {
		s.promote.Cancel()
		s.promote = nil
	}
}

func (s *Scene) scheduleUnset(n *Node, d time.Duration) {
	n.unset = s.scheduler.Schedule(d, func() {
		n.unset = nil
		n.pressed = false
	})
}
