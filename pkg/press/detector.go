package press

import (
	"github.com/go-drift/press/pkg/pointer"
	"github.com/go-drift/press/pkg/schedule"
)

// Detector converts pointer lifecycle events over an element tree into
// pressed and unpressed notifications.
//
// On pointer down it searches the tree for a flagged descendant: a fully
// pressed element is reported immediately, while a pre-pressed element is
// held back until the tap-confirmation delay elapses or the pointer is
// released. A press confirmed at release stays active for
// Timings.PressedStateDuration before the detector resets.
//
// A Detector is not safe for concurrent use. HandlePointer, Detach, and
// the callback registration methods must all be called from the goroutine
// that owns the event loop, and the scheduler must deliver its callbacks
// there as well.
type Detector struct {
	root      Element
	scheduler schedule.Scheduler
	timings   Timings

	prePressed Element
	pressed    Element

	tapTimer   schedule.Handle
	clearTimer schedule.Handle

	callbacks []Callback
}

// NewDetector returns a Detector searching the descendants of root.
// It panics if root or scheduler is nil; both are wiring mistakes, not
// runtime conditions.
func NewDetector(root Element, scheduler schedule.Scheduler, timings Timings) *Detector {
	if root == nil {
		panic("press: NewDetector called with nil root")
	}
	if scheduler == nil {
		panic("press: NewDetector called with nil scheduler")
	}
	return &Detector{
		root:      root,
		scheduler: scheduler,
		timings:   timings.withDefaults(),
	}
}

// Timings returns the delays the detector schedules with.
func (d *Detector) Timings() Timings {
	return d.timings
}

// PressedElement returns the element currently reported as pressed, or
// nil when no press is active.
func (d *Detector) PressedElement() Element {
	return d.pressed
}

// AddCallback registers cb for press-state notifications. Registering
// the same callback twice makes it fire twice.
func (d *Detector) AddCallback(cb Callback) {
	if cb == nil {
		return
	}
	d.callbacks = append(d.callbacks, cb)
}

// RemoveCallback unregisters the first registration of cb, matched by
// identity.
func (d *Detector) RemoveCallback(cb Callback) {
	for i := range d.callbacks {
		if d.callbacks[i] == cb {
			d.callbacks = append(d.callbacks[:i], d.callbacks[i+1:]...)
			return
		}
	}
}

// HandlePointer advances the state machine by one pointer event. The
// surrounding tree must already have applied the event to the element
// flags; the detector only reads them. Out-of-order or duplicate events
// fall into the reset path rather than failing.
func (d *Detector) HandlePointer(ev pointer.Event) {
	switch ev.Phase {
	case pointer.PhaseDown:
		d.reset()
		child := FindPressed(d.root)
		if child == nil {
			return
		}
		if child.Pressed() {
			d.setPressed(child)
		} else if child.PrePressed() {
			d.prePressed = child
			d.scheduleTapTimer()
		}
	case pointer.PhaseMove:
		if d.pressed != nil && !d.pressed.Pressed() {
			d.reset()
		}
	case pointer.PhaseUp:
		d.handleUp()
	case pointer.PhaseCancel:
		// A canceled stream leaves no timers behind.
		d.cancelClearTimer()
		d.reset()
	}
}

// Detach releases all pending timers and resets press state. The
// surrounding tree must call it when the root leaves the active
// hierarchy so no notification fires against a defunct tree.
func (d *Detector) Detach() {
	d.cancelClearTimer()
	d.reset()
}

// TemporaryDetach is Detach for transient removals; press state does not
// survive them.
func (d *Detector) TemporaryDetach() {
	d.Detach()
}

// checkForTap runs when the tap-confirmation delay elapses with the
// pointer still down. The candidate is promoted if its flags still show
// a press, and forgotten either way.
func (d *Detector) checkForTap() {
	d.tapTimer = nil
	candidate := d.prePressed
	d.prePressed = nil
	if candidate == nil {
		return
	}
	if candidate.PrePressed() || candidate.Pressed() {
		d.setPressed(candidate)
	}
}

// handleUp resolves a release. A candidate still flagged at release is
// promoted and held for PressedStateDuration; everything else resets
// immediately, including a press that was already confirmed at down.
func (d *Detector) handleUp() {
	d.cancelTapTimer()
	candidate := d.prePressed
	d.prePressed = nil
	if candidate != nil && (candidate.PrePressed() || candidate.Pressed()) {
		d.setPressed(candidate)
		d.scheduleClearTimer()
		return
	}
	d.reset()
}

func (d *Detector) unsetPressedState() {
	d.clearTimer = nil
	d.reset()
}

// reset cancels a pending tap confirmation, forgets the pre-pressed
// candidate, and notifies unpressed for the confirmed element if one is
// active.
func (d *Detector) reset() {
	d.cancelTapTimer()
	d.prePressed = nil
	if d.pressed != nil {
		el := d.pressed
		d.pressed = nil
		d.notifyUnpressed(el)
	}
}

func (d *Detector) setPressed(el Element) {
	d.pressed = el
	d.notifyPressed(el)
}

// At most one timer of each name is outstanding: scheduling replaces any
// prior instance.
func (d *Detector) scheduleTapTimer() {
	d.cancelTapTimer()
	d.tapTimer = d.scheduler.Schedule(d.timings.TapTimeout, d.checkForTap)
}

func (d *Detector) scheduleClearTimer() {
	d.cancelClearTimer()
	d.clearTimer = d.scheduler.Schedule(d.timings.PressedStateDuration, d.unsetPressedState)
}

func (d *Detector) cancelTapTimer() {
	if d.tapTimer != nil {
		d.tapTimer.Cancel()
		d.tapTimer = nil
	}
}

func (d *Detector) cancelClearTimer() {
	if d.clearTimer != nil {
		d.clearTimer.Cancel()
		d.clearTimer = nil
	}
}

// Notification iterates a snapshot so callbacks may register or remove
// callbacks during delivery.
func (d *Detector) notifyPressed(el Element) {
	for _, cb := range d.snapshotCallbacks() {
		cb.OnElementPressed(el)
	}
}

func (d *Detector) notifyUnpressed(el Element) {
	for _, cb := range d.snapshotCallbacks() {
		cb.OnElementUnpressed(el)
	}
}

func (d *Detector) snapshotCallbacks() []Callback {
	if len(d.callbacks) == 0 {
		return nil
	}
	return append([]Callback(nil), d.callbacks...)
}
