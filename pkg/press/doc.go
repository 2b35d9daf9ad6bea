// Package press detects which element of a nested element tree currently
// holds pressed interaction state.
//
// The package has two cooperating parts. FindPressed is a stateless
// pre-order search that returns the first visible descendant whose
// pre-pressed or pressed flag is set, abandoning the whole search when
// that element has been excluded. Detector is a state machine that drives
// FindPressed from pointer lifecycle events and converts the result into
// pressed and unpressed notifications, honoring a tap-confirmation delay
// and a minimum pressed-visible duration.
//
// # Integration contract
//
// The surrounding tree owns hit-testing and flag bookkeeping. By the time
// Detector.HandlePointer is called, the tree must already have applied
// the event to each element's flags; the detector only reads them.
// Elements participate through the Element interface and must be
// comparable values (use pointer receivers), because exclusion and
// callback removal work by identity.
//
// # Threading
//
// A Detector is confined to the single goroutine that delivers its
// pointer events, and the schedule.Scheduler it is constructed with must
// deliver timer callbacks on that same goroutine. Only Exclude and
// IsExcluded are safe to call from any goroutine.
//
// # Usage
//
//	detector := press.NewDetector(root, scheduler, press.Timings{})
//	detector.AddCallback(&press.CallbackFuncs{
//	    Pressed:   func(el press.Element) { highlight(el) },
//	    Unpressed: func(el press.Element) { unhighlight(el) },
//	})
//	for ev := range events {
//	    detector.HandlePointer(ev)
//	}
package press
