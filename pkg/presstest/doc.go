// Package presstest provides deterministic test doubles for exercising
// press detection: a controllable clock, a manually advanced scheduler,
// a tree node, and a callback recorder.
//
// # Quick Start
//
// Build a tree out of Nodes, drive a detector with pointer events, and
// advance the scheduler instead of sleeping:
//
//	scheduler := presstest.NewScheduler()
//	button := &presstest.Node{Name: "button", PrePress: true}
//	root := &presstest.Node{Name: "root", Children: []*presstest.Node{button}}
//
//	detector := press.NewDetector(root, scheduler, press.Timings{})
//	recorder := &presstest.CallbackRecorder{}
//	detector.AddCallback(recorder)
//
//	detector.HandlePointer(pointer.Event{Phase: pointer.PhaseDown})
//	scheduler.Advance(press.DefaultTapTimeout)
//
//	// recorder.Pressed now holds button.
//
// The scheduler runs callbacks inline from Advance, on the calling
// goroutine, which matches the single-goroutine delivery the detector
// requires.
package presstest
