package press

import "sync"

// Element is a node in the tree a Detector searches. Elements are owned
// by the surrounding tree; the detector holds only transient references
// that are dropped on every reset.
type Element interface {
	// VisitChildren calls visitor for each direct child in order.
	// The visitor returns false to stop iteration.
	VisitChildren(visitor func(Element) bool)
	// Visible reports whether the element is currently shown. Invisible
	// elements and their subtrees are never press candidates.
	Visible() bool
	// PrePressed reports the transient flag set while a press awaits
	// framework confirmation.
	PrePressed() bool
	// Pressed reports the confirmed pressed flag.
	Pressed() bool
}

var (
	excludeMu sync.RWMutex
	excluded  map[Element]struct{}
)

// Exclude opts el out of press detection for the rest of its lifetime.
// A search that reaches an excluded element in pressed or pre-pressed
// state terminates immediately instead of moving on to later elements.
// Safe to call from any goroutine.
func Exclude(el Element) {
	if el == nil {
		return
	}
	excludeMu.Lock()
	if excluded == nil {
		excluded = make(map[Element]struct{})
	}
	excluded[el] = struct{}{}
	excludeMu.Unlock()
}

// IsExcluded reports whether el has been passed to Exclude.
func IsExcluded(el Element) bool {
	excludeMu.RLock()
	_, ok := excluded[el]
	excludeMu.RUnlock()
	return ok
}
