// Package scene plays the platform side of the press contract: a small
// element tree laid out in terminal cells, with hit testing and the
// pointer-driven flag choreography the detector observes. Flags are set
// before each event reaches the detector, mirroring how a real toolkit
// updates its views first and lets observers read the result.
package scene

import (
	"github.com/go-drift/press/pkg/geometry"
	"github.com/go-drift/press/pkg/press"
	"github.com/go-drift/press/pkg/schedule"
)

// Cell metrics used to scale terminal-cell frames to snapshot pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Node is one scene element. It implements press.Element; its frame is
// in terminal cells and its Bounds in snapshot pixels.
type Node struct {
	name       string
	frame      geometry.Rect
	deferPress bool
	invisible  bool
	children   []*Node

	prePressed bool
	pressed    bool
	unset      schedule.Handle
}

// Name returns the node's configured name.
func (n *Node) Name() string { return n.name }

func (n *Node) String() string { return n.name }

// Frame returns the node's rectangle in terminal cells.
func (n *Node) Frame() geometry.Rect { return n.frame }

// Bounds returns the node's rectangle scaled to snapshot pixels.
func (n *Node) Bounds() geometry.Rect {
	return geometry.Rect{
		Left:   n.frame.Left * CellWidth,
		Top:    n.frame.Top * CellHeight,
		Right:  n.frame.Right * CellWidth,
		Bottom: n.frame.Bottom * CellHeight,
	}
}

// Children returns the node's children in z-order, back to front.
func (n *Node) Children() []*Node { return n.children }

// VisitChildren implements press.Element.
func (n *Node) VisitChildren(visitor func(press.Element) bool) {
	for _, child := range n.children {
		if !visitor(child) {
			return
		}
	}
}

// Visible implements press.Element.
func (n *Node) Visible() bool { return !n.invisible }

// PrePressed implements press.Element.
func (n *Node) PrePressed() bool { return n.prePressed }

// Pressed implements press.Element.
func (n *Node) Pressed() bool { return n.pressed }

// Walk visits n and its descendants pre-order. Returning false skips
// the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// Find returns the descendant (or n itself) with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if found != nil {
			return false
		}
		if node.name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

func (n *Node) clearFlags() {
	n.prePressed = false
	n.pressed = false
}

func (n *Node) cancelUnset() {
	if n.unset != nil {
		n.unset.Cancel()
		n.unset = nil
	}
}
