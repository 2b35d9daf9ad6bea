package presstest

import "github.com/go-drift/press/pkg/press"

// Node is a press.Element for building test trees out of struct
// literals. The zero value is a visible, unflagged leaf.
type Node struct {
	Name      string
	Children  []*Node
	Invisible bool
	PrePress  bool
	Press     bool
}

func (n *Node) VisitChildren(visitor func(press.Element) bool) {
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		if !visitor(child) {
			return
		}
	}
}

func (n *Node) Visible() bool    { return !n.Invisible }
func (n *Node) PrePressed() bool { return n.PrePress }
func (n *Node) Pressed() bool    { return n.Press }

func (n *Node) String() string { return n.Name }

// Find returns the first node named name in n's subtree, including n
// itself, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}
