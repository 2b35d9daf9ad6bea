package presstest

import (
	"testing"

	"github.com/go-drift/press/pkg/press"
)

func TestNode_ZeroValueIsVisibleLeaf(t *testing.T) {
	n := &Node{Name: "leaf"}

	if !n.Visible() {
		t.Error("zero-value node should be visible")
	}
	if n.PrePressed() || n.Pressed() {
		t.Error("zero-value node should carry no press flags")
	}

	visited := 0
	n.VisitChildren(func(press.Element) bool {
		visited++
		return true
	})
	if visited != 0 {
		t.Errorf("visited %d children of a leaf, want 0", visited)
	}
}

func TestNode_VisitChildrenStopsOnFalse(t *testing.T) {
	root := &Node{Name: "root", Children: []*Node{
		{Name: "a"}, {Name: "b"}, {Name: "c"},
	}}

	var seen []string
	root.VisitChildren(func(el press.Element) bool {
		seen = append(seen, el.(*Node).Name)
		return len(seen) < 2
	})

	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Errorf("seen = %v, want iteration to stop after b", seen)
	}
}

func TestNode_Find(t *testing.T) {
	root := &Node{Name: "root", Children: []*Node{
		{Name: "a", Children: []*Node{{Name: "deep"}}},
		{Name: "b"},
	}}

	if got := root.Find("deep"); got == nil || got.Name != "deep" {
		t.Errorf("Find(deep) = %v, want the nested node", got)
	}
	if got := root.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
	if got := root.Find("root"); got != root {
		t.Errorf("Find(root) = %v, want the root itself", got)
	}
}

func TestNode_NilChildrenAreSkipped(t *testing.T) {
	root := &Node{Name: "root", Children: []*Node{
		nil,
		{Name: "after"},
	}}

	var seen []string
	root.VisitChildren(func(el press.Element) bool {
		seen = append(seen, el.(*Node).Name)
		return true
	})
	if len(seen) != 1 || seen[0] != "after" {
		t.Errorf("seen = %v, want only the real child", seen)
	}

	if got := root.Find("after"); got == nil || got.Name != "after" {
		t.Errorf("Find(after) = %v, want the node past the nil hole", got)
	}
	if got := root.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
}

func TestCallbackRecorder_Balanced(t *testing.T) {
	a := &Node{Name: "a"}
	b := &Node{Name: "b"}

	r := &CallbackRecorder{}
	r.OnElementPressed(a)
	r.OnElementUnpressed(a)
	r.OnElementPressed(b)

	if r.Balanced() {
		t.Error("expected unbalanced while b is still pressed")
	}

	r.OnElementUnpressed(b)

	if !r.Balanced() {
		t.Error("expected balanced after b is unpressed")
	}

	r.Reset()
	if len(r.Pressed) != 0 || len(r.Unpressed) != 0 || !r.Balanced() {
		t.Error("Reset should clear all recordings")
	}
}
