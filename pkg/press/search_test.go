package press_test

import (
	"testing"

	"github.com/go-drift/press/pkg/press"
	"github.com/go-drift/press/pkg/presstest"
)

func TestFindPressed_FirstPreOrderMatch(t *testing.T) {
	nested := &presstest.Node{Name: "nested", Press: true}
	later := &presstest.Node{Name: "later", Press: true}
	root := &presstest.Node{Name: "root", Children: []*presstest.Node{
		{Name: "header"},
		{Name: "list", Children: []*presstest.Node{
			{Name: "row0"},
			{Name: "row1", Children: []*presstest.Node{nested}},
		}},
		later,
	}}

	if got := press.FindPressed(root); got != press.Element(nested) {
		t.Errorf("FindPressed = %v, want %v", got, nested)
	}
}

func TestFindPressed_PrePressedMatches(t *testing.T) {
	prepressed := &presstest.Node{Name: "prepressed", PrePress: true}
	root := &presstest.Node{Name: "root", Children: []*presstest.Node{prepressed}}

	if got := press.FindPressed(root); got != press.Element(prepressed) {
		t.Errorf("FindPressed = %v, want %v", got, prepressed)
	}
}

func TestFindPressed_NoMatch(t *testing.T) {
	root := &presstest.Node{Name: "root", Children: []*presstest.Node{
		{Name: "a"},
		{Name: "b", Children: []*presstest.Node{{Name: "c"}}},
	}}

	if got := press.FindPressed(root); got != nil {
		t.Errorf("FindPressed = %v, want nil", got)
	}
}

func TestFindPressed_NilRoot(t *testing.T) {
	if got := press.FindPressed(nil); got != nil {
		t.Errorf("FindPressed(nil) = %v, want nil", got)
	}
}

func TestFindPressed_RootNeverCandidate(t *testing.T) {
	root := &presstest.Node{Name: "root", Press: true, Children: []*presstest.Node{
		{Name: "child"},
	}}

	if got := press.FindPressed(root); got != nil {
		t.Errorf("FindPressed = %v, want nil when only the root is flagged", got)
	}
}

func TestFindPressed_SkipsInvisibleSubtree(t *testing.T) {
	hidden := &presstest.Node{Name: "hidden", Invisible: true, Children: []*presstest.Node{
		{Name: "hiddenChild", Press: true},
	}}
	visible := &presstest.Node{Name: "visible", Press: true}
	root := &presstest.Node{Name: "root", Children: []*presstest.Node{hidden, visible}}

	if got := press.FindPressed(root); got != press.Element(visible) {
		t.Errorf("FindPressed = %v, want %v; invisible subtrees must be skipped", got, visible)
	}
}

func TestFindPressed_ExclusionAbortsSearch(t *testing.T) {
	excluded := &presstest.Node{Name: "excluded", Press: true}
	sibling := &presstest.Node{Name: "sibling", Press: true}
	root := &presstest.Node{Name: "root", Children: []*presstest.Node{excluded, sibling}}

	press.Exclude(excluded)

	if got := press.FindPressed(root); got != nil {
		t.Errorf("FindPressed = %v, want nil; an excluded match must abort the search", got)
	}
}

func TestFindPressed_NestedExclusionAbortsWholeSearch(t *testing.T) {
	excluded := &presstest.Node{Name: "excluded", Press: true}
	later := &presstest.Node{Name: "later", Press: true}
	root := &presstest.Node{Name: "root", Children: []*presstest.Node{
		{Name: "container", Children: []*presstest.Node{excluded}},
		later,
	}}

	press.Exclude(excluded)

	if got := press.FindPressed(root); got != nil {
		t.Errorf("FindPressed = %v, want nil; exclusion deep in one subtree must stop sibling scanning too", got)
	}
}

func TestFindPressed_ExclusionOnlyMattersWhenFlagged(t *testing.T) {
	excluded := &presstest.Node{Name: "excluded"}
	pressed := &presstest.Node{Name: "pressed", Press: true}
	root := &presstest.Node{Name: "root", Children: []*presstest.Node{excluded, pressed}}

	press.Exclude(excluded)

	if got := press.FindPressed(root); got != press.Element(pressed) {
		t.Errorf("FindPressed = %v, want %v; an unflagged excluded element is just skipped over", got, pressed)
	}
}

func TestIsExcluded(t *testing.T) {
	a := &presstest.Node{Name: "a"}
	b := &presstest.Node{Name: "b"}

	press.Exclude(a)

	if !press.IsExcluded(a) {
		t.Error("expected a to be excluded")
	}
	if press.IsExcluded(b) {
		t.Error("expected b not to be excluded")
	}
}

func TestExclude_NilIsIgnored(t *testing.T) {
	press.Exclude(nil)
	if press.IsExcluded(nil) {
		t.Error("nil must never read as excluded")
	}
}
