package ui

import (
	"strings"
	"testing"

	"github.com/go-drift/press/pkg/geometry"
)

func TestCanvasBox(t *testing.T) {
	c := newCanvas(6, 4)
	c.box(geometry.RectFromLTWH(0, 0, 6, 4), nil, false)

	lines := strings.Split(c.String(), "\n")
	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCanvasText(t *testing.T) {
	c := newCanvas(8, 2)
	c.text(1, 0, "press", nil)

	lines := strings.Split(c.String(), "\n")
	if lines[0] != " press  " {
		t.Errorf("line 0 = %q, want %q", lines[0], " press  ")
	}
}

func TestCanvasTextClipsAtEdge(t *testing.T) {
	c := newCanvas(4, 1)
	c.text(2, 0, "long", nil)

	if got := c.String(); got != "  lo" {
		t.Errorf("String() = %q, want %q", got, "  lo")
	}
}

func TestCanvasSetIgnoresOutOfBounds(t *testing.T) {
	c := newCanvas(2, 2)
	c.set(-1, 0, 'x', nil)
	c.set(0, -1, 'x', nil)
	c.set(2, 0, 'x', nil)
	c.set(0, 2, 'x', nil)

	if got := c.String(); got != "  \n  " {
		t.Errorf("String() = %q, want blank grid", got)
	}
}

func TestCanvasSmallBoxDegradesToFill(t *testing.T) {
	c := newCanvas(5, 1)
	c.box(geometry.RectFromLTWH(1, 0, 3, 1), nil, false)

	// One row is too short for a border, so no border glyphs appear.
	if got := c.String(); strings.ContainsAny(got, "┌┐└┘─│") {
		t.Errorf("String() = %q, want no border glyphs", got)
	}
}

func TestLabelCol(t *testing.T) {
	// A 6-cell stamp centered in a 12-cell frame leaves 3 cells each side.
	if got := labelCol(geometry.RectFromLTWH(3, 1, 12, 3), 6); got != 6 {
		t.Errorf("labelCol = %d, want 6", got)
	}
	if got := labelCol(geometry.RectFromLTWH(0, 0, 5, 1), 3); got != 1 {
		t.Errorf("labelCol = %d, want 1", got)
	}
}

func TestCanvasNestedBoxesStampInOrder(t *testing.T) {
	c := newCanvas(8, 5)
	c.box(geometry.RectFromLTWH(0, 0, 8, 5), nil, true)
	c.box(geometry.RectFromLTWH(2, 1, 4, 3), nil, false)

	lines := strings.Split(c.String(), "\n")
	if lines[1] != "│ ┌──┐ │" {
		t.Errorf("line 1 = %q, want %q", lines[1], "│ ┌──┐ │")
	}
	if lines[2] != "│ │  │ │" {
		t.Errorf("line 2 = %q, want %q", lines[2], "│ │  │ │")
	}
}
