package inspect

import (
	"fmt"
	"image"

	"github.com/go-drift/press/pkg/geometry"
	"github.com/go-drift/press/pkg/press"
)

// BoxState classifies how an element is drawn.
type BoxState int

const (
	// BoxIdle is an element with no press flags.
	BoxIdle BoxState = iota
	// BoxPrePressed is an element awaiting tap confirmation.
	BoxPrePressed
	// BoxPressed is a fully pressed element.
	BoxPressed
	// BoxExcluded is an element opted out of press detection.
	BoxExcluded
)

func (s BoxState) String() string {
	switch s {
	case BoxPrePressed:
		return "prepressed"
	case BoxPressed:
		return "pressed"
	case BoxExcluded:
		return "excluded"
	default:
		return "idle"
	}
}

// BoundedElement is an element that knows its own screen bounds.
// Elements that do not implement it are traversed but not drawn.
type BoundedElement interface {
	press.Element
	Bounds() geometry.Rect
}

// Box is one element's visual summary in a frame.
type Box struct {
	Rect  geometry.Rect
	Label string
	State BoxState
}

// CollectBoxes flattens the subtree rooted at root, root included, into
// one Box per visible bounded element, in depth-first pre-order.
func CollectBoxes(root press.Element) []Box {
	var boxes []Box
	collectBoxes(root, &boxes)
	return boxes
}

func collectBoxes(el press.Element, boxes *[]Box) {
	if el == nil || !el.Visible() {
		return
	}
	if bounded, ok := el.(BoundedElement); ok {
		*boxes = append(*boxes, Box{
			Rect:  bounded.Bounds(),
			Label: labelOf(el),
			State: stateOf(el),
		})
	}
	el.VisitChildren(func(child press.Element) bool {
		collectBoxes(child, boxes)
		return true
	})
}

func labelOf(el press.Element) string {
	if s, ok := el.(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}

func stateOf(el press.Element) BoxState {
	switch {
	case press.IsExcluded(el):
		return BoxExcluded
	case el.Pressed():
		return BoxPressed
	case el.PrePressed():
		return BoxPrePressed
	default:
		return BoxIdle
	}
}

// RenderTree clears the frame and draws one box per visible bounded
// element in root's subtree.
func (r *Renderer) RenderTree(root press.Element) {
	r.Clear()
	for _, box := range CollectBoxes(root) {
		r.drawBox(box)
	}
}

// Snapshot renders root's subtree into a fresh width-by-height frame and
// writes it to path as a PNG.
func Snapshot(root press.Element, width, height int, path string) error {
	r := NewRenderer(width, height)
	r.RenderTree(root)
	return r.SavePNG(path)
}

// snapshotMargin is the padding around fitted snapshots, in pixels.
const snapshotMargin = 8

// SnapshotFit renders root's subtree into a frame sized to its visible
// boxes, shifted so the content sits a margin inside each edge, and
// writes it to path as a PNG. It fails when nothing in the subtree is
// visible and bounded.
func SnapshotFit(root press.Element, path string) error {
	r, err := renderFit(root)
	if err != nil {
		return err
	}
	return r.SavePNG(path)
}

func renderFit(root press.Element) (*Renderer, error) {
	boxes := CollectBoxes(root)
	bounds := boxBounds(boxes)
	size := bounds.Size()
	if size.IsEmpty() {
		return nil, fmt.Errorf("fit snapshot: no visible boxes to size the frame")
	}
	r := NewRenderer(int(size.Width)+2*snapshotMargin, int(size.Height)+2*snapshotMargin)
	for _, box := range boxes {
		box.Rect = box.Rect.Translate(snapshotMargin-bounds.Left, snapshotMargin-bounds.Top)
		r.drawBox(box)
	}
	return r, nil
}

// boxBounds is the union of every box rect, or the zero Rect when there
// are none.
func boxBounds(boxes []Box) geometry.Rect {
	if len(boxes) == 0 {
		return geometry.Rect{}
	}
	bounds := boxes[0].Rect
	for _, b := range boxes[1:] {
		bounds = bounds.Union(b.Rect)
	}
	return bounds
}

func (r *Renderer) drawBox(b Box) {
	x, y := int(b.Rect.Left), int(b.Rect.Top)
	w, h := int(b.Rect.Width()), int(b.Rect.Height())
	if w <= 0 || h <= 0 {
		return
	}

	switch b.State {
	case BoxPressed:
		r.FillRect(x, y, w, h)
	case BoxPrePressed:
		r.DrawRect(x, y, w, h)
		if w > 4 && h > 4 {
			r.DrawRect(x+2, y+2, w-4, h-4)
		}
	default:
		r.DrawRect(x, y, w, h)
	}

	if b.State == BoxExcluded {
		r.strike(x, y, w, h)
	}

	if b.Label != "" && w > 10 && h > 16 {
		src := image.White
		if b.State == BoxPressed {
			src = image.Black
		}
		r.drawText(x+3, y+14, b.Label, src)
	}
}

// strike draws a corner-to-corner diagonal across the box.
func (r *Renderer) strike(x, y, w, h int) {
	steps := w
	if h > steps {
		steps = h
	}
	if steps <= 1 {
		return
	}
	for i := 0; i < steps; i++ {
		px := x + i*(w-1)/(steps-1)
		py := y + i*(h-1)/(steps-1)
		r.SetPixel(px, py, true)
	}
}
