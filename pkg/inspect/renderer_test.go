package inspect

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/press/pkg/geometry"
	"github.com/go-drift/press/pkg/press"
)

func TestNewRenderer(t *testing.T) {
	r := NewRenderer(128, 64)

	if r.Width() != 128 {
		t.Errorf("Width() = %d, want 128", r.Width())
	}
	if r.Height() != 64 {
		t.Errorf("Height() = %d, want 64", r.Height())
	}
}

func TestRendererClear(t *testing.T) {
	r := NewRenderer(8, 8)

	r.SetPixel(0, 0, true)
	r.SetPixel(7, 7, true)
	r.Clear()

	img := r.Image()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if img.GrayAt(x, y).Y != 0 {
				t.Fatalf("pixel (%d,%d) = %d after Clear(), want 0", x, y, img.GrayAt(x, y).Y)
			}
		}
	}
}

func TestRendererFillRect(t *testing.T) {
	r := NewRenderer(8, 4)

	r.FillRect(2, 1, 4, 2)

	img := r.Image()
	if img.GrayAt(2, 1).Y != 255 || img.GrayAt(5, 2).Y != 255 {
		t.Error("expected filled interior pixels to be white")
	}
	if img.GrayAt(1, 1).Y != 0 || img.GrayAt(6, 1).Y != 0 || img.GrayAt(2, 0).Y != 0 {
		t.Error("expected pixels outside the rect to stay black")
	}
}

func TestRendererDrawRect(t *testing.T) {
	r := NewRenderer(8, 4)

	r.DrawRect(2, 0, 4, 3)

	img := r.Image()
	// Edges on, interior off.
	if img.GrayAt(2, 0).Y != 255 || img.GrayAt(5, 0).Y != 255 {
		t.Error("expected top edge pixels on")
	}
	if img.GrayAt(2, 2).Y != 255 || img.GrayAt(5, 2).Y != 255 {
		t.Error("expected bottom edge pixels on")
	}
	if img.GrayAt(3, 1).Y != 0 || img.GrayAt(4, 1).Y != 0 {
		t.Error("expected interior pixels off")
	}
}

func TestRendererDrawText(t *testing.T) {
	r := NewRenderer(64, 16)

	r.DrawText(0, 13, "Hello")

	img := r.Image()
	hasPixels := false
	for y := 0; y < 16 && !hasPixels; y++ {
		for x := 0; x < 64; x++ {
			if img.GrayAt(x, y).Y != 0 {
				hasPixels = true
				break
			}
		}
	}
	if !hasPixels {
		t.Error("DrawText() didn't set any pixels")
	}
}

func TestRendererWritePNG(t *testing.T) {
	r := NewRenderer(32, 16)
	r.FillRect(0, 0, 8, 8)

	var buf bytes.Buffer
	if err := r.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding written PNG failed: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 16 {
		t.Errorf("decoded bounds = %dx%d, want 32x16", bounds.Dx(), bounds.Dy())
	}
}

// boxNode is a bounded element for renderer tests.
type boxNode struct {
	name     string
	children []*boxNode
	bounds   geometry.Rect
	hidden   bool
	prePress bool
	pressed  bool
}

func (n *boxNode) VisitChildren(visitor func(press.Element) bool) {
	for _, child := range n.children {
		if !visitor(child) {
			return
		}
	}
}

func (n *boxNode) Visible() bool         { return !n.hidden }
func (n *boxNode) PrePressed() bool      { return n.prePress }
func (n *boxNode) Pressed() bool         { return n.pressed }
func (n *boxNode) Bounds() geometry.Rect { return n.bounds }
func (n *boxNode) String() string        { return n.name }

func TestCollectBoxes(t *testing.T) {
	pressedChild := &boxNode{
		name:    "pressed",
		bounds:  geometry.RectFromLTWH(10, 10, 20, 20),
		pressed: true,
	}
	hiddenChild := &boxNode{
		name:   "hidden",
		bounds: geometry.RectFromLTWH(40, 10, 20, 20),
		hidden: true,
		children: []*boxNode{
			{name: "insideHidden", bounds: geometry.RectFromLTWH(42, 12, 5, 5), pressed: true},
		},
	}
	root := &boxNode{
		name:     "root",
		bounds:   geometry.RectFromLTWH(0, 0, 100, 50),
		children: []*boxNode{pressedChild, hiddenChild},
	}

	boxes := CollectBoxes(root)

	if len(boxes) != 2 {
		t.Fatalf("len(boxes) = %d, want 2 (root and pressed child)", len(boxes))
	}
	if boxes[0].Label != "root" || boxes[0].State != BoxIdle {
		t.Errorf("boxes[0] = %+v, want idle root", boxes[0])
	}
	if boxes[1].Label != "pressed" || boxes[1].State != BoxPressed {
		t.Errorf("boxes[1] = %+v, want pressed child", boxes[1])
	}
}

func TestCollectBoxes_States(t *testing.T) {
	excluded := &boxNode{name: "excluded", bounds: geometry.RectFromLTWH(0, 0, 10, 10)}
	press.Exclude(excluded)

	tests := []struct {
		name string
		node *boxNode
		want BoxState
	}{
		{"idle", &boxNode{name: "idle", bounds: geometry.RectFromLTWH(0, 0, 10, 10)}, BoxIdle},
		{"prepressed", &boxNode{name: "pre", bounds: geometry.RectFromLTWH(0, 0, 10, 10), prePress: true}, BoxPrePressed},
		{"pressed", &boxNode{name: "down", bounds: geometry.RectFromLTWH(0, 0, 10, 10), pressed: true}, BoxPressed},
		{"excluded", excluded, BoxExcluded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := &boxNode{name: "root", children: []*boxNode{tt.node}}
			boxes := CollectBoxes(root)
			if len(boxes) != 2 {
				t.Fatalf("len(boxes) = %d, want root plus child", len(boxes))
			}
			if boxes[1].State != tt.want {
				t.Errorf("State = %v, want %v", boxes[1].State, tt.want)
			}
		})
	}
}

func TestRenderTree(t *testing.T) {
	pressedChild := &boxNode{
		name:    "down",
		bounds:  geometry.RectFromLTWH(4, 4, 8, 8),
		pressed: true,
	}
	root := &boxNode{
		name:     "root",
		bounds:   geometry.RectFromLTWH(0, 0, 32, 32),
		children: []*boxNode{pressedChild},
	}

	r := NewRenderer(32, 32)
	r.RenderTree(root)

	img := r.Image()
	if img.GrayAt(0, 0).Y != 255 {
		t.Error("expected root outline corner on")
	}
	if img.GrayAt(7, 7).Y != 255 {
		t.Error("expected pressed child interior filled")
	}
	if img.GrayAt(20, 20).Y != 0 {
		t.Error("expected pixels outside all boxes off")
	}
}

func TestRenderFit(t *testing.T) {
	pressed := &boxNode{
		name:    "down",
		bounds:  geometry.RectFromLTWH(20, 40, 8, 8),
		pressed: true,
	}
	root := &boxNode{
		name:     "root",
		bounds:   geometry.RectFromLTWH(16, 32, 24, 24),
		children: []*boxNode{pressed},
	}

	r, err := renderFit(root)
	if err != nil {
		t.Fatalf("renderFit failed: %v", err)
	}

	if r.Width() != 24+2*snapshotMargin || r.Height() != 24+2*snapshotMargin {
		t.Errorf("frame = %dx%d, want the union of the boxes plus margins", r.Width(), r.Height())
	}

	img := r.Image()
	// The union's top-left corner lands exactly at the margin.
	if img.GrayAt(snapshotMargin, snapshotMargin).Y != 255 {
		t.Error("expected the root outline at the margin corner")
	}
	// The pressed child is filled at its translated position.
	if img.GrayAt(snapshotMargin+(20-16)+3, snapshotMargin+(40-32)+3).Y != 255 {
		t.Error("expected pressed child interior filled")
	}
	if img.GrayAt(0, 0).Y != 0 {
		t.Error("expected the margin to stay black")
	}
}

func TestBoxBounds(t *testing.T) {
	if got := boxBounds(nil); got != (geometry.Rect{}) {
		t.Errorf("boxBounds(nil) = %+v, want the zero Rect", got)
	}

	boxes := []Box{
		{Rect: geometry.RectFromLTWH(10, 10, 5, 5)},
		{Rect: geometry.RectFromLTWH(0, 12, 5, 5)},
	}
	want := geometry.Rect{Left: 0, Top: 10, Right: 15, Bottom: 17}
	if got := boxBounds(boxes); got != want {
		t.Errorf("boxBounds = %+v, want %+v", got, want)
	}
}

func TestSnapshotFit(t *testing.T) {
	root := &boxNode{
		name:   "root",
		bounds: geometry.RectFromLTWH(4, 4, 16, 16),
	}
	path := filepath.Join(t.TempDir(), "fit.png")

	if err := SnapshotFit(root, path); err != nil {
		t.Fatalf("SnapshotFit failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening snapshot failed: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding snapshot failed: %v", err)
	}
	want := 16 + 2*snapshotMargin
	if b := decoded.Bounds(); b.Dx() != want || b.Dy() != want {
		t.Errorf("decoded bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), want, want)
	}
}

func TestSnapshotFitNothingVisible(t *testing.T) {
	root := &boxNode{name: "root", bounds: geometry.RectFromLTWH(0, 0, 10, 10), hidden: true}

	if err := SnapshotFit(root, filepath.Join(t.TempDir(), "fit.png")); err == nil {
		t.Error("expected an error when nothing is visible")
	}
}

func TestBoxStateString(t *testing.T) {
	tests := []struct {
		state BoxState
		want  string
	}{
		{BoxIdle, "idle"},
		{BoxPrePressed, "prepressed"},
		{BoxPressed, "pressed"},
		{BoxExcluded, "excluded"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("BoxState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
