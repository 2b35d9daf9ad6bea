package geometry

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Left != 10 || r.Top != 20 || r.Right != 40 || r.Bottom != 60 {
		t.Errorf("RectFromLTWH = %+v, want {10 20 40 60}", r)
	}
	if r.Width() != 30 {
		t.Errorf("Width() = %v, want 30", r.Width())
	}
	if r.Height() != 40 {
		t.Errorf("Height() = %v, want 40", r.Height())
	}
}

func TestRectSize(t *testing.T) {
	sz := RectFromLTWH(10, 20, 30, 40).Size()
	if sz != (Size{Width: 30, Height: 40}) {
		t.Errorf("Size() = %+v, want {30 40}", sz)
	}
	if sz.IsEmpty() {
		t.Error("a 30x40 size should not be empty")
	}
	if !(Size{Width: 0, Height: 40}).IsEmpty() {
		t.Error("zero width should read as empty")
	}
	if !(Size{Width: 30, Height: -1}).IsEmpty() {
		t.Error("negative height should read as empty")
	}
}

func TestRectCenter(t *testing.T) {
	got := RectFromLTWH(10, 20, 30, 40).Center()
	if got != (Offset{X: 25, Y: 40}) {
		t.Errorf("Center() = %+v, want {25 40}", got)
	}
}

func TestRectTranslate(t *testing.T) {
	got := RectFromLTWH(10, 20, 30, 40).Translate(5, -20)
	if want := RectFromLTWH(15, 0, 30, 40); got != want {
		t.Errorf("Translate = %+v, want %+v", got, want)
	}
}

func TestRectUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(20, 5, 10, 10)
	got := a.Union(b)
	want := Rect{Left: 0, Top: 0, Right: 30, Bottom: 15}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if got := a.Union(a); got != a {
		t.Errorf("self Union = %+v, want %+v", got, a)
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)
	tests := []struct {
		name string
		p    Offset
		want bool
	}{
		{"center", Offset{X: 5, Y: 5}, true},
		{"top-left corner inclusive", Offset{X: 0, Y: 0}, true},
		{"right edge exclusive", Offset{X: 10, Y: 5}, false},
		{"bottom edge exclusive", Offset{X: 5, Y: 10}, false},
		{"outside", Offset{X: -1, Y: 5}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%+v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	got := a.Intersect(b)
	want := Rect{Left: 5, Top: 5, Right: 10, Bottom: 10}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := RectFromLTWH(20, 20, 5, 5)
	if !a.Intersect(c).IsEmpty() {
		t.Error("expected empty intersection for disjoint rects")
	}
}

func TestOffsetArithmetic(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: 1, Y: 2}
	if got := a.Add(b); got != (Offset{X: 4, Y: 6}) {
		t.Errorf("Add = %+v, want {4 6}", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: 2}) {
		t.Errorf("Sub = %+v, want {2 2}", got)
	}
}
