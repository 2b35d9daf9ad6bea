package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/press/pkg/geometry"
)

// canvas is a styled cell grid the scene is stamped into, back to front.
// Styles are compared by pointer, so stamping shares one style per state
// and String can batch runs of equally styled cells.
type canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]*lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h}
	c.runes = make([][]rune, h)
	c.styles = make([][]*lipgloss.Style, h)
	for y := 0; y < h; y++ {
		c.runes[y] = make([]rune, w)
		c.styles[y] = make([]*lipgloss.Style, w)
		for x := 0; x < w; x++ {
			c.runes[y][x] = ' '
		}
	}
	return c
}

func (c *canvas) set(x, y int, ch rune, st *lipgloss.Style) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.runes[y][x] = ch
	c.styles[y][x] = st
}

func (c *canvas) text(x, y int, s string, st *lipgloss.Style) {
	for i, ch := range []rune(s) {
		c.set(x+i, y, ch, st)
	}
}

// box stamps a bordered rectangle. Rects too small for a border degrade
// to a filled run. When fill is set the interior is painted too, which
// is what makes background colors read as a pressed surface.
func (c *canvas) box(r geometry.Rect, st *lipgloss.Style, fill bool) {
	x, y := int(r.Left), int(r.Top)
	w, h := int(r.Width()), int(r.Height())
	if w <= 0 || h <= 0 {
		return
	}
	if w < 2 || h < 2 {
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				c.set(x+dx, y+dy, ' ', st)
			}
		}
		return
	}

	c.set(x, y, '┌', st)
	c.set(x+w-1, y, '┐', st)
	c.set(x, y+h-1, '└', st)
	c.set(x+w-1, y+h-1, '┘', st)
	for dx := 1; dx < w-1; dx++ {
		c.set(x+dx, y, '─', st)
		c.set(x+dx, y+h-1, '─', st)
	}
	for dy := 1; dy < h-1; dy++ {
		c.set(x, y+dy, '│', st)
		c.set(x+w-1, y+dy, '│', st)
	}

	if fill {
		for dy := 1; dy < h-1; dy++ {
			for dx := 1; dx < w-1; dx++ {
				c.set(x+dx, y+dy, ' ', st)
			}
		}
	}
}

// labelCol returns the column where a stamp of width w sits centered on
// the frame's top border.
func labelCol(frame geometry.Rect, w int) int {
	return int(frame.Center().X) - w/2
}

// String renders the grid, batching consecutive cells that share a style.
func (c *canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		var run []rune
		var runStyle *lipgloss.Style
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runStyle != nil {
				sb.WriteString(runStyle.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			if c.styles[y][x] != runStyle {
				flush()
				runStyle = c.styles[y][x]
			}
			run = append(run, c.runes[y][x])
		}
		flush()
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
