// Package inspect renders the press state of an element tree into an
// image for diagnostics: one box per bounded element, filled while
// pressed, double-bordered while pre-pressed, struck through when
// excluded. Frames can be exported as PNG snapshots.
package inspect

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Renderer draws diagnostic frames into a grayscale buffer.
type Renderer struct {
	width  int
	height int
	img    *image.Gray
	face   font.Face
}

// NewRenderer creates a renderer with a black width-by-height frame.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		img:    image.NewGray(image.Rect(0, 0, width, height)),
		face:   basicfont.Face7x13,
	}
}

// Clear resets the frame to black.
func (r *Renderer) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Black, image.Point{}, draw.Src)
}

// DrawText draws text in white with its baseline at (x, y).
func (r *Renderer) DrawText(x, y int, text string) {
	r.drawText(x, y, text, image.White)
}

func (r *Renderer) drawText(x, y int, text string, src image.Image) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  src,
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// DrawRect draws a one-pixel rectangle outline.
func (r *Renderer) DrawRect(x, y, width, height int) {
	for i := x; i < x+width; i++ {
		r.img.SetGray(i, y, color.Gray{Y: 255})
		r.img.SetGray(i, y+height-1, color.Gray{Y: 255})
	}
	for i := y; i < y+height; i++ {
		r.img.SetGray(x, i, color.Gray{Y: 255})
		r.img.SetGray(x+width-1, i, color.Gray{Y: 255})
	}
}

// FillRect draws a filled rectangle.
func (r *Renderer) FillRect(x, y, width, height int) {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			r.img.SetGray(px, py, color.Gray{Y: 255})
		}
	}
}

// SetPixel sets a single pixel.
func (r *Renderer) SetPixel(x, y int, on bool) {
	if on {
		r.img.SetGray(x, y, color.Gray{Y: 255})
	} else {
		r.img.SetGray(x, y, color.Gray{Y: 0})
	}
}

// Width returns the frame width.
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the frame height.
func (r *Renderer) Height() int {
	return r.height
}

// Image returns the underlying frame. The renderer keeps ownership;
// callers must not retain it across further drawing.
func (r *Renderer) Image() *image.Gray {
	return r.img
}

// WritePNG encodes the current frame as a PNG.
func (r *Renderer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to path as a PNG.
func (r *Renderer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
