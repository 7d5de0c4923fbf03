// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package canvas

import (
	"github.com/charmbracelet/x/ansi"
)

// Rect is an area of cells. Zero or negative sizes are empty.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Canvas draws onto an Image in place.
type Canvas struct {
	img *Image
}

// New returns a canvas over a blank image of the given size.
func New(width, height int) *Canvas {
	return &Canvas{img: NewImage(width, height)}
}

// From returns a canvas drawing directly onto img.
func From(img *Image) *Canvas {
	return &Canvas{img: img}
}

func (c *Canvas) Image() *Image { return c.img }
func (c *Canvas) Width() int    { return c.img.Width }
func (c *Canvas) Height() int   { return c.img.Height }

// Text writes s starting at x, y, clipped to the image. Escape sequences are
// stripped and wide runes take two cells. It returns the column after the
// last written cell.
func (c *Canvas) Text(x, y int, s string) int {
	for _, r := range ansi.Strip(s) {
		w := ansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		c.img.Set(x, y, Cell{R: r, Inverted: c.img.At(x, y).Inverted})
		for i := 1; i < w; i++ {
			c.img.Set(x+i, y, Cell{R: 0, Inverted: c.img.At(x+i, y).Inverted})
		}
		x += w
	}
	return x
}

// Line draws a horizontal or vertical line of r between two points,
// inclusive. Other directions are not supported and report false.
func (c *Canvas) Line(x0, y0, x1, y1 int, r rune) bool {
	switch {
	case y0 == y1:
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			c.img.Set(x, y0, Cell{R: r, Inverted: c.img.At(x, y0).Inverted})
		}
	case x0 == x1:
		for y := min(y0, y1); y <= max(y0, y1); y++ {
			c.img.Set(x0, y, Cell{R: r, Inverted: c.img.At(x0, y).Inverted})
		}
	default:
		return false
	}
	return true
}

// Clear blanks every cell in rect, removing inversion.
func (c *Canvas) Clear(rect Rect) {
	c.each(rect, func(x, y int) {
		c.img.Set(x, y, Cell{R: ' '})
	})
}

// InvertRect toggles inversion of every cell in rect.
func (c *Canvas) InvertRect(rect Rect) {
	c.each(rect, func(x, y int) {
		cell := c.img.At(x, y)
		cell.Inverted = !cell.Inverted
		c.img.Set(x, y, cell)
	})
}

// TextBounds returns the size text would occupy when drawn at the origin.
func (c *Canvas) TextBounds(text string) Rect {
	return Bounds(text)
}

// Bounds measures text in cells.
func Bounds(text string) Rect {
	if text == "" {
		return Rect{}
	}
	return Rect{W: ansi.StringWidth(text), H: 1}
}

func (c *Canvas) each(rect Rect, fn func(x, y int)) {
	if rect.Empty() {
		return
	}
	for y := max(rect.Y, 0); y < min(rect.Y+rect.H, c.img.Height); y++ {
		for x := max(rect.X, 0); x < min(rect.X+rect.W, c.img.Width); x++ {
			fn(x, y)
		}
	}
}
