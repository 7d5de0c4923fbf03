// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package gridmenu

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/navui/ui/canvas"
	"github.com/toeirei/navui/ui/element"
)

// Geometry describes how the grid is laid out on the display.
type Geometry struct {
	Columns   int
	CellWidth int
	// Sidebar is the width of the strip reserved on the right.
	Sidebar int
}

// Cell returns the area of entry i in snapshot s.
func (g Geometry) Cell(s element.Snapshot, i int) canvas.Rect {
	return canvas.Rect{
		X: s.Column(i) * g.CellWidth,
		Y: s.Line(i) * s.EntryHeight,
		W: g.CellWidth,
		H: s.EntryHeight,
	}
}

// Layout draws the visible part of a grid.
type Layout interface {
	Render(s element.Snapshot, g Geometry) *canvas.Image
}

// Highlight marks the active cell.
type Highlight interface {
	Apply(c *canvas.Canvas, cell canvas.Rect)
}

// Invert shows the active cell in reverse video.
type Invert struct{}

func (Invert) Apply(c *canvas.Canvas, cell canvas.Rect) {
	c.InvertRect(cell)
}

// Brackets frames the first row of the active cell with [ and ].
type Brackets struct{}

func (Brackets) Apply(c *canvas.Canvas, cell canvas.Rect) {
	if cell.W < 2 {
		c.InvertRect(cell)
		return
	}
	c.Text(cell.X, cell.Y, "[")
	c.Text(cell.X+cell.W-1, cell.Y, "]")
}

// Table places entries in fixed-width cells, row by row.
type Table struct {
	Highlight Highlight
}

func (t Table) Render(s element.Snapshot, g Geometry) *canvas.Image {
	hl := t.Highlight
	if hl == nil {
		hl = Invert{}
	}
	c := canvas.New(s.Cols, s.Rows)
	for k, rows := range s.Visible {
		i := s.First + k
		cell := g.Cell(s, i)
		pad := 0
		if _, ok := hl.(Brackets); ok && cell.W > 2 {
			pad = 1
		}
		for r, row := range rows {
			c.Text(cell.X+pad, cell.Y+r, ansi.Truncate(row, cell.W-2*pad, ""))
		}
		if i == s.Pointer {
			hl.Apply(c, cell)
		}
	}
	return c.Image()
}

type view struct {
	g *GridMenu
}

func (v view) Render(s element.Snapshot) *canvas.Image {
	return v.g.layout.Render(s, v.g.Geometry())
}
