// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package canvas provides the character-cell image elements render into and
// the drawing operations overlays use on top of it.
package canvas

import "strings"

// Cell is one character position. A zero R marks the right half of a wide
// rune and is skipped when the image is turned into text.
type Cell struct {
	R        rune
	Inverted bool
}

type Image struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewImage returns a blank image of the given size.
func NewImage(width, height int) *Image {
	width, height = max(width, 0), max(height, 0)
	img := &Image{Width: width, Height: height, Cells: make([]Cell, width*height)}
	for i := range img.Cells {
		img.Cells[i].R = ' '
	}
	return img
}

func (img *Image) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.Width && y < img.Height
}

// At returns the cell at x, y. Out-of-range positions read as a blank cell.
func (img *Image) At(x, y int) Cell {
	if !img.inside(x, y) {
		return Cell{R: ' '}
	}
	return img.Cells[y*img.Width+x]
}

// Set writes c at x, y. Out-of-range positions are ignored.
func (img *Image) Set(x, y int, c Cell) {
	if img.inside(x, y) {
		img.Cells[y*img.Width+x] = c
	}
}

func (img *Image) Clone() *Image {
	out := &Image{Width: img.Width, Height: img.Height, Cells: make([]Cell, len(img.Cells))}
	copy(out.Cells, img.Cells)
	return out
}

// Row returns row y as plain text.
func (img *Image) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < img.Width; x++ {
		if r := img.At(x, y).R; r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Rows returns every row as plain text; inversion is dropped.
func (img *Image) Rows() []string {
	rows := make([]string, img.Height)
	for y := range rows {
		rows[y] = img.Row(y)
	}
	return rows
}

// Run is a maximal stretch of cells sharing the same inversion.
type Run struct {
	Text     string
	Inverted bool
}

// Runs splits row y into runs so drivers can style inverted cells.
func (img *Image) Runs(y int) []Run {
	var (
		runs []Run
		sb   strings.Builder
		inv  bool
	)
	for x := 0; x < img.Width; x++ {
		c := img.At(x, y)
		if x > 0 && c.Inverted != inv && sb.Len() > 0 {
			runs = append(runs, Run{Text: sb.String(), Inverted: inv})
			sb.Reset()
		}
		inv = c.Inverted
		if c.R != 0 {
			sb.WriteRune(c.R)
		}
	}
	if sb.Len() > 0 {
		runs = append(runs, Run{Text: sb.String(), Inverted: inv})
	}
	return runs
}
