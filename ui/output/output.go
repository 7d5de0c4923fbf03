// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package output defines the display contract elements render through and
// ships the in-memory and console implementations.
package output

import "github.com/toeirei/navui/ui/canvas"

// Sink renders rows of text and reports its geometry in character cells.
type Sink interface {
	DisplayData(rows ...string)
	Rows() int
	Cols() int
}

// ImageSink is implemented by sinks that can show inverted cells. Elements
// prefer DisplayImage when it is available.
type ImageSink interface {
	Sink
	DisplayImage(img *canvas.Image)
}

// CursorSink is implemented by sinks with a visible cursor.
type CursorSink interface {
	SetCursor(row, col int)
	Cursor()
	NoCursor()
}

// Position is a cursor position in cells.
type Position struct {
	Row, Col int
}
