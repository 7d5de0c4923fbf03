// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package output

import (
	"sync"

	"github.com/toeirei/navui/ui/canvas"
)

// Memory records every frame it is given. It is the sink used by tests and
// headless runs.
type Memory struct {
	mu      sync.Mutex
	rows    int
	cols    int
	frames  [][]string
	cursor  Position
	visible bool
}

func NewMemory(rows, cols int) *Memory {
	return &Memory{rows: rows, cols: cols}
}

var (
	_ Sink       = (*Memory)(nil)
	_ CursorSink = (*Memory)(nil)
)

func (m *Memory) Rows() int { return m.rows }
func (m *Memory) Cols() int { return m.cols }

func (m *Memory) DisplayData(rows ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = append(m.frames, append([]string(nil), rows...))
}

func (m *Memory) SetCursor(row, col int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursor = Position{Row: row, Col: col}
}

func (m *Memory) Cursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = true
}

func (m *Memory) NoCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = false
}

// Last returns the most recent frame, or nil if nothing was displayed.
func (m *Memory) Last() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.frames) == 0 {
		return nil
	}
	return append([]string(nil), m.frames[len(m.frames)-1]...)
}

// Frames returns how many frames were displayed.
func (m *Memory) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames)
}

// CursorAt returns the last cursor position and whether it is visible.
func (m *Memory) CursorAt() (Position, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursor, m.visible
}

// ImageMemory is a Memory that also accepts images, keeping the last one.
type ImageMemory struct {
	Memory
	last *canvas.Image
}

func NewImageMemory(rows, cols int) *ImageMemory {
	return &ImageMemory{Memory: Memory{rows: rows, cols: cols}}
}

var _ ImageSink = (*ImageMemory)(nil)

func (m *ImageMemory) DisplayImage(img *canvas.Image) {
	m.Memory.DisplayData(img.Rows()...)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = img.Clone()
}

// LastImage returns a copy of the most recent image.
func (m *ImageMemory) LastImage() *canvas.Image {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return nil
	}
	return m.last.Clone()
}
