// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/navui/ui/canvas"
	"github.com/toeirei/navui/ui/output"
)

// frameMsg carries a finished frame into the program.
type frameMsg struct {
	img    *canvas.Image
	cursor output.Position
	shown  bool
}

// Screen is the sink elements draw on. Frames are handed to the program
// with send, which must not block for long.
type Screen struct {
	rows, cols int

	mu      sync.Mutex
	send    func(tea.Msg)
	cursor  output.Position
	visible bool
}

func NewScreen(rows, cols int, send func(tea.Msg)) *Screen {
	return &Screen{rows: rows, cols: cols, send: send}
}

var (
	_ output.ImageSink  = (*Screen)(nil)
	_ output.CursorSink = (*Screen)(nil)
)

func (s *Screen) Rows() int { return s.rows }
func (s *Screen) Cols() int { return s.cols }

func (s *Screen) DisplayData(rows ...string) {
	c := canvas.New(s.cols, s.rows)
	for y, row := range rows {
		c.Text(0, y, row)
	}
	s.DisplayImage(c.Image())
}

func (s *Screen) DisplayImage(img *canvas.Image) {
	s.mu.Lock()
	msg := frameMsg{img: img.Clone(), cursor: s.cursor, shown: s.visible}
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

func (s *Screen) SetCursor(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = output.Position{Row: row, Col: col}
}

func (s *Screen) Cursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
}

func (s *Screen) NoCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
}
