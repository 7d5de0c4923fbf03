// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package element

import (
	"github.com/toeirei/navui/ui/canvas"
	"github.com/toeirei/navui/ui/output"
)

// Snapshot is a copy of everything needed to draw an element.
type Snapshot struct {
	Name        string
	Handle      Handle
	Pointer     int
	First       int
	Last        int
	Len         int
	Stride      int
	EntryHeight int
	Lines       int
	Rows        int
	Cols        int
	// Visible holds the decorated rows of entries First..Last. The active
	// entry is already shifted by the scroll offset.
	Visible [][]string
	// Active holds the decorated, unscrolled rows of the current entry.
	Active       []string
	ActiveEntry  Entry
	ScrollOffset int
}

// Line returns the display line of entry i relative to the viewport.
func (s Snapshot) Line(i int) int {
	stride := max(s.Stride, 1)
	return i/stride - s.First/stride
}

// Column returns the column of entry i within its line.
func (s Snapshot) Column(i int) int {
	return i % max(s.Stride, 1)
}

// View draws a snapshot.
type View interface {
	Render(s Snapshot) *canvas.Image
}

// ListView draws one entry per line and inverts the active entry.
type ListView struct{}

func (ListView) Render(s Snapshot) *canvas.Image {
	c := canvas.New(s.Cols, s.Rows)
	for k, rows := range s.Visible {
		y := k * s.EntryHeight
		for r, row := range rows {
			c.Text(0, y+r, row)
		}
		if s.First+k == s.Pointer {
			c.InvertRect(canvas.Rect{X: 0, Y: y, W: s.Cols, H: s.EntryHeight})
		}
	}
	return c.Image()
}

func (e *Element) decorate(i int, rows []string) []string {
	if e.variant.Decorate == nil {
		return rows
	}
	return e.variant.Decorate(i, append([]string(nil), rows...))
}

// Snapshot returns the current render state.
func (e *Element) Snapshot() Snapshot {
	e.mu.Lock()
	s := Snapshot{
		Name:         e.name,
		Handle:       e.handle,
		Pointer:      e.pointer,
		First:        e.first,
		Last:         e.last,
		Len:          len(e.entries),
		Stride:       e.opts.stride,
		EntryHeight:  e.opts.entryHeight,
		Lines:        e.linesLocked(),
		Rows:         e.out.Rows(),
		Cols:         e.out.Cols(),
		ActiveEntry:  e.entries[e.pointer],
		ScrollOffset: e.scroll.offset,
	}
	raw := make([][]string, 0, e.last-e.first+1)
	for i := e.first; i <= e.last; i++ {
		raw = append(raw, e.rows[i])
	}
	e.mu.Unlock()

	s.Visible = make([][]string, len(raw))
	for k, rows := range raw {
		i := s.First + k
		rows = e.decorate(i, rows)
		if i == s.Pointer {
			s.Active = rows
			rows = scrolled(rows, s.ScrollOffset)
		}
		s.Visible[k] = rows
	}
	return s
}

// Refresh redraws a foreground element: refresh hooks observe the snapshot,
// the view renders it and view wrappers draw on top.
func (e *Element) Refresh() {
	if !e.foreground.Load() {
		return
	}
	e.mu.Lock()
	e.recomputeLocked()
	view := e.opts.view
	e.mu.Unlock()

	s := e.Snapshot()
	h := e.snapshotHooks()
	for _, fn := range h.refresh {
		fn(s)
	}
	img := view.Render(s)
	for _, wrap := range h.views {
		if next := wrap(img, s); next != nil {
			img = next
		}
	}
	e.display(img, s)
}

// display positions the cursor first so sinks can draw it with the frame.
func (e *Element) display(img *canvas.Image, s Snapshot) {
	if cur, ok := e.out.(output.CursorSink); ok {
		cur.SetCursor(s.Line(s.Pointer)*s.EntryHeight, s.Column(s.Pointer)*e.cellWidth())
		cur.Cursor()
	}
	if sink, ok := e.out.(output.ImageSink); ok {
		sink.DisplayImage(img)
	} else {
		e.out.DisplayData(img.Rows()...)
	}
}
