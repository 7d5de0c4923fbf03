// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package gridmenu lays menu entries out as a grid.
package gridmenu

import (
	"fmt"
	"sync"

	"github.com/toeirei/navui/ui/element"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/menu"
	"github.com/toeirei/navui/ui/output"
)

const DefaultColumns = 3

type GridMenu struct {
	*menu.Menu

	columns int
	layout  Layout

	mu      sync.Mutex
	sidebar int
}

type config struct {
	columns   int
	rows      int
	layout    Layout
	highlight Highlight
	menu      []menu.Option
	elem      []element.Option
}

type Option func(*config)

func WithColumns(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.columns = n
		}
	}
}

// WithRows sets how many grid rows are visible at once. By default as many
// as fit on the display.
func WithRows(n int) Option {
	return func(c *config) { c.rows = max(n, 0) }
}

func WithLayout(l Layout) Option {
	return func(c *config) { c.layout = l }
}

// WithHighlight sets the highlight of the default layout.
func WithHighlight(h Highlight) Option {
	return func(c *config) { c.highlight = h }
}

func WithCatchExit(catch bool) Option {
	return func(c *config) { c.menu = append(c.menu, menu.WithCatchExit(catch)) }
}

func WithElementOptions(opts ...element.Option) Option {
	return func(c *config) { c.elem = append(c.elem, opts...) }
}

func New(in input.Source, out output.Sink, name string, entries []element.Entry, opts ...Option) (*GridMenu, error) {
	c := config{columns: DefaultColumns}
	for _, opt := range opts {
		opt(&c)
	}
	if c.layout == nil {
		c.layout = Table{Highlight: c.highlight}
	}
	if c.columns > out.Cols() {
		return nil, fmt.Errorf("grid of %d columns does not fit %d display columns", c.columns, out.Cols())
	}

	g := &GridMenu{columns: c.columns, layout: c.layout}
	elemOpts := append([]element.Option{
		element.WithStride(c.columns),
		element.WithLines(c.rows),
		element.WithView(view{g: g}),
		element.WithKeys(input.Keymap{
			input.KeyLeft:  g.left,
			input.KeyRight: g.right,
		}),
	}, c.elem...)

	m, err := menu.New(in, out, name, entries, append(c.menu, menu.WithElementOptions(elemOpts...))...)
	if err != nil {
		return nil, err
	}
	g.Menu = m
	return g, nil
}

// Columns returns the number of entries per grid row.
func (g *GridMenu) Columns() int { return g.columns }

// Geometry returns the current layout geometry.
func (g *GridMenu) Geometry() Geometry {
	g.mu.Lock()
	sidebar := g.sidebar
	g.mu.Unlock()
	return Geometry{
		Columns:   g.columns,
		CellWidth: max(1, (g.Output().Cols()-sidebar)/g.columns),
		Sidebar:   sidebar,
	}
}

// SetSidebar reserves width columns on the right of the grid. Every grid
// column must keep at least one display column.
func (g *GridMenu) SetSidebar(width int) error {
	if width < 0 || g.Output().Cols()-width < g.columns {
		return fmt.Errorf("sidebar of width %d leaves no room for %d columns", width, g.columns)
	}
	g.mu.Lock()
	g.sidebar = width
	g.mu.Unlock()
	g.Refresh()
	return nil
}

// left moves one cell left; on the first column it leaves the grid when the
// element is exitable.
func (g *GridMenu) left() {
	if g.Pointer()%g.columns == 0 {
		if g.Exitable() {
			g.Deactivate()
		}
		return
	}
	g.MoveLeft()
}

// right moves one cell right within the current grid row.
func (g *GridMenu) right() {
	if g.Pointer()%g.columns == g.columns-1 {
		return
	}
	g.MoveRight()
}
