// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package overlay

import (
	"fmt"

	"github.com/toeirei/navui/ui/canvas"
	"github.com/toeirei/navui/ui/element"
	"github.com/toeirei/navui/ui/util"
)

func gridHost(h Host) (GridHost, error) {
	g, ok := h.(GridHost)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a grid", ErrIncompatible, h.Name())
	}
	return g, nil
}

type labelState struct {
	pointer int
	label   string
}

// GridLabel shows the label of the selected cell on the bottom row for a
// while after the pointer moved.
type GridLabel struct {
	*Base[labelState]
}

func NewGridLabel(duration int) *GridLabel {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &GridLabel{Base: NewBase[labelState](duration)}
}

func (o *GridLabel) ApplyTo(h Host) error {
	if _, err := gridHost(h); err != nil {
		return err
	}
	if err := o.Attach(h, labelState{pointer: -1}); err != nil {
		return err
	}
	h.AddRefreshHook(func(s element.Snapshot) {
		moved := false
		o.Update(h, func(st *labelState) {
			if st.pointer != s.Pointer {
				moved = st.pointer >= 0
				st.pointer = s.Pointer
				st.label = s.ActiveEntry.Label()
			}
		})
		if moved {
			o.SetState(h, true)
		}
	})
	h.AddIdleHook(o.tickAndRefresh(h))
	h.AddViewWrapper(func(img *canvas.Image, _ element.Snapshot) *canvas.Image {
		if !o.GetState(h) || img.Height == 0 {
			return img
		}
		label := o.Data(h).label
		c := canvas.From(img)
		y := img.Height - 1
		w := min(c.TextBounds(label).W, img.Width)
		x := (img.Width - w) / 2
		c.Clear(canvas.Rect{Y: y, W: img.Width, H: 1})
		c.Text(x, y, label)
		c.InvertRect(canvas.Rect{X: x, Y: y, W: w, H: 1})
		return img
	})
	return nil
}

// GridSidebar reserves a strip on the right of a grid and draws a separator
// and the page indicator into it.
type GridSidebar struct {
	*Base[struct{}]

	width int
}

func NewGridSidebar(width int) *GridSidebar {
	return &GridSidebar{Base: NewBase[struct{}](0), width: max(width, 2)}
}

func (o *GridSidebar) ApplyTo(h Host) error {
	g, err := gridHost(h)
	if err != nil {
		return err
	}
	if err := o.Attach(h, struct{}{}); err != nil {
		return err
	}
	if err := g.SetSidebar(o.width); err != nil {
		o.drop(h)
		return fmt.Errorf("%w: %v", ErrIncompatible, err)
	}
	o.SetState(h, true)
	h.AddViewWrapper(func(img *canvas.Image, s element.Snapshot) *canvas.Image {
		if !o.GetState(h) {
			return img
		}
		c := canvas.From(img)
		x := img.Width - o.width
		c.Clear(canvas.Rect{X: x, W: o.width, H: img.Height})
		c.Line(x, 0, x, img.Height-1, '|')

		stride := max(s.Stride, 1)
		pages := util.CeilDiv(util.CeilDiv(s.Len, stride), max(s.Lines, 1))
		page := s.Pointer/stride/max(s.Lines, 1) + 1
		c.Text(x+1, 0, fmt.Sprintf("%d", page))
		if img.Height > 1 {
			c.Text(x+1, 1, fmt.Sprintf("/%d", pages))
		}
		return img
	})
	h.Refresh()
	return nil
}
