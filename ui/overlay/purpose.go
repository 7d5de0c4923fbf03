// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package overlay

import (
	"github.com/toeirei/navui/ui/canvas"
	"github.com/toeirei/navui/ui/element"
)

// Purpose shows a label on the top row for a while after the element comes
// to the foreground, telling the user what the list is for.
type Purpose struct {
	*Base[struct{}]

	text string
}

func NewPurpose(text string, duration int) *Purpose {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Purpose{Base: NewBase[struct{}](duration), text: text}
}

func (o *Purpose) ApplyTo(h Host) error {
	if err := o.Attach(h, struct{}{}); err != nil {
		return err
	}
	h.AddBeforeForeground(func() { o.SetState(h, true) })
	h.AddIdleHook(o.tickAndRefresh(h))
	h.AddViewWrapper(func(img *canvas.Image, _ element.Snapshot) *canvas.Image {
		if !o.GetState(h) {
			return img
		}
		c := canvas.From(img)
		row := canvas.Rect{W: img.Width, H: 1}
		c.Clear(row)
		c.Text(0, 0, o.text)
		c.InvertRect(row)
		return img
	})
	return nil
}
