// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package overlay

import (
	"strconv"

	"github.com/toeirei/navui/ui/canvas"
	"github.com/toeirei/navui/ui/element"
	"github.com/toeirei/navui/ui/input"
)

type NumberOptions struct {
	// Duration is how long the pressed digit stays on screen.
	Duration int
	// Select also selects the entry after jumping to it.
	Select bool
}

// NumberKeys binds KEY_1..KEY_9 and KEY_0 to the first ten entries. The
// pressed digit is shown at the end of the active row for a while.
type NumberKeys struct {
	*Base[int]

	opts NumberOptions
}

func NewNumberKeys(opts NumberOptions) *NumberKeys {
	opts = withDefaults(opts, NumberOptions{Duration: DefaultDuration})
	return &NumberKeys{Base: NewBase[int](opts.Duration), opts: opts}
}

// index maps a digit to an entry index: 1 is the first entry, 0 the tenth.
func index(digit int) int {
	if digit == 0 {
		return 9
	}
	return digit - 1
}

func (o *NumberKeys) ApplyTo(h Host) error {
	if err := o.Attach(h, 0); err != nil {
		return err
	}
	h.AddKeymapHook(func(km input.Keymap) input.Keymap {
		selectEntry := km[input.KeyEnter]
		for d := 0; d < 10; d++ {
			i := index(d)
			if i >= h.Len() {
				continue
			}
			km[input.KeyDigit(d)] = func() {
				o.Update(h, func(digit *int) { *digit = d })
				o.SetState(h, true)
				if !h.SetPointer(i) {
					h.Refresh()
				}
				if o.opts.Select && selectEntry != nil {
					selectEntry()
				}
			}
		}
		return km
	})
	h.AddIdleHook(o.tickAndRefresh(h))
	h.AddViewWrapper(func(img *canvas.Image, s element.Snapshot) *canvas.Image {
		if !o.GetState(h) {
			return img
		}
		c := canvas.From(img)
		y := s.Line(s.Pointer) * s.EntryHeight
		c.Text(img.Width-1, y, strconv.Itoa(o.Data(h)))
		return img
	})
	return nil
}
