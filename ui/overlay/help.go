// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package overlay

import (
	"github.com/toeirei/navui/internal/i18n"
	"github.com/toeirei/navui/ui/canvas"
	"github.com/toeirei/navui/ui/element"
	"github.com/toeirei/navui/ui/input"
)

type HelpOptions struct {
	// Duration is how long the badge is shown after entering the foreground.
	Duration int
	// Badge defaults to the localized help badge.
	Badge string
}

// Help binds KEY_F5 to a help callback and shows a badge in the top right
// corner for a while whenever the element comes to the foreground.
type Help struct {
	*Base[struct{}]

	callback func()
	badge    string
}

func NewHelp(callback func(), opts HelpOptions) *Help {
	opts = withDefaults(opts, HelpOptions{
		Duration: DefaultDuration,
		Badge:    i18n.T("overlay.help_badge"),
	})
	return &Help{
		Base:     NewBase[struct{}](opts.Duration),
		callback: callback,
		badge:    opts.Badge,
	}
}

func (o *Help) ApplyTo(h Host) error {
	if err := o.Attach(h, struct{}{}); err != nil {
		return err
	}
	h.AddKeymapHook(func(km input.Keymap) input.Keymap {
		km[input.KeyF5] = func() {
			o.SetState(h, false)
			if o.callback != nil {
				o.callback()
			}
		}
		return km
	})
	h.AddBeforeForeground(func() { o.SetState(h, true) })
	h.AddIdleHook(o.tickAndRefresh(h))
	h.AddViewWrapper(func(img *canvas.Image, _ element.Snapshot) *canvas.Image {
		if !o.GetState(h) {
			return img
		}
		c := canvas.From(img)
		x := img.Width - c.TextBounds(o.badge).W
		c.Clear(canvas.Rect{X: x, Y: 0, W: img.Width - x, H: 1})
		c.Text(x, 0, o.badge)
		c.InvertRect(canvas.Rect{X: x, Y: 0, W: img.Width - x, H: 1})
		return img
	})
	return nil
}
