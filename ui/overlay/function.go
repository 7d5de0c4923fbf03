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

type FunctionOptions struct {
	Duration   int
	LeftLabel  string
	RightLabel string
}

// Function binds KEY_F1 and KEY_F2 and labels them on the bottom row for a
// while after the element comes to the foreground.
type Function struct {
	*Base[struct{}]

	left, right func()
	opts        FunctionOptions
}

func NewFunction(left, right func(), opts FunctionOptions) *Function {
	opts = withDefaults(opts, FunctionOptions{
		Duration:   DefaultDuration,
		LeftLabel:  i18n.T("overlay.function_left"),
		RightLabel: i18n.T("overlay.function_right"),
	})
	return &Function{Base: NewBase[struct{}](opts.Duration), left: left, right: right, opts: opts}
}

func (o *Function) ApplyTo(h Host) error {
	if err := o.Attach(h, struct{}{}); err != nil {
		return err
	}
	h.AddKeymapHook(func(km input.Keymap) input.Keymap {
		if o.left != nil {
			km[input.KeyF1] = o.left
		}
		if o.right != nil {
			km[input.KeyF2] = o.right
		}
		return km
	})
	h.AddBeforeForeground(func() { o.SetState(h, true) })
	h.AddIdleHook(o.tickAndRefresh(h))
	h.AddViewWrapper(func(img *canvas.Image, _ element.Snapshot) *canvas.Image {
		if !o.GetState(h) || img.Height == 0 {
			return img
		}
		c := canvas.From(img)
		y := img.Height - 1
		c.Clear(canvas.Rect{Y: y, W: img.Width, H: 1})
		if o.left != nil {
			w := c.TextBounds(o.opts.LeftLabel).W
			c.Text(0, y, o.opts.LeftLabel)
			c.InvertRect(canvas.Rect{Y: y, W: w, H: 1})
		}
		if o.right != nil {
			w := c.TextBounds(o.opts.RightLabel).W
			c.Text(img.Width-w, y, o.opts.RightLabel)
			c.InvertRect(canvas.Rect{X: img.Width - w, Y: y, W: w, H: 1})
		}
		return img
	})
	return nil
}
