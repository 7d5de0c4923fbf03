// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package element

import "github.com/toeirei/navui/ui/input"

// GenerateKeymap builds the keymap installed while the element is in the
// foreground: navigation keys, then the variant keys, then WithKeys extras,
// then every keymap hook in the order they were added.
func (e *Element) GenerateKeymap() input.Keymap {
	km := input.Keymap{
		input.KeyUp:       func() { e.MoveUp() },
		input.KeyDown:     func() { e.MoveDown() },
		input.KeyPageUp:   func() { e.PageUp() },
		input.KeyPageDown: func() { e.PageDown() },
		input.KeyEnter:    e.SelectEntry,
	}
	if e.opts.exitable {
		km[input.KeyLeft] = e.Deactivate
	}
	if e.variant.Keys != nil {
		e.variant.Keys(km)
	}
	for k, fn := range e.opts.keys {
		km[k] = fn
	}
	for _, hook := range e.snapshotHooks().keymap {
		if next := hook(km); next != nil {
			km = next
		}
	}
	return km
}

// RefreshKeymap regenerates the keymap and installs it if the element is in
// the foreground.
func (e *Element) RefreshKeymap() {
	if e.foreground.Load() {
		e.installKeymap()
	}
}

func (e *Element) installKeymap() {
	km := e.GenerateKeymap()
	if e.foreground.Load() {
		e.in.SetKeymap(km)
	}
}
