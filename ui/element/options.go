// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package element

import (
	"time"

	"github.com/toeirei/navui/ui/input"
)

const DefaultQuantum = 100 * time.Millisecond

type options struct {
	entryHeight int
	exitable    bool
	exitEntry   bool
	quantum     time.Duration
	scroll      ScrollConfig
	view        View
	stride      int
	lines       int
	pointer     int
	keys        input.Keymap
}

func defaultOptions() options {
	return options{
		entryHeight: 1,
		exitable:    true,
		exitEntry:   true,
		quantum:     DefaultQuantum,
		scroll:      DefaultScroll,
		view:        ListView{},
		stride:      1,
	}
}

type Option func(*options)

// WithEntryHeight sets how many display rows every entry occupies.
func WithEntryHeight(rows int) Option {
	return func(o *options) {
		if rows > 0 {
			o.entryHeight = rows
		}
	}
}

// WithExitable controls whether KEY_LEFT deactivates the element.
func WithExitable(exitable bool) Option {
	return func(o *options) { o.exitable = exitable }
}

// WithoutExitEntry suppresses the variant's appended exit entry.
func WithoutExitEntry() Option {
	return func(o *options) { o.exitEntry = false }
}

func WithQuantum(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.quantum = d
		}
	}
}

// WithScroll sets the scroll timing; zero fields keep their defaults.
func WithScroll(cfg ScrollConfig) Option {
	return func(o *options) { o.scroll = withScrollDefaults(cfg) }
}

func WithView(v View) Option {
	return func(o *options) {
		if v != nil {
			o.view = v
		}
	}
}

// WithStride sets how many entries share one display line.
func WithStride(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.stride = n
		}
	}
}

// WithLines fixes the number of visible lines instead of deriving it from
// the sink height.
func WithLines(n int) Option {
	return func(o *options) { o.lines = max(n, 0) }
}

// WithKeys adds bindings on top of the generated keymap.
func WithKeys(km input.Keymap) Option {
	return func(o *options) { o.keys = km.Clone() }
}

// WithPointer sets the initial pointer. It is clamped to the contents.
func WithPointer(i int) Option {
	return func(o *options) { o.pointer = max(i, 0) }
}
