// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package listbox implements single selection from a list of values.
package listbox

import (
	"reflect"
	"sync"

	"github.com/toeirei/navui/ui/element"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/output"
)

type Listbox struct {
	*element.Element

	mu       sync.Mutex
	selected any
	chosen   bool
}

type config struct {
	selected    any
	hasSelected bool
	elem        []element.Option
}

type Option func(*config)

// WithSelected places the pointer on the first entry whose payload equals v.
func WithSelected(v any) Option {
	return func(c *config) {
		c.selected = v
		c.hasSelected = true
	}
}

func WithElementOptions(opts ...element.Option) Option {
	return func(c *config) { c.elem = append(c.elem, opts...) }
}

// Item is a single-row entry with the given value.
func Item(label string, value any) element.Entry {
	return element.Entry{Repr: label, Payload: value}
}

// New builds a listbox. It fails on empty contents since there is no exit
// entry to fall back on.
func New(in input.Source, out output.Sink, name string, entries []element.Entry, opts ...Option) (*Listbox, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	elemOpts := c.elem
	if c.hasSelected {
		for i, e := range entries {
			if reflect.DeepEqual(e.Payload, c.selected) {
				elemOpts = append(elemOpts, element.WithPointer(i))
				break
			}
		}
	}

	l := &Listbox{}
	el, err := element.New(in, out, name, entries, element.Variant{
		Select: l.selectEntry,
	}, elemOpts...)
	if err != nil {
		return nil, err
	}
	l.Element = el
	return l, nil
}

func (l *Listbox) selectEntry() {
	value := l.Current().Payload
	l.mu.Lock()
	l.selected, l.chosen = value, true
	l.mu.Unlock()
	l.Deactivate()
}

// Activate blocks until a value is chosen or the listbox is left, returning
// the chosen payload or nil.
func (l *Listbox) Activate() (any, error) {
	l.mu.Lock()
	l.selected, l.chosen = nil, false
	l.mu.Unlock()

	err := l.Element.Activate()

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.chosen {
		return nil, err
	}
	return l.selected, err
}
