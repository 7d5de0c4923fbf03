// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package checkbox implements a list of named toggles confirmed by an accept
// entry.
package checkbox

import (
	"fmt"
	"sync"

	"github.com/toeirei/navui/internal/i18n"
	"github.com/toeirei/navui/ui/element"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/output"
	"github.com/toeirei/navui/util/slicest"
)

const (
	checkedMark   = "[x] "
	uncheckedMark = "[ ] "
)

type Checkbox struct {
	*element.Element

	mu       sync.Mutex
	def      bool
	states   []bool
	names    []string
	accepted bool
}

type config struct {
	def  bool
	elem []element.Option
}

type Option func(*config)

// WithDefault sets the state of entries that carry no default of their own.
func WithDefault(checked bool) Option {
	return func(c *config) { c.def = checked }
}

func WithElementOptions(opts ...element.Option) Option {
	return func(c *config) { c.elem = append(c.elem, opts...) }
}

// Item is an entry labelled label that reports its state under name.
func Item(label, name string) element.Entry {
	return element.Entry{Repr: label, Payload: name}
}

// Checked is an Item with its own default state.
func Checked(label, name string, checked bool) element.Entry {
	return element.Entry{Repr: label, Payload: name, Meta: checked}
}

func New(in input.Source, out output.Sink, name string, entries []element.Entry, opts ...Option) (*Checkbox, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	cb := &Checkbox{def: c.def}
	cb.load(entries)

	el, err := element.New(in, out, name, entries, element.Variant{
		Select:   cb.selectEntry,
		Validate: validate,
		Decorate: cb.decorate,
		ExitEntry: &element.Entry{
			Repr: i18n.T("checkbox.accept"),
		},
	}, c.elem...)
	if err != nil {
		return nil, err
	}
	cb.Element = el
	return cb, nil
}

func validate(_ int, e element.Entry) error {
	if _, ok := e.Payload.(string); !ok {
		return fmt.Errorf("payload must be the entry name, got %T", e.Payload)
	}
	if _, ok := e.Meta.(bool); e.Meta != nil && !ok {
		return fmt.Errorf("default state must be a bool, got %T", e.Meta)
	}
	return nil
}

func (cb *Checkbox) load(entries []element.Entry) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.names = slicest.Map(entries, func(e element.Entry) string {
		name, _ := e.Payload.(string)
		return name
	})
	cb.states = slicest.Map(entries, func(e element.Entry) bool {
		if checked, ok := e.Meta.(bool); ok {
			return checked
		}
		return cb.def
	})
}

// SetContents replaces the entries and resets every state to its default.
func (cb *Checkbox) SetContents(entries []element.Entry) error {
	cb.mu.Lock()
	names, states := cb.names, cb.states
	cb.mu.Unlock()

	cb.load(entries)
	if err := cb.Element.SetContents(entries); err != nil {
		cb.mu.Lock()
		cb.names, cb.states = names, states
		cb.mu.Unlock()
		return err
	}
	cb.Refresh()
	return nil
}

func (cb *Checkbox) decorate(i int, rows []string) []string {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if i >= len(cb.states) {
		return rows
	}
	mark := uncheckedMark
	if cb.states[i] {
		mark = checkedMark
	}
	rows[0] = mark + rows[0]
	return rows
}

func (cb *Checkbox) selectEntry() {
	if cb.OnExitEntry() {
		cb.mu.Lock()
		cb.accepted = true
		cb.mu.Unlock()
		cb.Deactivate()
		return
	}
	i := cb.Pointer()
	cb.mu.Lock()
	if i < len(cb.states) {
		cb.states[i] = !cb.states[i]
	}
	cb.mu.Unlock()
	cb.Refresh()
}

// States returns the current name to state mapping.
func (cb *Checkbox) States() map[string]bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	out := make(map[string]bool, len(cb.names))
	for i, name := range cb.names {
		out[name] = cb.states[i]
	}
	return out
}

// Activate blocks until the list is accepted or left. It returns the states
// on acceptance and nil otherwise.
func (cb *Checkbox) Activate() (map[string]bool, error) {
	cb.mu.Lock()
	cb.accepted = false
	cb.mu.Unlock()

	err := cb.Element.Activate()

	cb.mu.Lock()
	accepted := cb.accepted
	cb.mu.Unlock()
	if !accepted {
		return nil, err
	}
	return cb.States(), err
}
