// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package menu implements the element whose entries run callbacks.
package menu

import (
	"fmt"

	"github.com/toeirei/navui/internal/i18n"
	"github.com/toeirei/navui/internal/logging"
	"github.com/toeirei/navui/ui/element"
	"github.com/toeirei/navui/ui/exit"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/output"
)

// Callback is the payload of a menu entry. A func() is accepted as well.
type Callback = func() error

type Menu struct {
	*element.Element

	catchExit bool
}

type config struct {
	catchExit bool
	elem      []element.Option
}

type Option func(*config)

// WithCatchExit stops the exit signal at this menu instead of passing it on.
func WithCatchExit(catch bool) Option {
	return func(c *config) { c.catchExit = catch }
}

// WithElementOptions passes options through to the underlying element.
func WithElementOptions(opts ...element.Option) Option {
	return func(c *config) { c.elem = append(c.elem, opts...) }
}

// Item is a shorthand for a single-row entry running fn.
func Item(label string, fn Callback) element.Entry {
	return element.Entry{Repr: label, Payload: fn}
}

// New builds a menu. Every entry payload must be a Callback or a func().
func New(in input.Source, out output.Sink, name string, entries []element.Entry, opts ...Option) (*Menu, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	m := &Menu{catchExit: c.catchExit}
	el, err := element.New(in, out, name, entries, m.variant(), c.elem...)
	if err != nil {
		return nil, err
	}
	m.Element = el
	return m, nil
}

func (m *Menu) variant() element.Variant {
	return element.Variant{
		Select:   func() { m.SelectEntry() },
		Validate: validate,
		ExitEntry: &element.Entry{
			Repr:    i18n.T("element.back"),
			Payload: Callback(func() error { m.Deactivate(); return nil }),
		},
	}
}

// SetCatchExit changes whether the exit signal stops at this menu.
func (m *Menu) SetCatchExit(catch bool) { m.catchExit = catch }

func validate(_ int, e element.Entry) error {
	if callback(e.Payload) == nil {
		return fmt.Errorf("payload must be a func() error or func(), got %T", e.Payload)
	}
	return nil
}

func callback(payload any) Callback {
	switch fn := payload.(type) {
	case Callback:
		return fn
	case func():
		return func() error { fn(); return nil }
	}
	return nil
}

// SelectEntry runs the current entry's callback with the menu in the
// background and reports what the menu did afterwards.
func (m *Menu) SelectEntry() exit.Outcome {
	if !m.InForeground() {
		return exit.Continue
	}
	fn := callback(m.Current().Payload)
	m.ToBackground()

	err := fn()
	if err != nil && !exit.Is(err) {
		logging.L.Debug("menu callback failed", "name", m.Name(), "err", err)
		m.Deactivate()
		m.Fail(err)
		return exit.ExitSelf
	}

	outcome := exit.Classify(err, m.InBackground())
	switch outcome {
	case exit.ExitAll:
		m.Deactivate()
		if !m.catchExit {
			m.Fail(err)
		}
	case exit.Continue:
		m.ToForeground()
	}
	logging.L.Debug("menu entry done", "name", m.Name(), "outcome", outcome)
	return outcome
}
