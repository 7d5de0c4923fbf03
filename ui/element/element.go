// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package element implements the navigation state machine shared by every
// list-like UI component: pointer and viewport, foreground/background
// lifecycle, keymap generation, the idle loop and the extension points
// overlays attach to.
//
// Two goroutines touch an element. The caller of Activate runs the idle loop;
// the input listener runs keymap callbacks. Mutators only act while the
// element is in the foreground, so events reaching a backgrounded element
// are discarded. Internal state is guarded by a mutex that is never held
// while callbacks, hooks or sinks run.
package element

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/toeirei/navui/internal/logging"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/output"
)

// Handle identifies an element for the lifetime of the process.
type Handle uint64

var handles atomic.Uint64

// Variant supplies the behaviour that distinguishes concrete elements.
type Variant struct {
	// Select runs when the current entry is selected.
	Select func()
	// Validate checks an entry payload. Errors become ContentsErrors.
	Validate func(i int, entry Entry) error
	// Decorate may rewrite the rows of entry i before rendering.
	Decorate func(i int, rows []string) []string
	// Keys may add or replace bindings of the generated keymap.
	Keys func(km input.Keymap)
	// ExitEntry is appended to the contents unless WithoutExitEntry is set.
	ExitEntry *Entry
}

type Element struct {
	name    string
	in      input.Source
	out     output.Sink
	variant Variant
	opts    options
	handle  Handle

	mu        sync.Mutex
	entries   []Entry
	rows      [][]string
	exitIndex int
	pointer   int
	first     int
	last      int
	scroll    scrollState
	err       error
	hooks     hooks

	active     atomic.Bool
	foreground atomic.Bool
	background atomic.Bool
}

// New validates entries and returns an element ready to be activated.
func New(in input.Source, out output.Sink, name string, entries []Entry, v Variant, opts ...Option) (*Element, error) {
	if in == nil || out == nil {
		return nil, errors.New("element needs an input source and an output sink")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Element{
		name:      name,
		in:        in,
		out:       out,
		variant:   v,
		opts:      o,
		handle:    Handle(handles.Add(1)),
		exitIndex: -1,
		pointer:   o.pointer,
	}
	if err := e.SetContents(entries); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Element) Name() string           { return e.name }
func (e *Element) Handle() Handle         { return e.handle }
func (e *Element) Input() input.Source    { return e.in }
func (e *Element) Output() output.Sink    { return e.out }
func (e *Element) Stride() int            { return e.opts.stride }
func (e *Element) EntryHeight() int       { return e.opts.entryHeight }
func (e *Element) Quantum() time.Duration { return e.opts.quantum }
func (e *Element) Exitable() bool         { return e.opts.exitable }
func (e *Element) InForeground() bool     { return e.foreground.Load() }
func (e *Element) InBackground() bool     { return e.background.Load() }

// Activate shows the element and blocks until it is deactivated. A second
// call while the element is active returns immediately. The returned error
// is the first one recorded with Fail during this activation.
func (e *Element) Activate() error {
	if !e.active.CompareAndSwap(false, true) {
		return nil
	}
	defer e.active.Store(false)

	e.mu.Lock()
	e.err = nil
	e.mu.Unlock()

	logging.L.Debug("element activated", "name", e.name, "handle", e.handle)
	e.ToForeground()
	for e.background.Load() {
		if e.foreground.Load() {
			e.IdleLoop()
		} else {
			time.Sleep(e.opts.quantum)
		}
	}
	logging.L.Debug("element deactivated", "name", e.name, "handle", e.handle)

	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.err
	e.err = nil
	return err
}

// Deactivate ends the current activation. The keymap is only cleared when
// this element owns it.
func (e *Element) Deactivate() {
	e.background.Store(false)
	if e.foreground.Swap(false) {
		e.in.ClearKeymap()
	}
}

// Fail records err so that Activate returns it. Only the first error of an
// activation is kept.
func (e *Element) Fail(err error) {
	if err == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err == nil {
		e.err = err
	}
}

// ToForeground runs the before-foreground hooks, takes the input source and
// renders.
func (e *Element) ToForeground() {
	for _, fn := range e.snapshotHooks().beforeForeground {
		fn()
	}
	e.background.Store(true)
	e.foreground.Store(true)
	e.installKeymap()
	e.Refresh()
}

// ToBackground releases the input source but keeps the element alive.
func (e *Element) ToBackground() {
	if e.foreground.Swap(false) {
		e.in.ClearKeymap()
	}
}

// SelectEntry runs the variant selection for the current entry.
func (e *Element) SelectEntry() {
	if !e.foreground.Load() || e.variant.Select == nil {
		return
	}
	e.variant.Select()
}

// IdleLoop sleeps one quantum, advances scrolling and runs the idle hooks.
func (e *Element) IdleLoop() {
	time.Sleep(e.opts.quantum)
	if e.foreground.Load() && e.advanceScroll() {
		e.Refresh()
	}
	for _, fn := range e.snapshotHooks().idle {
		fn()
	}
}
