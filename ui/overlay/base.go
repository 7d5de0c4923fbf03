// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package overlay attaches independent behaviours to elements after they are
// built: timed badges, function key labels, spinners, numeric shortcuts.
//
// An overlay keeps one record per element it is attached to, keyed by the
// element handle, and hooks into the element through its extension points.
// Records are only touched from those hooks and from the trigger methods.
package overlay

import (
	"errors"
	"sync"

	"github.com/toeirei/navui/ui/element"
)

// DefaultDuration is the number of idle iterations a timed overlay stays
// active.
const DefaultDuration = 20

var (
	ErrAlreadyAttached = errors.New("overlay already attached to this element")
	ErrIncompatible    = errors.New("overlay cannot be attached to this element")
)

// Host is what overlays need from an element.
type Host interface {
	Handle() element.Handle
	Name() string
	Len() int
	SetPointer(i int) bool
	InForeground() bool
	Refresh()
	RefreshKeymap()

	AddKeymapHook(fn element.KeymapHook)
	AddBeforeForeground(fn func())
	AddIdleHook(fn func())
	AddRefreshHook(fn func(element.Snapshot))
	AddViewWrapper(fn element.ViewWrapper)
}

// GridHost is a Host laid out as a grid.
type GridHost interface {
	Host
	Columns() int
	SetSidebar(width int) error
}

type record[S any] struct {
	active  bool
	counter int
	data    S
}

// Base holds the per-element state of one overlay. An active record turns
// inactive after Duration idle iterations; a zero Duration never times out.
type Base[S any] struct {
	Duration int

	mu      sync.Mutex
	records map[element.Handle]*record[S]
}

func NewBase[S any](duration int) *Base[S] {
	return &Base[S]{Duration: duration, records: map[element.Handle]*record[S]{}}
}

// Attach creates the record for h. It fails if h already has one.
func (b *Base[S]) Attach(h Host, data S) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.records == nil {
		b.records = map[element.Handle]*record[S]{}
	}
	if _, ok := b.records[h.Handle()]; ok {
		return ErrAlreadyAttached
	}
	b.records[h.Handle()] = &record[S]{data: data}
	return nil
}

func (b *Base[S]) drop(h Host) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.records, h.Handle())
}

func (b *Base[S]) get(h Host) *record[S] {
	if b.records == nil {
		return nil
	}
	return b.records[h.Handle()]
}

// SetState activates or deactivates the record of h. Activation restarts
// the timeout.
func (b *Base[S]) SetState(h Host, active bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r := b.get(h); r != nil {
		r.active = active
		r.counter = 0
	}
}

// GetState reports whether the record of h is active.
func (b *Base[S]) GetState(h Host) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := b.get(h)
	return r != nil && r.active
}

// Data returns a copy of the overlay data of h.
func (b *Base[S]) Data(h Host) S {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r := b.get(h); r != nil {
		return r.data
	}
	var zero S
	return zero
}

// Update changes the overlay data of h in place.
func (b *Base[S]) Update(h Host, fn func(data *S)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r := b.get(h); r != nil {
		fn(&r.data)
	}
}

// Tick counts one idle iteration for h and reports whether the record just
// timed out.
func (b *Base[S]) Tick(h Host) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := b.get(h)
	if r == nil || !r.active || b.Duration <= 0 {
		return false
	}
	r.counter++
	if r.counter < b.Duration {
		return false
	}
	r.active = false
	r.counter = 0
	return true
}

// tickAndRefresh is the idle hook shared by timed overlays.
func (b *Base[S]) tickAndRefresh(h Host) func() {
	return func() {
		if b.Tick(h) {
			h.Refresh()
		}
	}
}

// Timer is an overlay with nothing but timed state. Other components use it
// to show something for a while after an event.
type Timer struct {
	*Base[struct{}]
}

func NewTimer(duration int) *Timer {
	return &Timer{Base: NewBase[struct{}](duration)}
}

func (t *Timer) ApplyTo(h Host) error {
	if err := t.Attach(h, struct{}{}); err != nil {
		return err
	}
	h.AddIdleHook(t.tickAndRefresh(h))
	return nil
}
