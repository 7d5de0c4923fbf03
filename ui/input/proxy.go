// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package input owns the single installed keymap and delivers key events to
// it from listener goroutines.
package input

import (
	"sort"
	"sync"

	"github.com/toeirei/navui/internal/logging"
)

// Keymap maps canonical key names to zero-argument callbacks.
type Keymap map[string]func()

// Clone returns a shallow copy of km.
func (km Keymap) Clone() Keymap {
	out := make(Keymap, len(km))
	for k, v := range km {
		out[k] = v
	}
	return out
}

// Source is what elements need from an input device.
type Source interface {
	SetKeymap(km Keymap)
	ClearKeymap()
	// SetStreaming installs a callback receiving every key that has no
	// keymap binding. nil disables streaming.
	SetStreaming(cb func(key string))
	Listen()
	StopListen()
}

const defaultBuffer = 32

// Proxy is the Source implementation shared by all drivers. Drivers push key
// names with Send; listener goroutines pop them and invoke the callback bound
// in the current keymap.
//
// A callback may block, typically because it activated a nested element. If
// a new keymap is installed while a callback is in flight, the proxy starts a
// nested listener so the new keymap receives input; the nested listener is
// stopped as soon as the blocked callback returns.
type Proxy struct {
	mu        sync.Mutex
	keymap    Keymap
	streaming func(string)
	events    chan string
	listeners []*listener
}

type listener struct {
	stop chan struct{}
	busy bool
}

// NewProxy returns a proxy whose event queue holds up to buffer keys.
func NewProxy(buffer int) *Proxy {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Proxy{events: make(chan string, buffer)}
}

var _ Source = (*Proxy)(nil)

// Send enqueues a key event. It never blocks; a full queue drops the key.
func (p *Proxy) Send(key string) bool {
	select {
	case p.events <- key:
		return true
	default:
		logging.L.Warn("input queue full, key dropped", "key", key)
		return false
	}
}

func (p *Proxy) SetKeymap(km Keymap) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.keymap = km.Clone()
	if top := p.topLocked(); top != nil && top.busy {
		p.spawnLocked()
	}
}

func (p *Proxy) ClearKeymap() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keymap = nil
}

func (p *Proxy) SetStreaming(cb func(key string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.streaming = cb
}

// Listen starts the root listener if none is running.
func (p *Proxy) Listen() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.listeners) == 0 {
		p.spawnLocked()
	}
}

// StopListen stops every listener. Callbacks already in flight run to completion.
func (p *Proxy) StopListen() {
	p.mu.Lock()
	stopped := p.listeners
	p.listeners = nil
	p.mu.Unlock()

	for _, l := range stopped {
		close(l.stop)
	}
}

// Keys returns the sorted key names bound in the current keymap.
func (p *Proxy) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.keymap))
	for k := range p.keymap {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Listening reports how many listener goroutines are running.
func (p *Proxy) Listening() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.listeners)
}

func (p *Proxy) topLocked() *listener {
	if len(p.listeners) == 0 {
		return nil
	}
	return p.listeners[len(p.listeners)-1]
}

func (p *Proxy) spawnLocked() {
	l := &listener{stop: make(chan struct{})}
	p.listeners = append(p.listeners, l)
	go p.run(l)
}

func (p *Proxy) run(l *listener) {
	for {
		select {
		case <-l.stop:
			return
		case key := <-p.events:
			p.dispatch(l, key)
		}
	}
}

func (p *Proxy) dispatch(l *listener, key string) {
	p.mu.Lock()
	cb, bound := p.keymap[key]
	if !bound && p.streaming != nil {
		stream := p.streaming
		cb = func() { stream(key) }
	}
	if cb == nil {
		p.mu.Unlock()
		logging.L.Debug("key discarded", "key", key)
		return
	}
	l.busy = true
	p.mu.Unlock()

	defer p.release(l)
	cb()
}

// release marks l idle and stops every listener spawned above it.
func (p *Proxy) release(l *listener) {
	p.mu.Lock()
	defer p.mu.Unlock()

	l.busy = false
	for i, other := range p.listeners {
		if other != l {
			continue
		}
		for _, child := range p.listeners[i+1:] {
			close(child.stop)
		}
		p.listeners = p.listeners[:i+1]
		return
	}
}
