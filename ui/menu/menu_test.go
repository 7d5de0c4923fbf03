// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/toeirei/navui/ui/element"
	"github.com/toeirei/navui/ui/exit"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/output"
)

func fast() Option {
	return WithElementOptions(element.WithQuantum(time.Millisecond))
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestNew_RejectsNonCallbackPayload(t *testing.T) {
	p := input.NewProxy(1)
	_, err := New(p, output.NewMemory(3, 10), "bad", []element.Entry{{Repr: "x", Payload: 3}})
	var ce *element.ContentsError
	if !errors.As(err, &ce) || ce.Index != 0 {
		t.Fatalf("expected ContentsError at 0, got %v", err)
	}
}

func TestNew_AppendsBackEntry(t *testing.T) {
	p := input.NewProxy(1)
	m, err := New(p, output.NewMemory(3, 10), "m", []element.Entry{Item("a", func() error { return nil })})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	entries := m.Entries()
	if len(entries) != 2 || entries[1].Label() != "Back" {
		t.Fatalf("expected Back entry, got %+v", entries)
	}
}

func TestSelectEntry_ContinueReforegrounds(t *testing.T) {
	p := input.NewProxy(1)
	var ran bool
	var wasForeground bool
	var m *Menu
	m, err := New(p, output.NewMemory(3, 10), "m", []element.Entry{
		{Repr: "plain", Payload: func() { ran = true; wasForeground = m.InForeground() }},
	}, fast())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.ToForeground()

	if got := m.SelectEntry(); got != exit.Continue {
		t.Fatalf("expected continue, got %s", got)
	}
	if !ran || wasForeground {
		t.Fatalf("callback should run with the menu in the background")
	}
	if !m.InForeground() || len(p.Keys()) == 0 {
		t.Fatalf("menu should be back in the foreground with its keymap")
	}
}

func TestSelectEntry_BackEntryExitsSelf(t *testing.T) {
	p := input.NewProxy(1)
	m, err := New(p, output.NewMemory(3, 10), "m", []element.Entry{Item("a", func() error { return nil })}, fast())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.ToForeground()
	m.SetPointer(m.ExitIndex())

	if got := m.SelectEntry(); got != exit.ExitSelf {
		t.Fatalf("expected exit-self, got %s", got)
	}
	if m.InBackground() || m.InForeground() {
		t.Fatalf("menu should be deactivated")
	}
}

func TestSelectEntry_CallbackErrorPropagates(t *testing.T) {
	p := input.NewProxy(4)
	p.Listen()
	defer p.StopListen()

	errBoom := errors.New("boom")
	m, err := New(p, output.NewMemory(3, 10), "m", []element.Entry{
		Item("fail", func() error { return fmt.Errorf("action: %w", errBoom) }),
	}, fast())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- m.Activate() }()
	waitFor(t, "menu keymap", func() bool { return len(p.Keys()) > 0 })
	p.Send(input.KeyEnter)

	select {
	case err := <-done:
		if !errors.Is(err, errBoom) {
			t.Fatalf("expected boom, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Activate did not return")
	}
}

// nested builds A -> B where B's only entry returns the exit signal.
func nested(t *testing.T, p *input.Proxy, catch bool) (a, b *Menu) {
	t.Helper()
	sink := output.NewMemory(3, 16)
	b, err := New(p, sink, "B", []element.Entry{
		Item("leave", func() error { return exit.ErrExit }),
	}, fast())
	if err != nil {
		t.Fatalf("New B: %v", err)
	}
	a, err = New(p, sink, "A", []element.Entry{
		Item("open B", b.Activate),
	}, fast(), WithCatchExit(catch))
	if err != nil {
		t.Fatalf("New A: %v", err)
	}
	return a, b
}

func runNestedExit(t *testing.T, p *input.Proxy, a, b *Menu) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- a.Activate() }()

	waitFor(t, "A in foreground", func() bool { return a.InForeground() && len(p.Keys()) > 0 })
	p.Send(input.KeyEnter)
	waitFor(t, "B in foreground", func() bool { return b.InForeground() && len(p.Keys()) > 0 })
	p.Send(input.KeyEnter)

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatalf("A.Activate did not return")
	}
	return nil
}

func TestNestedExit_UnwindsAllLevels(t *testing.T) {
	p := input.NewProxy(4)
	p.Listen()
	defer p.StopListen()

	a, b := nested(t, p, false)
	err := runNestedExit(t, p, a, b)
	if !errors.Is(err, exit.ErrExit) {
		t.Fatalf("A should pass the exit signal on, got %v", err)
	}
	for _, m := range []*Menu{a, b} {
		if m.InForeground() || m.InBackground() {
			t.Fatalf("menu %s should be deactivated", m.Name())
		}
	}
	if len(p.Keys()) != 0 {
		t.Fatalf("no keymap should remain installed, got %v", p.Keys())
	}
}

func TestNestedExit_CaughtAtRoot(t *testing.T) {
	p := input.NewProxy(4)
	p.Listen()
	defer p.StopListen()

	a, b := nested(t, p, true)
	if err := runNestedExit(t, p, a, b); err != nil {
		t.Fatalf("catching menu should return nil, got %v", err)
	}
	if b.InBackground() || a.InBackground() {
		t.Fatalf("both menus should be deactivated")
	}

	// A can be activated again and left normally
	done := make(chan error, 1)
	go func() { done <- a.Activate() }()
	waitFor(t, "A reactivated", func() bool { return a.InForeground() && len(p.Keys()) > 0 })
	p.Send(input.KeyLeft)
	if err := <-done; err != nil {
		t.Fatalf("second activation: %v", err)
	}
}
