// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package demo

import (
	"strings"
	"testing"
	"time"

	"github.com/toeirei/navui/internal/i18n"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/output"
)

func init() { i18n.Init("en") }

func testConfig() Config {
	return Config{Quantum: time.Millisecond, EntryHeight: 1, OverlayDuration: 5}
}

type harness struct {
	d    *Demo
	p    *input.Proxy
	out  *output.Memory
	done chan error
}

func start(t *testing.T) *harness {
	t.Helper()
	p := input.NewProxy(8)
	out := output.NewMemory(8, 21)
	d, err := New(testConfig(), p, out)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.Listen()
	t.Cleanup(p.StopListen)

	h := &harness{d: d, p: p, out: out, done: make(chan error, 1)}
	go func() { h.done <- d.Run() }()
	waitFor(t, "main menu", h.ready(d.root))
	return h
}

func (h *harness) quit(t *testing.T) {
	t.Helper()
	waitFor(t, "main menu", h.ready(h.d.root))
	h.d.root.SetPointer(entryQuit)
	h.p.Send(input.KeyEnter)
	select {
	case err := <-h.done:
		if err != nil {
			t.Fatalf("Run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("demo did not quit")
	}
}

// ready reports whether el is in the foreground with its keymap installed.
func (h *harness) ready(el interface{ InForeground() bool }) func() bool {
	return func() bool { return el.InForeground() && len(h.p.Keys()) > 0 }
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

func shows(out *output.Memory, text string) func() bool {
	return func() bool {
		for _, row := range out.Last() {
			if strings.Contains(row, text) {
				return true
			}
		}
		return false
	}
}

func TestQuit(t *testing.T) {
	h := start(t)
	h.quit(t)
	if h.d.root.InBackground() {
		t.Fatalf("main menu still active after quit")
	}
}

func TestPickNumberWithDigitKey(t *testing.T) {
	h := start(t)
	h.d.root.SetPointer(entryPick)
	h.p.Send(input.KeyEnter)
	waitFor(t, "number list", h.ready(h.d.pick))

	h.p.Send(input.KeyDigit(3))
	waitFor(t, "result screen", shows(h.out, "Result: 3"))
	if got := h.d.Last(); got != 3 {
		t.Fatalf("Last() = %v, want 3", got)
	}

	h.p.Send(input.KeyLeft)
	h.quit(t)
}

func TestNestedExitToTop(t *testing.T) {
	h := start(t)
	h.d.root.SetPointer(entryNested)
	h.p.Send(input.KeyEnter)

	for level := 0; level < Depth-1; level++ {
		waitFor(t, "nested menu", h.ready(h.d.levels[level]))
		h.p.Send(input.KeyEnter)
	}
	inner := h.d.levels[Depth-1]
	waitFor(t, "innermost menu", h.ready(inner))
	h.p.Send(input.KeyEnter)

	waitFor(t, "main menu", h.ready(h.d.root))
	for i, m := range h.d.levels {
		if m.InBackground() {
			t.Fatalf("level %d still active", i+1)
		}
	}
	h.quit(t)
}

func TestOptionsReportCheckedNames(t *testing.T) {
	h := start(t)
	h.d.root.SetPointer(entryOptions)
	h.p.Send(input.KeyEnter)
	waitFor(t, "options", h.ready(h.d.options))

	// toggle wifi, then accept
	h.d.options.SetPointer(1)
	h.p.Send(input.KeyEnter)
	waitFor(t, "wifi checked", func() bool { return h.d.options.States()["wifi"] })
	h.d.options.SetPointer(h.d.options.ExitIndex())
	h.p.Send(input.KeyEnter)

	waitFor(t, "result screen", shows(h.out, "sound,wifi"))
	h.p.Send(input.KeyLeft)
	h.quit(t)
}

func TestWorkTogglesSpinner(t *testing.T) {
	h := start(t)
	h.d.root.SetPointer(entryWork)
	h.p.Send(input.KeyEnter)
	waitFor(t, "spinner running", func() bool { return h.d.Working() && h.d.spinner.GetState(h.d.root) })

	waitFor(t, "main menu", h.ready(h.d.root))
	h.p.Send(input.KeyEnter)
	waitFor(t, "spinner stopped", func() bool { return !h.d.spinner.GetState(h.d.root) })
	h.quit(t)
}

func TestHelpKeyShowsHelpScreen(t *testing.T) {
	h := start(t)
	h.p.Send(input.KeyF5)
	waitFor(t, "help screen", func() bool { return !h.d.root.InForeground() })
	waitFor(t, "help text", shows(h.out, "Use up/down"))

	h.p.Send(input.KeyLeft)
	h.quit(t)
}
