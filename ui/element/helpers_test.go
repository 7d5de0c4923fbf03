// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package element

import (
	"fmt"
	"testing"
	"time"

	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/output"
)

func labels(n int) []Entry {
	out := make([]Entry, n)
	for i := range out {
		out[i] = Entry{Repr: fmt.Sprintf("entry %d", i), Payload: i}
	}
	return out
}

func newTestElement(t *testing.T, rows int, entries []Entry, v Variant, opts ...Option) (*Element, *input.Proxy, *output.Memory) {
	t.Helper()
	p := input.NewProxy(8)
	m := output.NewMemory(rows, 20)
	opts = append([]Option{WithQuantum(time.Millisecond)}, opts...)
	e, err := New(p, m, "test", entries, v, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, p, m
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

func checkInvariants(t *testing.T, e *Element) {
	t.Helper()
	p := e.Pointer()
	first, last := e.Bounds()
	if p < 0 || p >= e.Len() {
		t.Fatalf("pointer %d out of range [0, %d)", p, e.Len())
	}
	if first > p || p > last {
		t.Fatalf("viewport [%d, %d] does not contain pointer %d", first, last, p)
	}
}

func newSink(rows int) *output.Memory {
	return output.NewMemory(rows, 20)
}
