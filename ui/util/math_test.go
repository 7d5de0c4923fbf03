// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClamp(t *testing.T) {
	if got := Clamp(0, -3, 5); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Clamp(0, 9, 5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := Clamp(0, 2, 5); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestCeilDiv(t *testing.T) {
	cases := [][3]int{{0, 3, 0}, {1, 3, 1}, {3, 3, 1}, {4, 3, 2}, {7, 1, 7}}
	for _, c := range cases {
		if got := CeilDiv(c[0], c[1]); got != c[2] {
			t.Fatalf("CeilDiv(%d, %d) = %d, want %d", c[0], c[1], got, c[2])
		}
	}
}

func TestSizeUpdate(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatalf("key message must not update size")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 40, Height: 12}) {
		t.Fatalf("window size message should update")
	}
	if s.ToMsg().Width != 40 || s.Height != 12 {
		t.Fatalf("unexpected size %+v", s)
	}
}
