// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/toeirei/navui/ui/canvas"
)

func TestMemory_RecordsFrames(t *testing.T) {
	m := NewMemory(2, 10)
	if m.Last() != nil {
		t.Fatalf("expected no frame yet")
	}
	m.DisplayData("a", "b")
	m.DisplayData("c")
	if m.Frames() != 2 {
		t.Fatalf("expected 2 frames, got %d", m.Frames())
	}
	if got := m.Last(); len(got) != 1 || got[0] != "c" {
		t.Fatalf("unexpected last frame %v", got)
	}

	m.SetCursor(1, 0)
	m.Cursor()
	pos, visible := m.CursorAt()
	if !visible || pos.Row != 1 {
		t.Fatalf("unexpected cursor %+v visible=%v", pos, visible)
	}
}

func TestImageMemory_KeepsImage(t *testing.T) {
	m := NewImageMemory(1, 3)
	c := canvas.New(3, 1)
	c.Text(0, 0, "abc")
	c.InvertRect(canvas.Rect{W: 1, H: 1})
	m.DisplayImage(c.Image())

	img := m.LastImage()
	if img == nil || !img.At(0, 0).Inverted {
		t.Fatalf("expected inverted first cell")
	}
	if got := m.Last(); got[0] != "abc" {
		t.Fatalf("image rows should be recorded, got %v", got)
	}
}

func TestConsole_RedrawsInPlace(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	c := NewConsole(&buf, 2, 4)
	c.DisplayData("one", "two")
	first := buf.String()
	if strings.Contains(first, "\x1b[2A") {
		t.Fatalf("first frame must not move the cursor up")
	}
	if !strings.Contains(first, "one") || !strings.Contains(first, "two") {
		t.Fatalf("frame missing rows: %q", first)
	}

	buf.Reset()
	c.DisplayData("six")
	if !strings.HasPrefix(buf.String(), "\x1b[2A") {
		t.Fatalf("second frame should rewind two lines, got %q", buf.String())
	}
}

func TestConsole_MarksCursorRow(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	c := NewConsole(&buf, 2, 4)
	c.SetCursor(1, 0)
	c.Cursor()
	c.DisplayData("abcd", "wxyz")
	if !strings.Contains(buf.String(), ">xyz") {
		t.Fatalf("cursor row should be marked, got %q", buf.String())
	}
}
