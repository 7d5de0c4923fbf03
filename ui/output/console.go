// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/toeirei/navui/ui/canvas"
)

// Console redraws frames in place on a terminal. Each frame overwrites the
// lines written by the previous one.
type Console struct {
	mu      sync.Mutex
	w       io.Writer
	rows    int
	cols    int
	drawn   int
	cursor  Position
	visible bool

	reverse *color.Color
	mark    *color.Color
}

// NewConsole returns a console sink of rows x cols cells writing to w
// (stdout when nil).
func NewConsole(w io.Writer, rows, cols int) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{
		w:       w,
		rows:    rows,
		cols:    cols,
		reverse: color.New(color.ReverseVideo),
		mark:    color.New(color.Underline),
	}
}

var (
	_ ImageSink  = (*Console)(nil)
	_ CursorSink = (*Console)(nil)
)

func (c *Console) Rows() int { return c.rows }
func (c *Console) Cols() int { return c.cols }

func (c *Console) DisplayData(rows ...string) {
	img := canvas.NewImage(c.cols, c.rows)
	cv := canvas.From(img)
	for y, row := range rows {
		cv.Text(0, y, row)
	}
	c.DisplayImage(img)
}

func (c *Console) DisplayImage(img *canvas.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sb strings.Builder
	if c.drawn > 0 {
		sb.WriteString(ansi.CursorUp(c.drawn))
	}
	for y := 0; y < min(img.Height, c.rows); y++ {
		sb.WriteString("\r")
		sb.WriteString(ansi.EraseEntireLine)
		sb.WriteString(c.renderRow(img, y))
		sb.WriteString("\n")
	}
	c.drawn = min(img.Height, c.rows)
	fmt.Fprint(c.w, sb.String())
}

func (c *Console) renderRow(img *canvas.Image, y int) string {
	var sb strings.Builder
	for _, run := range img.Runs(y) {
		text := ansi.Truncate(run.Text, c.cols, "")
		if run.Inverted {
			sb.WriteString(c.reverse.Sprint(text))
		} else {
			sb.WriteString(text)
		}
	}
	line := sb.String()
	if c.visible && c.cursor.Row == y {
		line = c.mark.Sprint(">") + ansi.Cut(line, 1, c.cols)
	}
	return line
}

func (c *Console) SetCursor(row, col int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = Position{Row: row, Col: col}
}

func (c *Console) Cursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = true
}

func (c *Console) NoCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = false
}
