// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package element

import "github.com/toeirei/navui/ui/util"

// viewport moves the window [first, last] by the smallest amount that keeps
// pointer visible. All arithmetic is done in lines of stride entries; lines
// is the number of lines that fit on the display.
func viewport(pointer, first, n, stride, lines int) (int, int) {
	stride = max(stride, 1)
	lines = max(lines, 1)
	total := util.CeilDiv(n, stride)

	pl, fl := pointer/stride, first/stride
	if pl < fl {
		fl = pl
	}
	if pl >= fl+lines {
		fl = pl - lines + 1
	}
	fl = util.Clamp(0, fl, max(0, total-lines))

	return fl * stride, min((fl+lines)*stride, n) - 1
}

// lines returns how many lines of entries fit on the display.
func (e *Element) linesLocked() int {
	if e.opts.lines > 0 {
		return e.opts.lines
	}
	return max(1, e.out.Rows()/e.opts.entryHeight)
}

func (e *Element) recomputeLocked() {
	e.first, e.last = viewport(e.pointer, e.first, len(e.entries), e.opts.stride, e.linesLocked())
}
