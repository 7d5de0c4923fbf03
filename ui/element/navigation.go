// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package element

// Pointer returns the index of the current entry.
func (e *Element) Pointer() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pointer
}

// Bounds returns the first and last displayed entry, inclusive.
func (e *Element) Bounds() (first, last int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.first, e.last
}

// Lines returns how many lines of entries fit on the display.
func (e *Element) Lines() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.linesLocked()
}

// move sets the pointer to target(pointer, len) if the result is a valid
// index different from the current one. target runs with e.mu held.
func (e *Element) move(target func(pointer, n int) int) bool {
	if !e.foreground.Load() {
		return false
	}
	e.mu.Lock()
	next := target(e.pointer, len(e.entries))
	if next < 0 || next >= len(e.entries) || next == e.pointer {
		e.mu.Unlock()
		return false
	}
	e.pointer = next
	e.scroll.reset()
	e.recomputeLocked()
	e.mu.Unlock()

	e.Refresh()
	return true
}

// MoveUp moves one line up.
func (e *Element) MoveUp() bool {
	return e.move(func(p, _ int) int { return p - e.opts.stride })
}

// MoveDown moves one line down.
func (e *Element) MoveDown() bool {
	return e.move(func(p, _ int) int { return p + e.opts.stride })
}

// MoveLeft moves to the previous entry.
func (e *Element) MoveLeft() bool {
	return e.move(func(p, _ int) int { return p - 1 })
}

// MoveRight moves to the next entry.
func (e *Element) MoveRight() bool {
	return e.move(func(p, _ int) int { return p + 1 })
}

// PageUp moves one viewport up, stopping at the first entry.
func (e *Element) PageUp() bool {
	return e.move(func(p, _ int) int {
		return max(p-e.linesLocked()*e.opts.stride, 0)
	})
}

// PageDown moves one viewport down, stopping at the last entry.
func (e *Element) PageDown() bool {
	return e.move(func(p, n int) int {
		return min(p+e.linesLocked()*e.opts.stride, n-1)
	})
}

// SetPointer moves to entry i.
func (e *Element) SetPointer(i int) bool {
	return e.move(func(int, int) int { return i })
}
