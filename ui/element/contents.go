// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package element

import (
	"fmt"
)

// Entry is one selectable item. Repr is a string or a []string with one
// string per display row; Payload is interpreted by the element variant.
type Entry struct {
	Repr    any
	Payload any
	Meta    any
}

// Label returns the first row of the entry representation.
func (e Entry) Label() string {
	switch r := e.Repr.(type) {
	case string:
		return r
	case []string:
		if len(r) > 0 {
			return r[0]
		}
	}
	return ""
}

// ContentsError reports a malformed entry. Index is -1 when the contents as
// a whole are invalid.
type ContentsError struct {
	Index  int
	Reason string
	Err    error
}

func (e *ContentsError) Error() string {
	if e.Index < 0 {
		return "invalid contents: " + e.Reason
	}
	return fmt.Sprintf("invalid entry %d: %s", e.Index, e.Reason)
}

func (e *ContentsError) Unwrap() error { return e.Err }

// entryRows turns a representation into exactly height rows.
func entryRows(i int, repr any, height int) ([]string, error) {
	switch r := repr.(type) {
	case string:
		rows := make([]string, height)
		rows[0] = r
		return rows, nil
	case []string:
		if len(r) != height {
			return nil, &ContentsError{
				Index:  i,
				Reason: fmt.Sprintf("representation has %d rows, want %d", len(r), height),
			}
		}
		return append([]string(nil), r...), nil
	default:
		return nil, &ContentsError{
			Index:  i,
			Reason: fmt.Sprintf("representation must be a string or []string, got %T", repr),
		}
	}
}

// SetContents validates and installs a new entry list. The pointer is kept
// where possible and clamped otherwise. Nothing changes when validation fails.
func (e *Element) SetContents(entries []Entry) error {
	processed := make([]Entry, 0, len(entries)+1)
	processed = append(processed, entries...)
	exitIndex := -1
	if e.variant.ExitEntry != nil && e.opts.exitEntry {
		exitIndex = len(processed)
		processed = append(processed, *e.variant.ExitEntry)
	}
	if len(processed) == 0 {
		return &ContentsError{Index: -1, Reason: "no entries"}
	}

	rows := make([][]string, len(processed))
	for i, entry := range processed {
		r, err := entryRows(i, entry.Repr, e.opts.entryHeight)
		if err != nil {
			return err
		}
		if i != exitIndex && e.variant.Validate != nil {
			if err := e.variant.Validate(i, entry); err != nil {
				return &ContentsError{Index: i, Reason: err.Error(), Err: err}
			}
		}
		rows[i] = r
	}

	e.mu.Lock()
	e.entries = processed
	e.rows = rows
	e.exitIndex = exitIndex
	e.pointer = min(e.pointer, len(processed)-1)
	e.scroll.reset()
	e.recomputeLocked()
	e.mu.Unlock()

	if e.foreground.Load() {
		e.installKeymap()
		e.Refresh()
	}
	return nil
}

// Entries returns a copy of the processed entries, exit entry included.
func (e *Element) Entries() []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Entry(nil), e.entries...)
}

func (e *Element) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

// Current returns the entry under the pointer.
func (e *Element) Current() Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.entries[e.pointer]
}

// ExitIndex returns the index of the appended exit entry, or -1.
func (e *Element) ExitIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exitIndex
}

// OnExitEntry reports whether the pointer is on the appended exit entry.
func (e *Element) OnExitEntry() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exitIndex >= 0 && e.pointer == e.exitIndex
}
