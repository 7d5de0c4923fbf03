// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package element

import (
	"dario.cat/mergo"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/navui/internal/logging"
)

// ScrollConfig controls horizontal scrolling of an active entry that is
// wider than its cell. All values are counted in idle-loop iterations.
type ScrollConfig struct {
	Disabled bool `mapstructure:"disabled" yaml:"disabled"`
	// Speed is the number of iterations per one-cell step.
	Speed int `mapstructure:"speed" yaml:"speed"`
	// PauseStart is the wait before the first step.
	PauseStart int `mapstructure:"pause_start" yaml:"pause_start"`
	// PauseEnd is the wait at the end before rewinding.
	PauseEnd int `mapstructure:"pause_end" yaml:"pause_end"`
}

var DefaultScroll = ScrollConfig{
	Speed:      2,
	PauseStart: 10,
	PauseEnd:   10,
}

// withScrollDefaults fills zero fields of cfg from DefaultScroll.
func withScrollDefaults(cfg ScrollConfig) ScrollConfig {
	if err := mergo.Merge(&cfg, DefaultScroll); err != nil {
		logging.Warnf("scroll config merge failed, using defaults: %v", err)
		return DefaultScroll
	}
	return cfg
}

type scrollState struct {
	offset   int
	counter  int
	finished bool
}

func (s *scrollState) reset() { *s = scrollState{} }

// advance moves the state by one iteration and reports whether the offset
// changed. overflow is how many cells the entry exceeds its cell width by.
func (s *scrollState) advance(overflow int, cfg ScrollConfig) bool {
	if cfg.Disabled || overflow <= 0 {
		return false
	}
	speed := max(cfg.Speed, 1)
	s.counter++

	if s.finished {
		if s.counter >= cfg.PauseEnd {
			s.reset()
			return true
		}
		return false
	}
	if s.counter < cfg.PauseStart || (s.counter-cfg.PauseStart)%speed != 0 {
		return false
	}
	s.offset++
	if s.offset >= overflow {
		s.offset = overflow
		s.finished = true
		s.counter = 0
	}
	return true
}

// overflow returns by how many cells the widest row exceeds width.
func overflow(rows []string, width int) int {
	widest := 0
	for _, r := range rows {
		widest = max(widest, ansi.StringWidth(r))
	}
	return max(0, widest-width)
}

// scrolled drops the first offset cells of every row.
func scrolled(rows []string, offset int) []string {
	if offset <= 0 {
		return rows
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = ansi.TruncateLeft(r, offset, "")
	}
	return out
}

func (e *Element) cellWidth() int {
	return max(1, e.out.Cols()/max(e.opts.stride, 1))
}

// advanceScroll steps the active entry's scroll state and reports a change.
func (e *Element) advanceScroll() bool {
	e.mu.Lock()
	pointer := e.pointer
	rows := e.rows[pointer]
	e.mu.Unlock()

	width := overflow(e.decorate(pointer, rows), e.cellWidth())

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pointer != pointer {
		return false
	}
	return e.scroll.advance(width, e.opts.scroll)
}
