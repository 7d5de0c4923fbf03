// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/navui/internal/logging"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/output"
)

// App is the element tree run inside the program. It returns when the user
// leaves the outermost element.
type App func(in *input.Proxy, out output.Sink) error

type Options struct {
	Rows, Cols int
	Buffer     int
	Title      string
	AltScreen  bool
	// Program is appended to the bubbletea program options.
	Program []tea.ProgramOption
}

// Run starts the program and app side by side and returns once either ends.
// ctrl+c ends the program with input.ErrInterrupted.
func Run(opts Options, app App) error {
	p := input.NewProxy(opts.Buffer)
	m := NewModel(p, opts.Rows, opts.Cols, opts.Title)

	progOpts := append([]tea.ProgramOption(nil), opts.Program...)
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(m, progOpts...)
	screen := NewScreen(opts.Rows, opts.Cols, program.Send)

	p.Listen()
	defer p.StopListen()

	go func() {
		err := app(p, screen)
		logging.L.Debug("application returned", "err", err)
		program.Send(doneMsg{err: err})
	}()

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running screen: %w", err)
	}
	fm, ok := final.(*Model)
	if !ok {
		return nil
	}
	if fm.interrupted {
		return input.ErrInterrupted
	}
	return fm.err
}
