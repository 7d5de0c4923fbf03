// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/toeirei/navui/config"
	"github.com/toeirei/navui/internal/demo"
	"github.com/toeirei/navui/internal/i18n"
	"github.com/toeirei/navui/internal/logging"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/output"
	"github.com/toeirei/navui/ui/tui"
	"golang.org/x/term"
)

// driver runs app on one input/output pairing.
type driver func(c config.Config, app tui.App) error

var drivers = map[string]driver{
	"tea":     runTea,
	"console": runConsole,
}

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the demo menu tree",
		Long: `Runs a nested menu tree that uses every element and overlay.
Select the driver with --input.driver: "tea" draws a framed full-screen
display, "console" reads raw keys and redraws the display in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, appConfig)
		},
	}
}

func runDemo(cmd *cobra.Command, c config.Config) error {
	run, ok := drivers[c.Input.Driver]
	if !ok {
		names := make([]string, 0, len(drivers))
		for name := range drivers {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown input driver %q (available: %v)", c.Input.Driver, names)
	}
	if !isTerminal() {
		return errors.New("the demo needs an interactive terminal")
	}

	cfg := demo.FromConfig(c)
	app := func(in *input.Proxy, out output.Sink) error {
		return demo.Run(cfg, in, out)
	}
	err := run(c, app)
	if errors.Is(err, input.ErrInterrupted) {
		logging.L.Info("interrupted")
		return nil
	}
	if err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("demo.quit"))
	}
	return err
}

func runTea(c config.Config, app tui.App) error {
	// The program owns the terminal; stderr logs would tear the frame.
	if c.Log.File == "" {
		logging.Setup(c.Log.Level, io.Discard)
	}
	return tui.Run(tui.Options{
		Rows:      c.Display.Rows,
		Cols:      c.Display.Cols,
		Buffer:    c.Input.Buffer,
		Title:     "navui",
		AltScreen: true,
	}, app)
}

func runConsole(c config.Config, app tui.App) error {
	p := input.NewProxy(c.Input.Buffer)
	out := output.NewConsole(os.Stdout, c.Display.Rows, c.Display.Cols)
	p.Listen()
	defer p.StopListen()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keysDone := make(chan error, 1)
	go func() { keysDone <- input.ReadKeyboard(ctx, p, c.Input.Buffer) }()
	appDone := make(chan error, 1)
	go func() { appDone <- app(p, out) }()

	select {
	case err := <-appDone:
		cancel()
		if kerr := <-keysDone; kerr != nil {
			logging.L.Warn("keyboard reader failed", "err", kerr)
		}
		return err
	case err := <-keysDone:
		// The element tree cannot be cancelled; the process exits with it.
		return err
	}
}
