// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package demo builds the sample element tree started by `navui demo`.
// Every element kind and every overlay appears at least once.
package demo

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/toeirei/navui/config"
	"github.com/toeirei/navui/internal/i18n"
	"github.com/toeirei/navui/internal/logging"
	"github.com/toeirei/navui/ui/checkbox"
	"github.com/toeirei/navui/ui/element"
	"github.com/toeirei/navui/ui/exit"
	"github.com/toeirei/navui/ui/gridmenu"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/listbox"
	"github.com/toeirei/navui/ui/menu"
	"github.com/toeirei/navui/ui/output"
	"github.com/toeirei/navui/ui/overlay"
	"github.com/toeirei/navui/util/slicest"
)

// Depth is the number of nested menus behind the "Nested menus" entry.
const Depth = 3

type Config struct {
	Quantum         time.Duration
	EntryHeight     int
	Scroll          element.ScrollConfig
	OverlayDuration int
}

// FromConfig picks the demo settings out of the effective configuration.
func FromConfig(c config.Config) Config {
	return Config{
		Quantum:     c.Element.Quantum,
		EntryHeight: c.Element.EntryHeight,
		Scroll: element.ScrollConfig{
			Disabled:   c.Scroll.Disabled,
			Speed:      c.Scroll.Speed,
			PauseStart: c.Scroll.PauseStart,
			PauseEnd:   c.Scroll.PauseEnd,
		},
		OverlayDuration: c.Overlay.Duration,
	}
}

// root menu entries, in display order
const (
	entryOptions = iota
	entryPick
	entryApps
	entryNested
	entryWork
	entryLong
	entryQuit
)

type Demo struct {
	cfg Config
	in  input.Source
	out output.Sink

	root    *menu.Menu
	options *checkbox.Checkbox
	pick    *listbox.Listbox
	apps    *gridmenu.GridMenu
	levels  []*menu.Menu
	spinner *overlay.Spinner

	mu      sync.Mutex
	working bool
	last    any
}

// Run builds the demo tree on in and out and blocks until the user quits.
func Run(cfg Config, in input.Source, out output.Sink) error {
	d, err := New(cfg, in, out)
	if err != nil {
		return err
	}
	return d.Run()
}

func New(cfg Config, in input.Source, out output.Sink) (*Demo, error) {
	d := &Demo{cfg: cfg, in: in, out: out}
	builders := []func() error{d.buildOptions, d.buildPick, d.buildApps, d.buildLevels, d.buildRoot}
	for _, build := range builders {
		if err := build(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Run activates the main menu. Quitting returns nil.
func (d *Demo) Run() error {
	logging.L.Info("demo started", "rows", d.out.Rows(), "cols", d.out.Cols())
	err := d.root.Activate()
	logging.L.Info("demo finished", "err", err)
	return err
}

func (d *Demo) elementOptions(extra ...element.Option) []element.Option {
	opts := []element.Option{
		element.WithEntryHeight(d.cfg.EntryHeight),
		element.WithScroll(d.cfg.Scroll),
	}
	if d.cfg.Quantum > 0 {
		opts = append(opts, element.WithQuantum(d.cfg.Quantum))
	}
	return append(opts, extra...)
}

func (d *Demo) buildRoot() error {
	entries := []element.Entry{
		entryOptions: menu.Item(i18n.T("demo.options"), d.runOptions),
		entryPick:    menu.Item(i18n.T("demo.pick"), d.runPick),
		entryApps:    menu.Item(i18n.T("demo.apps"), d.runApps),
		entryNested:  menu.Item(i18n.T("demo.nested"), d.runNested),
		entryWork:    {Repr: i18n.T("demo.work"), Payload: d.toggleWork},
		entryLong:    {Repr: i18n.T("demo.long"), Payload: func() {}},
		entryQuit:    menu.Item(i18n.T("demo.quit"), func() error { return exit.ErrExit }),
	}
	root, err := menu.New(d.in, d.out, i18n.T("demo.title"), entries,
		menu.WithCatchExit(true),
		menu.WithElementOptions(d.elementOptions(element.WithExitable(false), element.WithoutExitEntry())...),
	)
	if err != nil {
		return fmt.Errorf("building main menu: %w", err)
	}
	d.root = root
	d.spinner = overlay.NewSpinner(overlay.SpinnerOptions{})

	help := overlay.NewHelp(d.showHelp, overlay.HelpOptions{Duration: d.cfg.OverlayDuration})
	fn := overlay.NewFunction(func() { root.SetPointer(0) }, nil, overlay.FunctionOptions{Duration: d.cfg.OverlayDuration})
	for _, o := range []interface{ ApplyTo(overlay.Host) error }{help, fn, d.spinner} {
		if err := o.ApplyTo(root); err != nil {
			return err
		}
	}
	return nil
}

func (d *Demo) buildOptions() error {
	entries := []element.Entry{
		checkbox.Checked(i18n.T("demo.sound"), "sound", true),
		checkbox.Item(i18n.T("demo.wifi"), "wifi"),
		checkbox.Item(i18n.T("demo.bluetooth"), "bluetooth"),
	}
	cb, err := checkbox.New(d.in, d.out, i18n.T("demo.options"), entries,
		checkbox.WithElementOptions(d.elementOptions()...))
	if err != nil {
		return fmt.Errorf("building options: %w", err)
	}
	d.options = cb
	return overlay.NewPurpose(i18n.T("demo.options"), d.cfg.OverlayDuration).ApplyTo(cb)
}

func (d *Demo) buildPick() error {
	entries := make([]element.Entry, 0, 12)
	for i := 1; i <= 12; i++ {
		entries = append(entries, listbox.Item(fmt.Sprint(i), i))
	}
	lb, err := listbox.New(d.in, d.out, i18n.T("demo.pick"), entries,
		listbox.WithSelected(1),
		listbox.WithElementOptions(d.elementOptions()...))
	if err != nil {
		return fmt.Errorf("building number list: %w", err)
	}
	d.pick = lb
	return overlay.NewNumberKeys(overlay.NumberOptions{Duration: d.cfg.OverlayDuration, Select: true}).ApplyTo(lb)
}

func (d *Demo) buildApps() error {
	names := []string{"Mail", "Maps", "Music", "Notes", "Phone", "Photos", "Clock", "Shell", "Wiki"}
	entries := slicest.Map(names, func(name string) element.Entry {
		return menu.Item(name, d.record(name))
	})
	g, err := gridmenu.New(d.in, d.out, i18n.T("demo.apps"), entries,
		gridmenu.WithHighlight(gridmenu.Brackets{}),
		gridmenu.WithElementOptions(d.elementOptions(element.WithoutExitEntry())...))
	if err != nil {
		return fmt.Errorf("building app grid: %w", err)
	}
	d.apps = g
	if err := overlay.NewGridSidebar(3).ApplyTo(g); err != nil {
		return err
	}
	return overlay.NewGridLabel(d.cfg.OverlayDuration).ApplyTo(g)
}

// buildLevels creates the nested menus innermost first. Only the outermost
// one catches the exit signal, so "Exit to top" unwinds to the main menu.
func (d *Demo) buildLevels() error {
	d.levels = make([]*menu.Menu, Depth)
	for level := Depth - 1; level >= 0; level-- {
		var entries []element.Entry
		if level < Depth-1 {
			entries = append(entries, menu.Item(i18n.T("demo.deeper"), d.levels[level+1].Activate))
		}
		entries = append(entries, menu.Item(i18n.T("demo.exit_all"), func() error { return exit.ErrExit }))

		name := i18n.T("demo.level", level+1)
		m, err := menu.New(d.in, d.out, name, entries,
			menu.WithCatchExit(level == 0),
			menu.WithElementOptions(d.elementOptions()...))
		if err != nil {
			return fmt.Errorf("building %s: %w", name, err)
		}
		if err := overlay.NewPurpose(name, d.cfg.OverlayDuration).ApplyTo(m); err != nil {
			return err
		}
		d.levels[level] = m
	}
	return nil
}

func (d *Demo) record(v any) menu.Callback {
	return func() error {
		d.setLast(v)
		return d.show(i18n.T("demo.result", v))
	}
}

func (d *Demo) setLast(v any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = v
}

// Last returns the value most recently chosen anywhere in the demo.
func (d *Demo) Last() any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

func (d *Demo) runOptions() error {
	states, err := d.options.Activate()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(states))
	for name := range states {
		names = append(names, name)
	}
	sort.Strings(names)
	on := slicest.Filter(names, func(name string) bool { return states[name] })
	if len(on) == 0 {
		return d.record(i18n.T("demo.none"))()
	}
	return d.record(strings.Join(on, ","))()
}

func (d *Demo) runPick() error {
	v, err := d.pick.Activate()
	if err != nil {
		return err
	}
	if v == nil {
		return d.record(i18n.T("demo.none"))()
	}
	return d.record(v)()
}

func (d *Demo) runApps() error {
	return d.apps.Activate()
}

func (d *Demo) runNested() error {
	return d.levels[0].Activate()
}

func (d *Demo) toggleWork() {
	d.mu.Lock()
	d.working = !d.working
	working := d.working
	d.mu.Unlock()

	if working {
		d.spinner.Start(d.root)
	} else {
		d.spinner.Stop(d.root)
	}
}

// Working reports whether the spinner on the main menu is running.
func (d *Demo) Working() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.working
}

// show displays text in a throwaway menu until the user goes back.
func (d *Demo) show(text string) error {
	m, err := menu.New(d.in, d.out, text, []element.Entry{{Repr: text, Payload: func() {}}},
		menu.WithElementOptions(d.elementOptions()...))
	if err != nil {
		return err
	}
	return m.Activate()
}

// showHelp runs from a key callback while the main menu is in the foreground.
func (d *Demo) showHelp() {
	d.root.ToBackground()
	defer d.root.ToForeground()
	if err := d.show(i18n.T("demo.help")); err != nil {
		logging.L.Warn("help screen failed", "err", err)
	}
}
