// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package input

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Canonical key names delivered to keymaps.
const (
	KeyUp       = "KEY_UP"
	KeyDown     = "KEY_DOWN"
	KeyLeft     = "KEY_LEFT"
	KeyRight    = "KEY_RIGHT"
	KeyEnter    = "KEY_ENTER"
	KeyPageUp   = "KEY_PAGEUP"
	KeyPageDown = "KEY_PAGEDOWN"
	KeyF1       = "KEY_F1"
	KeyF2       = "KEY_F2"
	KeyF3       = "KEY_F3"
	KeyF4       = "KEY_F4"
	KeyF5       = "KEY_F5"
)

// KeyDigit returns the canonical name of digit key d ("KEY_0".."KEY_9").
func KeyDigit(d int) string {
	return "KEY_" + string(rune('0'+d%10))
}

// Bindings maps canonical names to terminal key bindings. The help text is
// what the key-help footer shows for an installed keymap.
var Bindings = map[string]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h", "esc", "backspace"),
		key.WithHelp("←/esc", "back"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	KeyPageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	KeyPageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	KeyF1: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "fn 1")),
	KeyF2: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "fn 2")),
	KeyF3: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "fn 3")),
	KeyF4: key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "fn 4")),
	KeyF5: key.NewBinding(key.WithKeys("f5", "?"), key.WithHelp("f5/?", "help")),
}

func init() {
	for d := 0; d < 10; d++ {
		s := string(rune('0' + d))
		Bindings[KeyDigit(d)] = key.NewBinding(key.WithKeys(s), key.WithHelp(s, "jump"))
	}
}

// FromTea translates a bubbletea key message into its canonical name.
func FromTea(msg tea.KeyMsg) (string, bool) {
	for _, name := range names() {
		if key.Matches(msg, Bindings[name]) {
			return name, true
		}
	}
	return "", false
}

// HelpBindings returns the bindings for the given canonical names in a
// stable order, skipping names without a terminal binding.
func HelpBindings(keys []string) []key.Binding {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	var out []key.Binding
	for _, k := range sorted {
		if b, ok := Bindings[k]; ok {
			out = append(out, b)
		}
	}
	return out
}

func names() []string {
	out := make([]string, 0, len(Bindings))
	for k := range Bindings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
