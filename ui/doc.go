// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui is the root of the navigation framework.
//
// Elements (ui/element and the menu, listbox, checkbox and gridmenu kinds
// built on it) read canonical key names from an input.Source and draw to an
// output.Sink. Overlays in ui/overlay decorate elements through hooks.
// ui/tui and ui/output provide the terminal drivers, ui/cli the commands.
package ui
