// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui hosts an element tree in a bubbletea program. The program
// owns the terminal: key messages are translated into canonical key names
// for the input proxy, and frames drawn by elements arrive as messages and
// are rendered inside a bordered screen with a key-help footer.
package tui
