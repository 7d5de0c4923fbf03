// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.

// Package exit carries the signal that unwinds several nested menus in one
// user action.
//
// A callback returns ErrExit (possibly wrapped). Every menu in the chain
// classifies its callback result, deactivates itself on ExitAll and returns
// ErrExit from its own Activate, so the enclosing menu sees the same signal.
package exit

import "errors"

// ErrExit asks every enclosing menu to close.
var ErrExit = errors.New("exit requested")

// Outcome is what a menu does after a selected callback returned.
type Outcome int

const (
	// Continue re-foregrounds the menu.
	Continue Outcome = iota
	// ExitSelf leaves the menu deactivated; the callback closed it.
	ExitSelf
	// ExitAll closes this menu and propagates ErrExit outwards.
	ExitAll
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case ExitSelf:
		return "exit-self"
	case ExitAll:
		return "exit-all"
	}
	return "unknown"
}

// Is reports whether err carries the exit signal.
func Is(err error) bool {
	return errors.Is(err, ErrExit)
}

// Classify maps a callback result to an outcome. stillActive reports whether
// the menu is still alive after the callback returned. Errors other than
// ErrExit are not outcomes; callers handle them before classifying.
func Classify(err error, stillActive bool) Outcome {
	switch {
	case Is(err):
		return ExitAll
	case !stillActive:
		return ExitSelf
	default:
		return Continue
	}
}
