// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package element

import (
	"github.com/toeirei/navui/ui/canvas"
	"github.com/toeirei/navui/ui/input"
)

// KeymapHook receives the keymap built so far and returns the one to use.
type KeymapHook func(km input.Keymap) input.Keymap

// ViewWrapper receives the rendered image and may draw on it or replace it.
type ViewWrapper func(img *canvas.Image, s Snapshot) *canvas.Image

type hooks struct {
	keymap           []KeymapHook
	beforeForeground []func()
	idle             []func()
	refresh          []func(Snapshot)
	views            []ViewWrapper
}

func (e *Element) snapshotHooks() hooks {
	e.mu.Lock()
	defer e.mu.Unlock()
	return hooks{
		keymap:           append([]KeymapHook(nil), e.hooks.keymap...),
		beforeForeground: append([]func(){}, e.hooks.beforeForeground...),
		idle:             append([]func(){}, e.hooks.idle...),
		refresh:          append([]func(Snapshot){}, e.hooks.refresh...),
		views:            append([]ViewWrapper(nil), e.hooks.views...),
	}
}

// AddKeymapHook chains fn after the hooks already added, so the hook added
// last has the final word. A foreground element reinstalls its keymap.
func (e *Element) AddKeymapHook(fn KeymapHook) {
	e.mu.Lock()
	e.hooks.keymap = append(e.hooks.keymap, fn)
	e.mu.Unlock()
	if e.foreground.Load() {
		e.installKeymap()
	}
}

// AddBeforeForeground registers fn to run every time the element is about
// to take the foreground.
func (e *Element) AddBeforeForeground(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks.beforeForeground = append(e.hooks.beforeForeground, fn)
}

// AddIdleHook registers fn to run at the end of every idle-loop iteration.
func (e *Element) AddIdleHook(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks.idle = append(e.hooks.idle, fn)
}

// AddRefreshHook registers fn to observe every refresh before rendering.
func (e *Element) AddRefreshHook(fn func(Snapshot)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks.refresh = append(e.hooks.refresh, fn)
}

// AddViewWrapper registers fn around the view; wrappers run in the order
// they were added.
func (e *Element) AddViewWrapper(fn ViewWrapper) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks.views = append(e.hooks.views, fn)
}
