// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package input

import (
	"context"
	"errors"

	"github.com/eiannone/keyboard"
	"github.com/toeirei/navui/internal/logging"
)

// ErrInterrupted is returned by ReadKeyboard when ctrl+c was pressed.
var ErrInterrupted = errors.New("interrupted by user")

var keyboardNames = map[keyboard.Key]string{
	keyboard.KeyArrowUp:    KeyUp,
	keyboard.KeyArrowDown:  KeyDown,
	keyboard.KeyArrowLeft:  KeyLeft,
	keyboard.KeyArrowRight: KeyRight,
	keyboard.KeyEnter:      KeyEnter,
	keyboard.KeySpace:      KeyEnter,
	keyboard.KeyEsc:        KeyLeft,
	keyboard.KeyBackspace:  KeyLeft,
	keyboard.KeyBackspace2: KeyLeft,
	keyboard.KeyPgup:       KeyPageUp,
	keyboard.KeyPgdn:       KeyPageDown,
	keyboard.KeyF1:         KeyF1,
	keyboard.KeyF2:         KeyF2,
	keyboard.KeyF3:         KeyF3,
	keyboard.KeyF4:         KeyF4,
	keyboard.KeyF5:         KeyF5,
}

// FromKeyboard translates a raw keyboard event into its canonical name.
func FromKeyboard(char rune, k keyboard.Key) (string, bool) {
	if name, ok := keyboardNames[k]; ok {
		return name, true
	}
	switch {
	case char >= '0' && char <= '9':
		return KeyDigit(int(char - '0')), true
	case char == '?':
		return KeyF5, true
	}
	return "", false
}

// ReadKeyboard reads raw keys from the terminal and feeds them to p until
// ctx is done, the keyboard fails or ctrl+c is pressed.
func ReadKeyboard(ctx context.Context, p *Proxy, buffer int) error {
	events, err := keyboard.GetKeys(buffer)
	if err != nil {
		return err
	}
	defer func() {
		if err := keyboard.Close(); err != nil {
			logging.Warnf("could not restore keyboard: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Err != nil {
				return ev.Err
			}
			if ev.Key == keyboard.KeyCtrlC {
				return ErrInterrupted
			}
			if name, ok := FromKeyboard(ev.Rune, ev.Key); ok {
				p.Send(name)
			}
		}
	}
}
