// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package overlay

import (
	"github.com/toeirei/navui/ui/canvas"
	"github.com/toeirei/navui/ui/element"
)

var DefaultSpinnerFrames = []string{"|", "/", "-", "\\"}

type SpinnerOptions struct {
	Frames []string
	// Speed is the number of idle iterations per frame.
	Speed int
}

type spinnerState struct {
	frame int
	ticks int
}

// Spinner animates a frame in the bottom right corner between Start and
// Stop. It never times out on its own.
type Spinner struct {
	*Base[spinnerState]

	opts SpinnerOptions
}

func NewSpinner(opts SpinnerOptions) *Spinner {
	opts = withDefaults(opts, SpinnerOptions{Frames: DefaultSpinnerFrames, Speed: 1})
	return &Spinner{Base: NewBase[spinnerState](0), opts: opts}
}

func (o *Spinner) Start(h Host) {
	o.SetState(h, true)
	h.Refresh()
}

func (o *Spinner) Stop(h Host) {
	o.SetState(h, false)
	h.Refresh()
}

// Frame returns the frame currently shown on h.
func (o *Spinner) Frame(h Host) string {
	return o.opts.Frames[o.Data(h).frame%len(o.opts.Frames)]
}

func (o *Spinner) ApplyTo(h Host) error {
	if err := o.Attach(h, spinnerState{}); err != nil {
		return err
	}
	h.AddIdleHook(func() {
		if !o.GetState(h) {
			return
		}
		advanced := false
		o.Update(h, func(s *spinnerState) {
			s.ticks++
			if s.ticks >= o.opts.Speed {
				s.ticks = 0
				s.frame = (s.frame + 1) % len(o.opts.Frames)
				advanced = true
			}
		})
		if advanced {
			h.Refresh()
		}
	})
	h.AddViewWrapper(func(img *canvas.Image, _ element.Snapshot) *canvas.Image {
		if !o.GetState(h) || img.Height == 0 {
			return img
		}
		c := canvas.From(img)
		frame := o.Frame(h)
		c.Text(img.Width-c.TextBounds(frame).W, img.Height-1, frame)
		return img
	})
	return nil
}
