// Package input handles SDL2 input events and keyboard state.
package input

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/egghunt/internal/scene"
)

// Bindings maps each scene key to the SDL scancode that drives it.
type Bindings map[scene.Key]sdl.Scancode

// ParseBindings resolves SDL key names ("W", "Left", "Keypad 8") into
// scancodes. Keys absent from names keep their default letter.
func ParseBindings(names map[scene.Key]string) (Bindings, error) {
	b := make(Bindings, len(scene.Keys))
	for _, k := range scene.Keys {
		name, ok := names[k]
		if !ok || strings.TrimSpace(name) == "" {
			name = string(k)
		}
		sc, err := ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		b[k] = sc
	}
	return b, nil
}

// ParseKey resolves a single SDL key name.
func ParseKey(name string) (sdl.Scancode, error) {
	sc := sdl.GetScancodeFromName(name)
	if sc == sdl.SCANCODE_UNKNOWN {
		return sc, fmt.Errorf("unknown SDL key name %q", name)
	}
	return sc, nil
}

// Input polls SDL events and snapshots the keyboard.
type Input struct {
	bindings   Bindings
	state      scene.Input
	screenshot sdl.Scancode
	capture    bool
}

// New creates a new input handler. screenshot is the key that requests a
// frame capture.
func New(b Bindings, screenshot sdl.Scancode) *Input {
	return &Input{
		bindings:   b,
		state:      make(scene.Input, len(b)),
		screenshot: screenshot,
	}
}

// Update drains pending SDL events and refreshes the key state.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				break
			}
			switch e.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				quit = true
			case i.screenshot:
				i.capture = true
			}
		}
	}

	fill(i.state, i.bindings, sdl.GetKeyboardState())
	return quit
}

// State returns the key state captured by the last Update.
// The map is reused between calls.
func (i *Input) State() scene.Input {
	return i.state
}

// TakeScreenshot reports whether a capture was requested since the last
// call, and clears the request.
func (i *Input) TakeScreenshot() bool {
	c := i.capture
	i.capture = false
	return c
}

// fill sets each bound key from the keyboard snapshot, indexed by scancode.
func fill(dst scene.Input, b Bindings, keyboard []uint8) {
	for k, sc := range b {
		dst[k] = int(sc) < len(keyboard) && keyboard[sc] != 0
	}
}
