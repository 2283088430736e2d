// Package platform opens the window the game is shown in. Each backend is
// both a ui.TextSurface and an input.Source.
package platform

import (
	"github.com/pkg/errors"

	"snake-torus/input"
	"snake-torus/ui"
)

const (
	Raylib   = "raylib"
	Terminal = "terminal"
)

// Backends lists the accepted backend names.
var Backends = []string{Raylib, Terminal}

// Window is a display plus the keyboard attached to it.
type Window interface {
	ui.TextSurface
	input.Source
	// Size reports the drawable area in pixels.
	Size() (width, height int)
	Close()
}

// Open starts the named backend. The raylib window is width x height; the
// terminal backend uses whatever size the terminal has.
func Open(backend string, width, height int, title string) (Window, error) {
	switch backend {
	case Raylib:
		w, err := OpenRaylib(width, height, title)
		if err != nil {
			return nil, err
		}
		return w, nil
	case Terminal:
		w, err := OpenTerminal()
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return nil, errors.Errorf("unknown backend %q", backend)
}
