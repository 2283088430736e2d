// Package input turns backend key presses into game events.
package input

import (
	"snake-torus/game/types"
)

// Kind identifies what an Event asks for.
type Kind int

const (
	Move Kind = iota
	Quit
)

// Event is one discrete key-down or window event.
type Event struct {
	Kind      Kind
	Direction types.Direction // set for Move
}

// MoveEvent builds a Move event for d.
func MoveEvent(d types.Direction) Event {
	return Event{Kind: Move, Direction: d}
}

// QuitEvent builds a Quit event.
func QuitEvent() Event {
	return Event{Kind: Quit}
}

// Source yields the events queued since the last call, oldest first.
// Poll must not block.
type Source interface {
	Poll() []Event
}

// FromRune maps the letter keys shared by every backend: WASD to move,
// q to quit. Case is ignored.
func FromRune(r rune) (Event, bool) {
	switch r {
	case 'w', 'W':
		return MoveEvent(types.Up), true
	case 's', 'S':
		return MoveEvent(types.Down), true
	case 'a', 'A':
		return MoveEvent(types.Left), true
	case 'd', 'D':
		return MoveEvent(types.Right), true
	case 'q', 'Q':
		return QuitEvent(), true
	}
	return Event{}, false
}
