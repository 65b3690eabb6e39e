// Package core provides the shared value types and capability contracts
// for the snake platform. It contains no external dependencies so game
// logic stays pure and testable; frontends live under internal/platform.
package core

// Position is a grid coordinate. Grid dimensions fit in 8 bits, so a
// Position is a cheap value type copied freely.
type Position struct {
	X, Y uint8
}

// Pos is a shorthand constructor.
func Pos(x, y uint8) Position {
	return Position{X: x, Y: y}
}

// Direction is the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse direction. The simulation uses this to
// reject direction changes that would fold the snake onto its own neck.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// GameState is the simulation's own state. The richer presentation
// state machine in internal/scene layers on top of this.
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

func (s GameState) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// EventKind discriminates InputEvent variants.
type EventKind int

const (
	EventNone EventKind = iota
	EventDirection
	EventButtonA
	EventButtonB
)

// InputEvent is one decoded input: a direction change, one of the two
// buttons, or nothing. Dir is meaningful only when Kind is EventDirection.
type InputEvent struct {
	Kind EventKind
	Dir  Direction
}

// DirectionEvent builds a direction-change event.
func DirectionEvent(d Direction) InputEvent {
	return InputEvent{Kind: EventDirection, Dir: d}
}

func (e InputEvent) String() string {
	switch e.Kind {
	case EventDirection:
		return "dir:" + e.Dir.String()
	case EventButtonA:
		return "button_a"
	case EventButtonB:
		return "button_b"
	default:
		return "none"
	}
}
