package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slithertui/slither/internal/core"
)

// KeyMapper translates Bubble Tea key messages to input events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an input event.
// Returns the event (Kind may be EventNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.InputEvent, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.InputEvent{}, true
	case "w", "up":
		return core.DirectionEvent(core.DirUp), false
	case "s", "down":
		return core.DirectionEvent(core.DirDown), false
	case "a", "left":
		return core.DirectionEvent(core.DirLeft), false
	case "d", "right":
		return core.DirectionEvent(core.DirRight), false
	case "r", "esc":
		return core.InputEvent{Kind: core.EventButtonA}, false
	case " ", "enter", "p":
		return core.InputEvent{Kind: core.EventButtonB}, false
	}

	return core.InputEvent{}, false
}
