// Package tui provides the Bubble Tea integration: the interactive play
// model, the replay viewer, the session browser and SSH serving via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickInterval is the presentation tick period.
const DefaultTickInterval = 30 * time.Millisecond

// TickMsg is sent to trigger one presentation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
