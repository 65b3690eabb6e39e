package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/slithertui/slither/internal/core"
	"github.com/slithertui/slither/internal/game"
	"github.com/slithertui/slither/internal/scene"
	"github.com/slithertui/slither/internal/storage"
)

// ReplayModel plays back a journaled session: the game is reseeded from
// the record and the trace events are re-applied on the ticks they were
// originally applied on, so the run unfolds exactly as it was played.
type ReplayModel struct {
	scene   *scene.Scene
	screen  *core.Screen
	trace   []storage.TraceEvent
	outcome string
	total   int // journaled session length in ticks
	tick    time.Duration
	logger  *log.Logger

	idx      int
	ticks    int
	quitting bool
}

// NewReplayModel creates a replay model from a journaled session.
func NewReplayModel(rec storage.SessionRecord, trace []storage.TraceEvent, tick time.Duration, logger *log.Logger) (ReplayModel, error) {
	if logger == nil {
		logger = log.Default()
	}

	g := game.New(rec.GridWidth, rec.GridHeight)
	g.Seed(rec.Seed)
	g.Reset()

	geo := scene.DefaultGeometry()
	w, h := geo.ScreenSize(rec.GridWidth, rec.GridHeight)
	screen := core.NewScreen(w, h)

	sc, err := scene.New(g, screen, geo, logger)
	if err != nil {
		return ReplayModel{}, fmt.Errorf("tui: %w", err)
	}

	return ReplayModel{
		scene:   sc,
		screen:  screen,
		trace:   trace,
		outcome: rec.Outcome,
		total:   rec.Ticks,
		tick:    tick,
		logger:  logger,
	}, nil
}

// Init starts the tick loop.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles messages.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick re-applies trace events due this tick and advances the scene.
func (m ReplayModel) handleTick() (tea.Model, tea.Cmd) {
	for m.idx < len(m.trace) && m.trace[m.idx].Tick <= m.ticks {
		row := m.trace[m.idx]
		m.idx++

		ev, ok := storage.DecodeEvent(row.Kind, row.Dir)
		if !ok {
			m.logger.Warn("skipping unknown trace event", "kind", row.Kind, "dir", row.Dir)
			continue
		}
		if err := m.scene.HandleEvent(ev); err != nil {
			m.logger.Debug("draw failed", "error", err)
		}
	}

	if err := m.scene.Tick(); err != nil {
		m.logger.Debug("draw failed", "error", err)
	}
	m.ticks++

	if m.finished() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tick)
}

// finished reports whether the playback has run its course. A session
// that ended in death is replayed through the full game-over sequence;
// an aborted session stops where the journal stops.
func (m ReplayModel) finished() bool {
	if m.idx < len(m.trace) || m.ticks < m.total {
		return false
	}
	if m.outcome == storage.OutcomeAborted {
		return true
	}
	return m.scene.State() == scene.StateGameOver
}

// View renders the screen buffer.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// RunReplay plays back a journaled session in the local terminal.
func RunReplay(rec storage.SessionRecord, trace []storage.TraceEvent, tick time.Duration, logger *log.Logger) error {
	model, err := NewReplayModel(rec, trace, tick, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
