package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/slithertui/slither/internal/config"
	"github.com/slithertui/slither/internal/core"
	"github.com/slithertui/slither/internal/game"
	"github.com/slithertui/slither/internal/input"
	"github.com/slithertui/slither/internal/scene"
	"github.com/slithertui/slither/internal/storage"
)

// Options configures an interactive play model.
type Options struct {
	Config config.Config
	// Seed overrides the initial RNG seed; 0 uses the built-in default.
	Seed uint32
	// Store receives session journals. May be nil to disable journaling.
	Store  *storage.Store
	Logger *log.Logger
}

// Model is the Bubble Tea model for interactive play. It owns the
// scene state machine and journals each run: from the moment the game
// starts until death or abort, every input event is recorded together
// with the presentation tick it was applied on.
type Model struct {
	game     *game.Game
	scene    *scene.Scene
	screen   *core.Screen
	pump     *input.Pump
	keys     *KeyMapper
	store    *storage.Store
	logger   *log.Logger
	recorder storage.Recorder
	tick     time.Duration
	boardW   int // minimum screen size holding the playfield
	boardH   int

	ticks       int // presentation ticks since the session started
	inSession   bool
	sessionSeed uint32
	pendingSeed uint32
	startedAt   time.Time
	quitting    bool
}

// NewModel creates a play model from validated options.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = game.DefaultSeed
	}

	g := game.New(cfg.Grid.Width, cfg.Grid.Height)
	g.Seed(seed)
	g.Reset()

	geo := scene.DefaultGeometry()
	w, h := geo.ScreenSize(cfg.Grid.Width, cfg.Grid.Height)
	screen := core.NewScreen(w, h)

	sc, err := scene.New(g, screen, geo, logger)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	return Model{
		game:        g,
		scene:       sc,
		screen:      screen,
		pump:        input.NewPump(cfg.Input.QueueCapacity),
		keys:        NewKeyMapper(),
		store:       opts.Store,
		logger:      logger,
		tick:        time.Duration(cfg.Timing.TickMs) * time.Millisecond,
		boardW:      w,
		boardH:      h,
		pendingSeed: seed,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil
	}

	return m, nil
}

// handleResize grows the screen buffer to fill the terminal. The
// playfield keeps its fixed geometry in the top-left corner and is
// never shrunk away, so drawn content survives the resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.screen.Resize(core.Max(msg.Width, m.boardW), core.Max(msg.Height, m.boardH))
	return m
}

// handleKey maps keyboard input onto the event queue.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m = m.endSession(storage.OutcomeAborted)
		m.quitting = true
		return m, tea.Quit
	}
	if ev.Kind == core.EventNone {
		return m, nil
	}

	if !m.pump.Post(ev) {
		m.logger.Debug("input queue full, event dropped", "event", ev.String())
	}
	return m, nil
}

// handleTick drains queued input, advances the scene one tick and
// tracks session boundaries.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, ev := range m.pump.Drain() {
		m = m.route(ev)
	}

	before := m.scene.State()
	if err := m.scene.Tick(); err != nil {
		m.logger.Debug("draw failed", "error", err)
	}
	if before == scene.StatePlaying && m.scene.State() == scene.StateDeathAnimation {
		m = m.endSession(storage.OutcomeDied)
	}

	if m.inSession {
		m.ticks++
	}

	return m, tickCmd(m.tick)
}

// route applies one event to the scene, maintaining the journal around it.
func (m Model) route(ev core.InputEvent) Model {
	state := m.scene.State()
	switch {
	case ev.Kind == core.EventButtonA && state != scene.StateWaitingStart:
		// The abort resets the game, which consumes RNG respawning
		// food. Capture the state first so the next session can be
		// seeded for replay.
		m = m.endSession(storage.OutcomeAborted)
		m.pendingSeed = m.game.RNGState()

	case ev.Kind == core.EventButtonB && state == scene.StateWaitingStart:
		m.inSession = true
		m.ticks = 0
		m.sessionSeed = m.pendingSeed
		m.startedAt = time.Now()
		m.recorder.Reset()
	}

	if m.inSession {
		m.recorder.Observe(m.ticks, ev)
	}

	if err := m.scene.HandleEvent(ev); err != nil {
		m.logger.Debug("draw failed", "error", err)
	}
	return m
}

// endSession journals the finished session. Safe to call when no
// session is active.
func (m Model) endSession(outcome string) Model {
	if !m.inSession {
		return m
	}
	m.inSession = false

	rec := storage.SessionRecord{
		Seed:       m.sessionSeed,
		GridWidth:  m.game.Width(),
		GridHeight: m.game.Height(),
		Score:      int(m.game.Score()),
		FoodEaten:  int(m.game.FoodEaten()),
		Ticks:      m.ticks,
		Outcome:    outcome,
		Duration:   int(time.Since(m.startedAt).Seconds()),
	}

	if m.store != nil {
		id, err := m.store.SaveSession(rec, m.recorder.Events())
		if err != nil {
			m.logger.Warn("could not journal session", "error", err)
		} else {
			m.logger.Info("session journaled",
				"id", id, "score", rec.Score, "ticks", rec.Ticks, "outcome", outcome)
		}
	}
	m.recorder.Reset()
	return m
}

// View renders the screen buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run starts an interactive play session in the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
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
