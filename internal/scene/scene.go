package scene

import (
	"github.com/charmbracelet/log"

	"github.com/slithertui/slither/internal/core"
	"github.com/slithertui/slither/internal/game"
)

// State is the presentation state, a superset of the simulation's own
// playing/game-over pair. The simulation flipping to game over starts
// the death animation; everything after that is presentation-only
// until the player acts.
type State int

const (
	StateWaitingStart State = iota
	StatePlaying
	StatePaused
	StateDeathAnimation
	StateBlinkingGameOver
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateWaitingStart:
		return "waiting_start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateDeathAnimation:
		return "death_animation"
	case StateBlinkingGameOver:
		return "blinking_game_over"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Animation timings, in scene ticks.
const (
	// SimDivisor decouples simulation speed from the polling cadence:
	// the snake moves once per SimDivisor scene ticks.
	SimDivisor = 10

	// DeathAnimationFrames is how long the shrink-and-fade runs.
	DeathAnimationFrames = 60

	// BlinkFrames and TotalBlinks shape the game-over blink: the
	// screen alternates every BlinkFrames/(TotalBlinks*2) ticks.
	BlinkFrames   = 90
	TotalBlinks   = 12
	blinkInterval = BlinkFrames / (TotalBlinks * 2)
)

// Scene drives one game through the presentation state machine. One
// Tick corresponds to one iteration of the outer polling loop (~30 ms);
// animation counters advance every tick, the simulation only every
// SimDivisor-th.
type Scene struct {
	game    *game.Game
	display core.Display
	geo     Geometry
	logger  *log.Logger

	state State
	frame uint32

	diff *DirtyRect

	deathFrame uint32
	deathSnake []core.Position

	blinkFrame uint32
}

// New builds a scene over an existing simulation and display, draws
// the initial start screen and waits for button B.
func New(g *game.Game, display core.Display, geo Geometry, logger *log.Logger) (*Scene, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &Scene{
		game:    g,
		display: display,
		geo:     geo,
		logger:  logger,
		state:   StateWaitingStart,
		diff:    NewDirtyRect(geo),
	}
	s.diff.Prime(g.Snake(), g.Food())

	if err := s.clearAndFrame(); err != nil {
		return nil, err
	}
	if err := s.drawStartScreen(); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns the current presentation state.
func (s *Scene) State() State {
	return s.state
}

// Game exposes the underlying simulation.
func (s *Scene) Game() *game.Game {
	return s.game
}

// HandleEvent routes one input event. Draw errors are returned so the
// caller can log them; they never stop the scene.
func (s *Scene) HandleEvent(ev core.InputEvent) error {
	switch ev.Kind {
	case core.EventDirection:
		if s.state == StatePlaying {
			s.game.SetDirection(ev.Dir)
		}
		return nil
	case core.EventButtonA:
		return s.handleButtonA()
	case core.EventButtonB:
		return s.handleButtonB()
	default:
		return nil
	}
}

// handleButtonA aborts to the start screen from any active state, and
// restarts from game over. Waiting start ignores it.
func (s *Scene) handleButtonA() error {
	switch s.state {
	case StateWaitingStart:
		return nil
	default:
		s.game.Reset()
		s.state = StateWaitingStart
		s.diff.Prime(s.game.Snake(), s.game.Food())
		s.logger.Info("reset to start screen")

		if err := s.clearAndFrame(); err != nil {
			return err
		}
		return s.drawStartScreen()
	}
}

// handleButtonB starts, pauses and resumes.
func (s *Scene) handleButtonB() error {
	switch s.state {
	case StateWaitingStart:
		s.state = StatePlaying
		// Restart the tick counter so every run begins at the same
		// simulation phase. Journaled traces depend on this.
		s.frame = 0
		s.logger.Info("game started")
		return s.clearAndFrame()

	case StatePlaying:
		s.state = StatePaused
		s.logger.Info("game paused", "score", s.game.Score(), "food", s.game.FoodEaten())
		if err := s.clearAndFrame(); err != nil {
			return err
		}
		return s.drawPauseScreen()

	case StatePaused:
		s.state = StatePlaying
		s.logger.Info("game resumed")
		// The pause card clobbered the playfield: forget the previous
		// frame so the next diff repaints everything.
		s.diff.Invalidate()
		return s.clearAndFrame()

	default:
		// B is meaningless during the game-over sequence.
		return nil
	}
}

// Tick advances the scene one polling-loop iteration. The blocks run
// in sequence, not as alternatives: the tick that kills the snake also
// runs the first death-animation frame, and the tick that finishes the
// death animation also runs the first blink frame.
func (s *Scene) Tick() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if s.state == StatePlaying && s.frame%SimDivisor == 0 {
		s.game.Update()

		if s.game.State() == core.StateGameOver {
			s.state = StateDeathAnimation
			s.deathFrame = 0
			s.deathSnake = append(s.deathSnake[:0], s.game.Snake()...)
			s.logger.Info("death animation started",
				"score", s.game.Score(), "food", s.game.FoodEaten())
		} else {
			keep(s.diff.Redraw(s.display, s.game.Snake(), s.game.Food()))
		}
	}

	if s.state == StateDeathAnimation {
		keep(s.tickDeathAnimation())
	}

	if s.state == StateBlinkingGameOver {
		keep(s.tickBlink())
	}

	s.frame++
	return firstErr
}

// tickDeathAnimation shrinks the dead snake from the tail while its
// color fades from green toward brown.
func (s *Scene) tickDeathAnimation() error {
	s.deathFrame++
	progress := float32(s.deathFrame) / float32(DeathAnimationFrames)

	if progress >= 1.0 {
		s.state = StateBlinkingGameOver
		s.blinkFrame = 0
		if err := s.clearAndFrame(); err != nil {
			return err
		}
		return s.drawGameOverScreen()
	}

	show := int((1.0 - progress) * float32(len(s.deathSnake)))

	// Erase everything drawn last frame, then draw the surviving
	// prefix of the death snapshot.
	for _, seg := range s.diff.prev {
		x, y, w, h := s.geo.CellRect(seg)
		if err := s.display.DrawRect(x, y, w, h, core.ColorBlack); err != nil {
			return err
		}
	}

	color := deathColor(progress)
	for i := 0; i < show; i++ {
		x, y, w, h := s.geo.CellRect(s.deathSnake[i])
		if err := s.display.DrawRect(x, y, w, h, color); err != nil {
			return err
		}
	}

	s.diff.Prime(s.deathSnake[:show], foodSentinel)
	return nil
}

// deathColor interpolates green toward brown for the first half of the
// animation, then holds solid brown.
func deathColor(progress float32) core.Color {
	if progress >= 0.5 {
		return core.ColorBrown
	}
	return core.Color{
		R: uint8(progress * 139),
		G: uint8((1.0 - progress) * 255),
		B: 0,
	}
}

// tickBlink alternates the game-over card with a bare border.
func (s *Scene) tickBlink() error {
	s.blinkFrame++

	if s.blinkFrame >= BlinkFrames {
		// End on the card, not on whatever half-cycle was last drawn.
		s.state = StateGameOver
		if err := s.clearAndFrame(); err != nil {
			return err
		}
		return s.drawGameOverScreen()
	}

	visible := (s.blinkFrame/blinkInterval)%2 == 0
	if err := s.clearAndFrame(); err != nil {
		return err
	}
	if visible {
		return s.drawGameOverScreen()
	}
	return nil
}
