// Package engine provides the generic orchestration loop that ties an
// input source, a timing source and a renderer to the simulation. It is
// parameterized over the capability contracts in internal/core, so any
// frontend that can read input, tell time and draw a frame can host the
// game without touching simulation logic.
package engine

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/slithertui/slither/internal/core"
	"github.com/slithertui/slither/internal/game"
)

// DefaultFrameTimeMillis is the target frame time (~6.7 FPS), matching
// the game's intended pace on a small display.
const DefaultFrameTimeMillis uint32 = 150

// Engine drives one game: read input, advance the simulation, render,
// pace. All faults are absorbed locally; the loop only stops when its
// context is cancelled.
type Engine struct {
	input     core.Input
	platform  core.Platform
	renderer  core.Renderer
	game      *game.Game
	frameTime uint32
	logger    *log.Logger
}

// New wires an engine around a fresh simulation on the given grid.
func New(input core.Input, platform core.Platform, renderer core.Renderer, gridW, gridH uint8, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		input:     input,
		platform:  platform,
		renderer:  renderer,
		game:      game.New(gridW, gridH),
		frameTime: DefaultFrameTimeMillis,
		logger:    logger,
	}
}

// SetFrameRate changes the pacing target.
func (e *Engine) SetFrameRate(fps uint32) {
	if fps == 0 {
		return
	}
	e.frameTime = 1000 / fps
}

// SetFrameTime sets the pacing target directly in milliseconds.
func (e *Engine) SetFrameTime(ms uint32) {
	if ms == 0 {
		return
	}
	e.frameTime = ms
}

// Game exposes the simulation, mainly for composition roots that want
// to seed it before Run.
func (e *Engine) Game() *game.Game {
	return e.game
}

// Run executes the frame loop until ctx is cancelled. Per iteration:
// one input read (transient errors skip the rest of the iteration), one
// simulation tick while playing, one render (errors skip pacing), then
// a delay for whatever remains of the target frame time. A slow frame
// is not compensated; the next one simply starts late.
func (e *Engine) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		frameStart := e.platform.NowMillis()

		ev, err := e.input.ReadInput(ctx)
		if err != nil {
			// Transient sensor/bus failure: drop this frame's input
			// handling and retry next loop.
			e.logger.Debug("input read failed", "err", err)
			continue
		}
		e.route(ev)

		if e.game.State() == core.StatePlaying {
			before := e.game.State()
			e.game.Update()
			if before == core.StatePlaying && e.game.State() == core.StateGameOver {
				e.logger.Info("game over", "score", e.game.Score(), "food", e.game.FoodEaten())
			}
		}

		if err := e.renderer.RenderGame(
			e.game.Snake(),
			e.game.Food(),
			e.game.Score(),
			e.game.State(),
			e.game.Width(),
			e.game.Height(),
		); err != nil {
			// Degraded but non-fatal: skip pacing, retry next loop.
			e.logger.Debug("render failed", "err", err)
			continue
		}

		// uint32 subtraction stays correct across the millisecond wrap.
		elapsed := e.platform.NowMillis() - frameStart
		if elapsed < e.frameTime {
			e.platform.Delay(ctx, e.frameTime-elapsed)
		}
	}
}

// route applies one input event to the simulation. Direction changes
// are honored only while playing, button A restarts only from game
// over; button B is reserved.
func (e *Engine) route(ev core.InputEvent) {
	switch ev.Kind {
	case core.EventDirection:
		if e.game.State() == core.StatePlaying {
			e.game.SetDirection(ev.Dir)
		}
	case core.EventButtonA:
		if e.game.State() == core.StateGameOver {
			e.game.Reset()
			e.logger.Info("game restarted")
		}
	case core.EventButtonB, core.EventNone:
		// Reserved.
	}
}
