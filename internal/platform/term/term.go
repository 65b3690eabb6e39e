// Package term runs the fixed-rate engine loop directly against a
// tcell terminal screen: polled keyboard input feeding the event pump,
// a wall-clock platform and a full-frame renderer. It is the plain
// alternative to the Bubble Tea front end, with no presentation state
// machine: the simulation renders as-is and game over is a static card.
package term

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/slithertui/slither/internal/config"
	"github.com/slithertui/slither/internal/core"
	"github.com/slithertui/slither/internal/engine"
	"github.com/slithertui/slither/internal/input"
	"github.com/slithertui/slither/internal/scene"
)

// Clock is the wall-clock platform for the engine loop.
type Clock struct {
	start time.Time
}

// NewClock creates a clock anchored at the current instant.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
// The value wraps after about 49 days, which the engine's elapsed-time
// subtraction handles.
func (c *Clock) NowMillis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// Delay sleeps for the given number of milliseconds or until ctx is
// cancelled, whichever comes first.
func (c *Clock) Delay(ctx context.Context, ms uint32) {
	timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// mapKeyEvent translates a tcell key event to an input event.
// Returns the event (Kind may be EventNone) and whether it's a quit request.
func mapKeyEvent(ev *tcell.EventKey) (core.InputEvent, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.InputEvent{}, true
	case tcell.KeyUp:
		return core.DirectionEvent(core.DirUp), false
	case tcell.KeyDown:
		return core.DirectionEvent(core.DirDown), false
	case tcell.KeyLeft:
		return core.DirectionEvent(core.DirLeft), false
	case tcell.KeyRight:
		return core.DirectionEvent(core.DirRight), false
	case tcell.KeyEscape:
		return core.InputEvent{Kind: core.EventButtonA}, false
	case tcell.KeyEnter:
		return core.InputEvent{Kind: core.EventButtonB}, false
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			return core.InputEvent{}, true
		case 'w':
			return core.DirectionEvent(core.DirUp), false
		case 's':
			return core.DirectionEvent(core.DirDown), false
		case 'a':
			return core.DirectionEvent(core.DirLeft), false
		case 'd':
			return core.DirectionEvent(core.DirRight), false
		case 'r':
			return core.InputEvent{Kind: core.EventButtonA}, false
		case ' ', 'p':
			return core.InputEvent{Kind: core.EventButtonB}, false
		}
	}

	return core.InputEvent{}, false
}

// Run executes the engine loop on a tcell screen until the user quits.
func Run(cfg config.Config, seed uint32, logger *log.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = log.Default()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	pump := input.NewPump(cfg.Input.QueueCapacity)
	renderer := NewRenderer(screen, scene.DefaultGeometry())

	eng := engine.New(pump, NewClock(), renderer, cfg.Grid.Width, cfg.Grid.Height, logger)
	eng.SetFrameTime(cfg.Timing.FrameTimeMs)
	if seed != 0 {
		eng.Game().Seed(seed)
		eng.Game().Reset()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// PollEvent returns nil once the screen is finalized, which ends
	// this goroutine on shutdown.
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				iev, isQuit := mapKeyEvent(ev)
				if isQuit {
					cancel()
					return
				}
				if iev.Kind != core.EventNone && !pump.Post(iev) {
					logger.Debug("input queue full, event dropped", "event", iev.String())
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	return eng.Run(ctx)
}
