package input

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/slithertui/slither/internal/core"
)

// Default poller timings. Directions share one cooldown so a held
// joystick produces a steady trickle of events instead of a flood; the
// buttons get longer windows because a restart press bounces harder
// than a direction nudge.
const (
	DefaultPollInterval      = 20 * time.Millisecond
	DefaultDirectionCooldown = 150 * time.Millisecond
	DefaultButtonADebounce   = 200 * time.Millisecond
	DefaultButtonBDebounce   = 100 * time.Millisecond
)

// LineState is one raw sample of the input lines. A true value means
// the line is active (pressed).
type LineState struct {
	Up, Down, Left, Right bool
	ButtonA, ButtonB      bool
}

// LineSampler reads the raw input lines. Errors are transient and skip
// a single sample.
type LineSampler interface {
	Sample() (LineState, error)
}

// Poller samples a LineSampler at a fixed interval, debounces per line
// and posts decoded events into a Pump. It runs for the lifetime of
// the process (until ctx is cancelled).
type Poller struct {
	sampler  LineSampler
	pump     *Pump
	logger   *log.Logger
	interval time.Duration

	dirCooldown time.Duration
	aDebounce   time.Duration
	bDebounce   time.Duration

	lastDir time.Time
	lastA   time.Time
	lastB   time.Time
}

// NewPoller creates a poller with default timings.
func NewPoller(sampler LineSampler, pump *Pump, logger *log.Logger) *Poller {
	if logger == nil {
		logger = log.Default()
	}
	return &Poller{
		sampler:     sampler,
		pump:        pump,
		logger:      logger,
		interval:    DefaultPollInterval,
		dirCooldown: DefaultDirectionCooldown,
		aDebounce:   DefaultButtonADebounce,
		bDebounce:   DefaultButtonBDebounce,
	}
}

// SetTimings overrides the poll interval and debounce windows. Zero
// values keep the current setting.
func (p *Poller) SetTimings(interval, dirCooldown, aDebounce, bDebounce time.Duration) {
	if interval > 0 {
		p.interval = interval
	}
	if dirCooldown > 0 {
		p.dirCooldown = dirCooldown
	}
	if aDebounce > 0 {
		p.aDebounce = aDebounce
	}
	if bDebounce > 0 {
		p.bDebounce = bDebounce
	}
}

// Run samples until ctx is cancelled. Call it in its own goroutine.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			p.step(t)
		}
	}
}

// step processes one sample taken at time t. Split out from Run so
// tests can drive the clock by hand.
func (p *Poller) step(t time.Time) {
	state, err := p.sampler.Sample()
	if err != nil {
		p.logger.Debug("input sample failed", "err", err)
		return
	}

	if t.Sub(p.lastDir) > p.dirCooldown {
		if dir, ok := activeDirection(state); ok {
			p.pump.Post(core.DirectionEvent(dir))
			p.lastDir = t
		}
	}

	if state.ButtonA && t.Sub(p.lastA) > p.aDebounce {
		p.pump.Post(core.InputEvent{Kind: core.EventButtonA})
		p.lastA = t
	}

	if state.ButtonB && t.Sub(p.lastB) > p.bDebounce {
		p.pump.Post(core.InputEvent{Kind: core.EventButtonB})
		p.lastB = t
	}
}

// activeDirection picks the first active direction line in a fixed
// priority order; diagonals resolve to the vertical axis.
func activeDirection(s LineState) (core.Direction, bool) {
	switch {
	case s.Up:
		return core.DirUp, true
	case s.Down:
		return core.DirDown, true
	case s.Left:
		return core.DirLeft, true
	case s.Right:
		return core.DirRight, true
	default:
		return 0, false
	}
}
