package engine

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/slithertui/slither/internal/core"
)

// scriptedInput replays a fixed sequence of reads, then cancels the
// engine's context so Run returns.
type scriptedInput struct {
	events []scriptStep
	pos    int
	cancel context.CancelFunc
}

type scriptStep struct {
	ev  core.InputEvent
	err error
}

func (s *scriptedInput) ReadInput(_ context.Context) (core.InputEvent, error) {
	if s.pos >= len(s.events) {
		// Cancel and fail the read: the engine skips the iteration and
		// observes the cancelled context at the top of the loop.
		s.cancel()
		return core.InputEvent{}, errors.New("script exhausted")
	}
	step := s.events[s.pos]
	s.pos++
	return step.ev, step.err
}

// fakePlatform is a manual clock: every NowMillis call advances the
// clock by step, and delays are recorded instead of slept.
type fakePlatform struct {
	now    uint32
	step   uint32
	delays []uint32
}

func (p *fakePlatform) NowMillis() uint32 {
	n := p.now
	p.now += p.step
	return n
}

func (p *fakePlatform) Delay(_ context.Context, ms uint32) {
	p.delays = append(p.delays, ms)
}

// recordingRenderer captures every frame and can fail on chosen calls.
type recordingRenderer struct {
	frames  []renderedFrame
	failOn  map[int]bool
	callNum int
}

type renderedFrame struct {
	snakeLen int
	head     core.Position
	score    uint16
	state    core.GameState
}

func (r *recordingRenderer) RenderGame(snake []core.Position, _ core.Position, score uint16, state core.GameState, _, _ uint8) error {
	r.callNum++
	if r.failOn[r.callNum] {
		return errors.New("display bus failure")
	}
	r.frames = append(r.frames, renderedFrame{
		snakeLen: len(snake),
		head:     snake[0],
		score:    score,
		state:    state,
	})
	return nil
}

func newTestEngine(t *testing.T, steps []scriptStep, platform *fakePlatform, renderer *recordingRenderer) (*Engine, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	input := &scriptedInput{events: steps, cancel: cancel}
	logger := log.New(io.Discard)
	return New(input, platform, renderer, 16, 16, logger), ctx
}

func TestRunAdvancesAndRenders(t *testing.T) {
	platform := &fakePlatform{}
	renderer := &recordingRenderer{}
	steps := []scriptStep{
		{ev: core.InputEvent{}},
		{ev: core.DirectionEvent(core.DirDown)},
		{ev: core.InputEvent{}},
	}
	e, ctx := newTestEngine(t, steps, platform, renderer)

	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(renderer.frames) != 3 {
		t.Fatalf("rendered %d frames, expected 3", len(renderer.frames))
	}

	// Head starts at (8,8); one right step, then two down steps after
	// the direction event.
	wantHeads := []core.Position{core.Pos(9, 8), core.Pos(9, 9), core.Pos(9, 10)}
	for i, want := range wantHeads {
		if renderer.frames[i].head != want {
			t.Errorf("frame %d head = %v, expected %v", i, renderer.frames[i].head, want)
		}
	}
}

func TestInputErrorSkipsIteration(t *testing.T) {
	platform := &fakePlatform{}
	renderer := &recordingRenderer{}
	steps := []scriptStep{
		{ev: core.InputEvent{}},
		{err: errors.New("bus glitch")},
		{ev: core.InputEvent{}},
	}
	e, ctx := newTestEngine(t, steps, platform, renderer)

	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The faulted iteration neither updated nor rendered: two frames,
	// and the head advanced exactly twice.
	if len(renderer.frames) != 2 {
		t.Fatalf("rendered %d frames, expected 2", len(renderer.frames))
	}
	if got := renderer.frames[1].head; got != core.Pos(10, 8) {
		t.Errorf("head after error frame = %v, expected (10,8)", got)
	}
}

func TestRenderErrorSkipsPacing(t *testing.T) {
	platform := &fakePlatform{}
	renderer := &recordingRenderer{failOn: map[int]bool{2: true}}
	steps := []scriptStep{
		{ev: core.InputEvent{}},
		{ev: core.InputEvent{}},
		{ev: core.InputEvent{}},
	}
	e, ctx := newTestEngine(t, steps, platform, renderer)

	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Three iterations, one failed render: two delays only.
	if len(platform.delays) != 2 {
		t.Errorf("recorded %d delays, expected 2", len(platform.delays))
	}
}

func TestFramePacing(t *testing.T) {
	// Instant frames: the full frame budget is slept away.
	platform := &fakePlatform{step: 0}
	renderer := &recordingRenderer{}
	e, ctx := newTestEngine(t, []scriptStep{{ev: core.InputEvent{}}}, platform, renderer)

	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(platform.delays) != 1 || platform.delays[0] != DefaultFrameTimeMillis {
		t.Errorf("delays = %v, expected [%d]", platform.delays, DefaultFrameTimeMillis)
	}

	// Slow frames: elapsed exceeds the budget, no delay at all.
	platform = &fakePlatform{step: 200}
	renderer = &recordingRenderer{}
	e, ctx = newTestEngine(t, []scriptStep{{ev: core.InputEvent{}}}, platform, renderer)

	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(platform.delays) != 0 {
		t.Errorf("slow frame recorded delays %v, expected none", platform.delays)
	}
}

func TestButtonARestartsOnlyFromGameOver(t *testing.T) {
	platform := &fakePlatform{}
	renderer := &recordingRenderer{}

	// Button A while playing must be ignored.
	steps := []scriptStep{
		{ev: core.InputEvent{Kind: core.EventButtonA}},
	}
	e, ctx := newTestEngine(t, steps, platform, renderer)
	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if renderer.frames[0].head != core.Pos(9, 8) {
		t.Errorf("button A while playing disturbed the simulation: %+v", renderer.frames[0])
	}

	// Drive the game into the right wall, then press A.
	nones := make([]scriptStep, 0, 16)
	for i := 0; i < 8; i++ {
		nones = append(nones, scriptStep{ev: core.InputEvent{}})
	}
	nones = append(nones, scriptStep{ev: core.InputEvent{Kind: core.EventButtonA}})

	platform = &fakePlatform{}
	renderer = &recordingRenderer{}
	e, ctx = newTestEngine(t, nones, platform, renderer)
	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	last := renderer.frames[len(renderer.frames)-1]
	if last.state != core.StatePlaying {
		t.Errorf("state after restart = %v, expected playing", last.state)
	}
	// The reset iteration still runs its simulation tick, so the fresh
	// snake has already taken one step right.
	if last.snakeLen != 3 || last.head != core.Pos(9, 8) {
		t.Errorf("restart did not restore the initial layout: %+v", last)
	}

	// Direction events must be dropped while game over.
	prev := renderer.frames[len(renderer.frames)-2]
	if prev.state != core.StateGameOver {
		t.Fatalf("setup: expected a game-over frame before restart, got %+v", prev)
	}
}
