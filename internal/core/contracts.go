package core

import "context"

// Input produces decoded input events. Implementations may block until
// an event arrives or return an event with Kind EventNone immediately;
// callers treat errors as transient and skip input handling for the
// current frame.
type Input interface {
	ReadInput(ctx context.Context) (InputEvent, error)
}

// Platform supplies the timing source for frame pacing. NowMillis is
// monotonic and wraps at the 32-bit boundary; frame-time arithmetic is
// done in uint32 so the wrap is harmless. Delay suspends the caller for
// at least ms milliseconds without blocking other goroutines.
type Platform interface {
	NowMillis() uint32
	Delay(ctx context.Context, ms uint32)
}

// Renderer draws one complete simulation snapshot. Implementations must
// be idempotent for identical arguments; the engine may call it with an
// unchanged snapshot every frame.
type Renderer interface {
	RenderGame(snake []Position, food Position, score uint16, state GameState, gridW, gridH uint8) error
}

// Display is the low-level drawing surface consumed by renderer
// implementations and by the presentation scene. Coordinates are in
// display cells, not grid cells. Each operation is independently
// fallible; Update flushes buffered output.
type Display interface {
	Clear(c Color) error
	DrawRect(x, y, w, h int, c Color) error
	DrawText(text string, x, y int, c Color) error
	Update() error
}
