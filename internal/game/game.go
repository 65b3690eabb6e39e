// Package game implements the snake simulation: deterministic movement,
// collision detection and pseudo-random food placement on a fixed grid.
// It is pure state-transition logic with no knowledge of input devices,
// timing or rendering; those live behind the contracts in internal/core.
package game

import (
	"fmt"

	"github.com/slithertui/slither/internal/core"
)

// MaxSnakeLen bounds the snake body. The grid is always larger than
// this in practice, which is what keeps food respawn terminating.
const MaxSnakeLen = 64

// MinGrid is the smallest legal grid dimension. On a 4-wide grid the
// centered head sits at x=2 and the tail lands exactly on the left
// edge; any narrower and the tail underflows to x=255.
const MinGrid = 4

// DefaultSeed is the power-on seed of the xorshift generator.
const DefaultSeed uint32 = 0xACE1

// Game owns the whole simulation state. It is created once with fixed
// grid dimensions; Reset reinitializes the layout in place. Exactly one
// goroutine may mutate a Game.
type Game struct {
	segments [MaxSnakeLen]core.Position
	length   int

	food     core.Position
	dir      core.Direction
	nextDir  core.Direction
	state    core.GameState
	score    uint16
	foodEat  uint16
	width    uint8
	height   uint8
	rngState uint32
}

// New creates a game on a width x height grid: a 3-segment snake
// horizontally centered, heading right, with food already spawned.
// Both dimensions must be at least MinGrid or the initial segment
// coordinates would underflow; smaller grids are a programming error
// and panic.
func New(width, height uint8) *Game {
	if width < MinGrid || height < MinGrid {
		panic(fmt.Sprintf("game: grid %dx%d below %dx%d minimum", width, height, MinGrid, MinGrid))
	}

	g := &Game{
		width:    width,
		height:   height,
		rngState: DefaultSeed,
	}
	g.layout()
	g.spawnFood()
	return g
}

// layout places the initial snake and resets counters. The RNG state is
// deliberately left alone so repeated restarts keep walking the same
// pseudo-random sequence instead of replaying the same food positions.
func (g *Game) layout() {
	startX := g.width / 2
	startY := g.height / 2

	g.segments[0] = core.Pos(startX, startY)
	g.segments[1] = core.Pos(startX-1, startY)
	g.segments[2] = core.Pos(startX-2, startY)
	g.length = 3

	g.dir = core.DirRight
	g.nextDir = core.DirRight
	g.state = core.StatePlaying
	g.score = 0
	g.foodEat = 0
}

// Reset returns the game to the initial layout in place, keeping grid
// dimensions and RNG state, then spawns fresh food.
func (g *Game) Reset() {
	g.layout()
	g.spawnFood()
}

// Seed overrides the RNG state. Meant for process start (reproducible
// runs, replay); restarts never reseed.
func (g *Game) Seed(s uint32) {
	if s == 0 {
		s = DefaultSeed
	}
	g.rngState = s
}

// RNGState returns the current RNG state. Capturing it before a Reset
// and feeding it back through Seed reproduces the run exactly, which is
// what the session journal relies on.
func (g *Game) RNGState() uint32 {
	return g.rngState
}

// SetDirection queues a direction change for the next tick. A change to
// the exact opposite of the current direction is silently ignored: the
// snake cannot reverse through its own neck, and that is a rule, not an
// error. The queued direction is committed at the start of the next
// Update, so two changes within one tick cannot combine into a reversal.
func (g *Game) SetDirection(d core.Direction) {
	if d != g.dir.Opposite() {
		g.nextDir = d
	}
}

// Update advances the simulation one tick. It is a no-op unless the
// game is playing. On wall or self collision the state flips to
// GameOver and nothing else is mutated this tick.
func (g *Game) Update() {
	if g.state != core.StatePlaying {
		return
	}

	g.dir = g.nextDir

	// Step the head with wrapping uint8 arithmetic. The wrap is only a
	// boundary detector: an underflow lands >= width/height and is
	// caught by the wall check, the snake never wraps around the grid.
	head := g.segments[0]
	var newHead core.Position
	switch g.dir {
	case core.DirUp:
		newHead = core.Pos(head.X, head.Y-1)
	case core.DirDown:
		newHead = core.Pos(head.X, head.Y+1)
	case core.DirLeft:
		newHead = core.Pos(head.X-1, head.Y)
	case core.DirRight:
		newHead = core.Pos(head.X+1, head.Y)
	}

	if newHead.X >= g.width || newHead.Y >= g.height {
		g.state = core.StateGameOver
		return
	}

	// The tail has not been removed yet, so stepping onto the current
	// tail cell also ends the game.
	for i := 0; i < g.length; i++ {
		if g.segments[i] == newHead {
			g.state = core.StateGameOver
			return
		}
	}

	ateFood := newHead == g.food

	g.insertHead(newHead)

	if ateFood {
		g.score += 10
		g.foodEat++
		g.spawnFood()
	} else {
		g.length--
	}
}

// insertHead shifts the body down one slot and writes the new head at
// index 0. Overflowing MaxSnakeLen is a contract violation: valid grids
// cannot feed the snake that long before it collides with itself.
func (g *Game) insertHead(p core.Position) {
	if g.length >= MaxSnakeLen {
		panic("game: snake exceeded fixed capacity")
	}
	copy(g.segments[1:g.length+1], g.segments[:g.length])
	g.segments[0] = p
	g.length++
}

// spawnFood rejection-samples grid cells until one free of the snake is
// found. The loop terminates as long as the snake leaves at least one
// free cell; the MaxSnakeLen cap keeps that true on any grid with more
// than MaxSnakeLen cells.
func (g *Game) spawnFood() {
	for {
		x := uint8(g.nextRandom() % uint32(g.width))
		y := uint8(g.nextRandom() % uint32(g.height))
		candidate := core.Pos(x, y)

		if !g.occupied(candidate) {
			g.food = candidate
			return
		}
	}
}

func (g *Game) occupied(p core.Position) bool {
	for i := 0; i < g.length; i++ {
		if g.segments[i] == p {
			return true
		}
	}
	return false
}

// nextRandom steps the xorshift generator (13/17/5 variant).
func (g *Game) nextRandom() uint32 {
	g.rngState ^= g.rngState << 13
	g.rngState ^= g.rngState >> 17
	g.rngState ^= g.rngState << 5
	return g.rngState
}

// Snake returns the live body segments, head first. The slice aliases
// internal storage and is valid until the next Update or Reset.
func (g *Game) Snake() []core.Position {
	return g.segments[:g.length]
}

// Food returns the current food position.
func (g *Game) Food() core.Position {
	return g.food
}

// Score returns the current score.
func (g *Game) Score() uint16 {
	return g.score
}

// FoodEaten returns how many food items were eaten since the last reset.
func (g *Game) FoodEaten() uint16 {
	return g.foodEat
}

// State returns the simulation state.
func (g *Game) State() core.GameState {
	return g.state
}

// Dir returns the committed movement direction.
func (g *Game) Dir() core.Direction {
	return g.dir
}

// Width returns the grid width.
func (g *Game) Width() uint8 {
	return g.width
}

// Height returns the grid height.
func (g *Game) Height() uint8 {
	return g.height
}
