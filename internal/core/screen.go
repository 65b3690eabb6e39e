package core

import (
	"strings"
)

// Cell is one screen cell: a rune plus its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D colored character buffer. It decouples drawing from
// the terminal: the scene and renderers draw cells, the platform layer
// converts the buffer to styled output once per frame.
//
// Screen implements the Display contract: Clear fills the buffer,
// DrawRect paints solid blocks, DrawText writes colored runes and
// Update is a no-op because the buffer is flushed by the frontend.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.reset()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

func (s *Screen) reset() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorWhite}
		}
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.reset()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Set places a rune at the given position in the given color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// GetCell returns the cell at the given position.
// Returns a blank white cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorWhite}
	}
	return s.cells[y][x]
}

// Clear fills the entire screen with spaces in the given color.
func (s *Screen) Clear(c Color) error {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: c}
		}
	}
	return nil
}

// DrawRect fills a rectangular area with solid blocks of the given
// color. Cells outside the screen are clipped.
func (s *Screen) DrawRect(x, y, w, h int, c Color) error {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			s.Set(xx, yy, '█', c)
		}
	}
	return nil
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond the screen are clipped.
func (s *Screen) DrawText(text string, x, y int, c Color) error {
	for i, r := range text {
		s.Set(x+i, y, r, c)
	}
	return nil
}

// Update flushes the display. The buffer is pulled by the frontend each
// frame, so there is nothing to do here.
func (s *Screen) Update() error {
	return nil
}

// String converts the screen buffer to a plain string, one row per
// line, dropping colors. Used by tests and the replay command.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
