// Package scene implements the presentation layer above the raw
// simulation: the waiting/playing/paused/death-animation/blinking/
// game-over state machine, the screens it draws, and the incremental
// dirty-rectangle redraw that avoids full-frame flicker. It draws
// through the core.Display contract and is frontend-agnostic.
package scene

import "github.com/slithertui/slither/internal/core"

// Geometry maps grid cells to display cells. Terminal cells are about
// twice as tall as wide, so a grid cell defaults to two display cells
// across, and a one-cell border frames the playfield.
type Geometry struct {
	CellW int
	OffX  int
	OffY  int
}

// DefaultGeometry returns the standard 2-wide cell with a border inset.
func DefaultGeometry() Geometry {
	return Geometry{CellW: 2, OffX: 1, OffY: 1}
}

// CellRect returns the display rectangle covering grid cell p.
func (g Geometry) CellRect(p core.Position) (x, y, w, h int) {
	return g.OffX + int(p.X)*g.CellW, g.OffY + int(p.Y), g.CellW, 1
}

// ScreenSize returns the display dimensions needed for a grid,
// including the border.
func (g Geometry) ScreenSize(gridW, gridH uint8) (w, h int) {
	return int(gridW)*g.CellW + 2*g.OffX, int(gridH) + 2*g.OffY
}
