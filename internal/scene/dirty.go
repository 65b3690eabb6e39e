package scene

import "github.com/slithertui/slither/internal/core"

// foodSentinel is an out-of-range position stored as "previous food"
// to force a food repaint on the next diff.
var foodSentinel = core.Pos(255, 255)

// DirtyRect performs the incremental frame diff: given the previous
// frame's snake cells and food, it erases only what vanished and then
// repaints the current occupancy. Repainting unchanged snake cells is
// accepted; the win is never clearing the whole playfield.
//
// Membership tests are linear scans, O(n²) per frame over the snake
// length, which is fine at the 64-segment cap.
type DirtyRect struct {
	geo      Geometry
	prev     []core.Position
	prevFood core.Position
}

// NewDirtyRect creates a diff whose first Redraw paints everything.
func NewDirtyRect(geo Geometry) *DirtyRect {
	return &DirtyRect{geo: geo, prevFood: foodSentinel}
}

// Prime records the given state as already drawn, so the next Redraw
// only paints changes relative to it.
func (d *DirtyRect) Prime(snake []core.Position, food core.Position) {
	d.prev = append(d.prev[:0], snake...)
	d.prevFood = food
}

// Invalidate forgets the previous frame entirely: the next Redraw
// erases nothing and repaints every current cell, including the food.
// Used after the screen is cleared behind our back (pause overlays).
func (d *DirtyRect) Invalidate() {
	d.prev = d.prev[:0]
	d.prevFood = foodSentinel
}

// Redraw emits the minimal erase set plus the current occupancy onto
// dpy, then stores the current state as "previous" for the next diff.
func (d *DirtyRect) Redraw(dpy core.Display, snake []core.Position, food core.Position) error {
	// Erase snake cells that are no longer occupied.
	for _, old := range d.prev {
		if !contains(snake, old) {
			if err := d.fill(dpy, old, core.ColorBlack); err != nil {
				return err
			}
		}
	}

	// Erase the old food cell if the food moved.
	if d.prevFood != food {
		if err := d.fill(dpy, d.prevFood, core.ColorBlack); err != nil {
			return err
		}
	}

	// Paint current occupancy. Unchanged cells are repainted; that is
	// deliberate simplicity, not an oversight.
	for _, seg := range snake {
		if err := d.fill(dpy, seg, core.ColorGreen); err != nil {
			return err
		}
	}
	if err := d.fill(dpy, food, core.ColorRed); err != nil {
		return err
	}

	d.Prime(snake, food)
	return nil
}

func (d *DirtyRect) fill(dpy core.Display, p core.Position, c core.Color) error {
	x, y, w, h := d.geo.CellRect(p)
	return dpy.DrawRect(x, y, w, h, c)
}

func contains(ps []core.Position, p core.Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
