package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/slithertui/slither/internal/core"
	"github.com/slithertui/slither/internal/scene"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSnake  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer draws whole frames onto a tcell screen. Unlike the diffing
// playfield renderer it repaints everything each frame; tcell's own
// cell buffer keeps the terminal writes small.
type Renderer struct {
	screen tcell.Screen
	geo    scene.Geometry
}

// NewRenderer creates a renderer for the given screen and geometry.
func NewRenderer(screen tcell.Screen, geo scene.Geometry) *Renderer {
	return &Renderer{screen: screen, geo: geo}
}

// RenderGame implements core.Renderer.
func (r *Renderer) RenderGame(snake []core.Position, food core.Position, score uint16, state core.GameState, gridW, gridH uint8) error {
	r.screen.Clear()

	w, h := r.geo.ScreenSize(gridW, gridH)
	r.drawBorder(w, h)

	for _, seg := range snake {
		r.fillCell(seg, styleSnake)
	}
	r.fillCell(food, styleFood)

	r.drawText(0, h, fmt.Sprintf("Score: %d", score), styleText)

	if state == core.StateGameOver {
		// Clamp so the message starts inside the playfield on grids
		// narrower than the text; tcell clips the overflow.
		msg := "GAME OVER - R restarts, Q quits"
		r.drawText(core.Clamp((w-len(msg))/2, 0, w-1), h/2, msg, styleText)
	}

	r.screen.Show()
	return nil
}

// drawBorder frames the playfield.
func (r *Renderer) drawBorder(w, h int) {
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, '█', nil, styleBorder)
		r.screen.SetContent(x, h-1, '█', nil, styleBorder)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, '█', nil, styleBorder)
		r.screen.SetContent(w-1, y, '█', nil, styleBorder)
	}
}

// fillCell paints one grid cell.
func (r *Renderer) fillCell(p core.Position, style tcell.Style) {
	x, y, cw, ch := r.geo.CellRect(p)
	for dy := 0; dy < ch; dy++ {
		for dx := 0; dx < cw; dx++ {
			r.screen.SetContent(x+dx, y+dy, '█', nil, style)
		}
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
