package core

import "fmt"

// Color is a 24-bit RGB color. Frontends translate it to whatever the
// target supports (true-color ANSI, tcell colors).
type Color struct {
	R, G, B uint8
}

// Palette used by the game screens and animations.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorGreen = Color{0, 255, 0}
	ColorRed   = Color{255, 0, 0}
	ColorBrown = Color{139, 69, 19}
)

// Hex returns the color as a #rrggbb string for lipgloss.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
