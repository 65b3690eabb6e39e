package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/slithertui/slither/internal/core"
)

// styleCache maps colors to lipgloss styles. Styles are created lazily
// because the death animation produces interpolated colors that cannot
// be enumerated up front. The cache stays small: the fixed palette plus
// at most one entry per animation frame.
var (
	styleMu    sync.Mutex
	styleCache = map[core.Color]lipgloss.Style{
		core.ColorBlack: lipgloss.NewStyle(),
	}
)

func styleFor(c core.Color) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	style, ok := styleCache[c]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		styleCache[c] = style
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
