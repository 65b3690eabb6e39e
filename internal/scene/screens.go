package scene

import (
	"fmt"

	"github.com/slithertui/slither/internal/core"
)

// screens.go draws the static full-screen states: the border frame and
// the start, pause and game-over cards. Everything goes through the
// Display contract so the same code serves any frontend.

func (s *Scene) screenSize() (int, int) {
	return s.geo.ScreenSize(s.game.Width(), s.game.Height())
}

// drawBorder paints the one-cell white frame around the playfield.
func (s *Scene) drawBorder() error {
	w, h := s.screenSize()

	if err := s.display.DrawRect(0, 0, w, 1, core.ColorWhite); err != nil {
		return err
	}
	if err := s.display.DrawRect(0, h-1, w, 1, core.ColorWhite); err != nil {
		return err
	}
	if err := s.display.DrawRect(0, 0, 1, h, core.ColorWhite); err != nil {
		return err
	}
	return s.display.DrawRect(w-1, 0, 1, h, core.ColorWhite)
}

// drawCentered writes one line of text horizontally centered at row y.
// Text wider than the screen starts at the left edge and clips.
func (s *Scene) drawCentered(text string, y int) error {
	w, _ := s.screenSize()
	x := core.Clamp((w-len(text))/2, 0, w-1)
	return s.display.DrawText(text, x, y, core.ColorWhite)
}

func (s *Scene) drawStartScreen() error {
	_, h := s.screenSize()
	if err := s.drawCentered("SLITHER", h/2-2); err != nil {
		return err
	}
	return s.drawCentered("Press B to Start", h/2)
}

func (s *Scene) drawPauseScreen() error {
	_, h := s.screenSize()
	if err := s.drawCentered("PAUSED", h/2-3); err != nil {
		return err
	}
	if err := s.drawCentered(fmt.Sprintf("Score: %d", s.game.Score()), h/2-1); err != nil {
		return err
	}
	if err := s.drawCentered(fmt.Sprintf("Food: %d", s.game.FoodEaten()), h/2); err != nil {
		return err
	}
	return s.drawCentered("Press B to Resume", h/2+2)
}

func (s *Scene) drawGameOverScreen() error {
	_, h := s.screenSize()
	if err := s.drawCentered("GAME OVER", h/2-3); err != nil {
		return err
	}
	if err := s.drawCentered(fmt.Sprintf("Final Score: %d", s.game.Score()), h/2-1); err != nil {
		return err
	}
	if err := s.drawCentered(fmt.Sprintf("Food Eaten: %d", s.game.FoodEaten()), h/2); err != nil {
		return err
	}
	return s.drawCentered("Press A to Restart", h/2+2)
}

// clearAndFrame wipes the display and redraws the border, the common
// prologue of every full-screen transition.
func (s *Scene) clearAndFrame() error {
	if err := s.display.Clear(core.ColorBlack); err != nil {
		return err
	}
	return s.drawBorder()
}
