package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X', ColorGreen)
	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' {
		t.Errorf("GetCell(3,2).Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell(3,2).Color = %v, expected green", cell.Color)
	}

	// Out of bounds writes are ignored, reads return blanks
	s.Set(-1, 0, 'Y', ColorRed)
	s.Set(10, 0, 'Y', ColorRed)
	s.Set(0, 5, 'Y', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %q, expected space", got.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 1, '#', ColorWhite)

	if err := s.Clear(ColorBlack); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' {
				t.Errorf("cell (%d,%d) = %q after Clear, expected space", x, y, c.Rune)
			}
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(8, 4)
	if err := s.DrawRect(2, 1, 3, 2, ColorRed); err != nil {
		t.Fatalf("DrawRect: %v", err)
	}

	for y := 1; y < 3; y++ {
		for x := 2; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != '█' || c.Color != ColorRed {
				t.Errorf("cell (%d,%d) = %+v, expected red block", x, y, c)
			}
		}
	}
	if c := s.GetCell(1, 1); c.Rune != ' ' {
		t.Errorf("cell outside rect was painted: %+v", c)
	}

	// Clipped rect must not panic
	if err := s.DrawRect(6, 3, 10, 10, ColorGreen); err != nil {
		t.Fatalf("clipped DrawRect: %v", err)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	if err := s.DrawText("hello", 2, 1, ColorWhite); err != nil {
		t.Fatalf("DrawText: %v", err)
	}

	if !strings.Contains(s.String(), "hello") {
		t.Errorf("screen missing text:\n%s", s.String())
	}

	// Text running off the right edge is clipped
	if err := s.DrawText("overflowing", 7, 0, ColorWhite); err != nil {
		t.Fatalf("clipped DrawText: %v", err)
	}
	if got := s.GetCell(9, 0).Rune; got != 'e' {
		t.Errorf("last visible rune = %q, expected 'e'", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, '@', ColorGreen)

	s.Resize(8, 6)
	if s.Width() != 8 || s.Height() != 6 {
		t.Fatalf("size after grow = %dx%d, expected 8x6", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != '@' {
		t.Errorf("content lost on grow: %+v", c)
	}

	s.Resize(3, 3)
	if c := s.GetCell(2, 2); c.Rune != '@' {
		t.Errorf("content lost on shrink: %+v", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a', ColorWhite)
	s.Set(2, 1, 'b', ColorWhite)

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
