package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir, want Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.want {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.dir, got, tc.want)
		}
		// Opposite is an involution
		if got := tc.dir.Opposite().Opposite(); got != tc.dir {
			t.Errorf("%v.Opposite().Opposite() = %v", tc.dir, got)
		}
	}
}

func TestInputEventString(t *testing.T) {
	tests := []struct {
		ev   InputEvent
		want string
	}{
		{DirectionEvent(DirUp), "dir:up"},
		{InputEvent{Kind: EventButtonA}, "button_a"},
		{InputEvent{Kind: EventButtonB}, "button_b"},
		{InputEvent{}, "none"},
	}

	for _, tc := range tests {
		if got := tc.ev.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorBrown.Hex(); got != "#8b4513" {
		t.Errorf("brown hex = %q, expected #8b4513", got)
	}
	if got := ColorBlack.Hex(); got != "#000000" {
		t.Errorf("black hex = %q, expected #000000", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.want)
		}
	}
}
