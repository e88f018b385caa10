package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorHazard)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorHazard {
		t.Errorf("GetCell(5, 5) = %+v, expected X/%d", cell, ColorHazard)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(1, 1, '#', ColorSolid)
	s.Clear()

	if got := s.GetCell(1, 1); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("Clear() left %+v at (1, 1)", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(2, 1, "drop", ColorHUD)

	if got := s.Row(1); !strings.HasPrefix(got, "  drop") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  drop")
	}
	if s.GetCell(3, 1).Color != ColorHUD {
		t.Error("DrawTextColored should color every rune")
	}

	s.DrawTextCentered(0, "ab")
	if s.Get(9, 0) != 'a' || s.Get(10, 0) != 'b' {
		t.Errorf("DrawTextCentered placed text at wrong column: %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5))

	corners := map[[2]int]rune{
		{0, 0}: '┌',
		{9, 0}: '┐',
		{0, 4}: '└',
		{9, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("Get(%d, %d) = %q, expected %q", pos[0], pos[1], got, want)
		}
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox should draw edges")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(1, 1, 'X')
	s.Resize(5, 4)

	if s.Width() != 5 || s.Height() != 4 {
		t.Errorf("Resize() -> %dx%d, expected 5x4", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}
	if lines := strings.Split(s.String(), "\n"); len(lines) != 4 {
		t.Errorf("String() has %d lines, expected 4", len(lines))
	}
}
