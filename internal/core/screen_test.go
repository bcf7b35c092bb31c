package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	s.SetCell(4, 2, 'Y', ColorGreen)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.Color != ColorGreen {
		t.Errorf("GetCell(4, 2) = %+v, expected {Y ColorGreen}", cell)
	}

	// Out of bounds is a no-op / returns space
	s.Set(-1, 0, 'Z')
	s.Set(10, 0, 'Z')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', ColorRed)

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear() left %+v at (1, 1)", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize() dims = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("Resize() should preserve content, Get(2, 2) = %q", got)
	}

	// Shrink below the content
	s.Resize(2, 2)
	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("shrunk screen should return space out of bounds, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place characters")
	}

	// Clipped text must not panic
	s.DrawText(8, 1, "long text")
	if s.Get(9, 1) != 'o' {
		t.Errorf("clipped DrawText: Get(9, 1) = %q, expected 'o'", s.Get(9, 1))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	expected := "abc\ndef"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "wxyz")

	if got := s.Row(0); got != "wxyz" {
		t.Errorf("Row(0) = %q, expected %q", got, "wxyz")
	}
	if got := s.Row(5); got != strings.Repeat(" ", 4) {
		t.Errorf("Row out of bounds = %q, expected spaces", got)
	}
}
