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
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(0, 0, 4, 3), '#', ColorWhite)
	s.Clear()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("After Clear, expected blank screen, got %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(2, 1, "héllo", ColorYellow)

	if got := strings.Split(s.String(), "\n")[1]; got != "  héllo   " {
		t.Errorf("Row 1 = %q, expected %q", got, "  héllo   ")
	}
	if s.GetCell(3, 1).Color != ColorYellow {
		t.Error("Text should carry its color")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc", ColorDefault)
	if s.Get(9, 0) != 'b' {
		t.Errorf("Get(9, 0) = %q, expected 'b'", s.Get(9, 0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorDefault)

	expected := "┌───┐\n│   │\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestScreenDrawDisc(t *testing.T) {
	s := NewScreen(20, 10)
	s.DrawDisc(10, 5, 3, 'o', ColorOrange)

	if s.Get(10, 5) != 'o' {
		t.Error("Disc center should be filled")
	}
	if s.Get(0, 0) != ' ' || s.Get(19, 9) != ' ' {
		t.Error("Disc should not reach the corners")
	}

	s.Clear()
	s.DrawDisc(3, 3, 0, '*', ColorDefault)
	if s.Get(3, 3) != '*' {
		t.Error("Zero-radius disc should draw a single cell")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'X')
	s.Resize(20, 8)

	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("Resize: got %dx%d, expected 20x8", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should discard old content")
	}
	if len(strings.Split(s.String(), "\n")) != 8 {
		t.Error("String() should have one line per row")
	}

	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 || s.String() != "" {
		t.Error("Negative sizes should clamp to an empty screen")
	}
}

func TestScreenDrawMessageBox(t *testing.T) {
	s := NewScreen(30, 9)
	s.DrawMessageBox("GAME OVER", ColorRed, "press r")

	rows := strings.Split(s.String(), "\n")
	if !strings.Contains(rows[3], "GAME OVER") {
		t.Errorf("Title row = %q, expected GAME OVER", rows[3])
	}
	if !strings.Contains(rows[5], "press r") {
		t.Errorf("Line row = %q, expected subtitle", rows[5])
	}
	if !strings.Contains(rows[2], "┌") || !strings.Contains(rows[6], "└") {
		t.Errorf("Box frame missing:\n%s", s.String())
	}
}
