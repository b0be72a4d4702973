package core

import (
	"strings"
	"testing"
)

// checkCells compares the listed positions against expected cells.
func checkCells(t *testing.T, s *Screen, want map[[2]int]Cell) {
	t.Helper()
	for pos, cell := range want {
		if got := s.GetCell(pos[0], pos[1]); got != cell {
			t.Errorf("GetCell(%d, %d) = %+v, expected %+v", pos[0], pos[1], got, cell)
		}
	}
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("NewScreen(6, 3) is %dx%d", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if cell := s.GetCell(x, y); cell != blankCell {
				t.Errorf("New screen cell (%d, %d) = %+v, expected blank", x, y, cell)
			}
		}
	}

	empty := NewScreen(-4, -1)
	if empty.Width() != 0 || empty.Height() != 0 || empty.String() != "" {
		t.Errorf("Negative size should give an empty screen, got %dx%d %q", empty.Width(), empty.Height(), empty.String())
	}
}

func TestScreenSetColored(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"origin", 0, 0, Cell{'A', ColorRed}},
		{"last cell", 4, 2, Cell{'A', ColorRed}},
		{"left of screen", -1, 0, blankCell},
		{"right of screen", 5, 0, blankCell},
		{"above screen", 0, -1, blankCell},
		{"below screen", 0, 3, blankCell},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 3)
			s.SetColored(tc.x, tc.y, 'A', ColorRed)
			if got := s.GetCell(tc.x, tc.y); got != tc.want {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestScreenSetDropsColor(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetColored(1, 0, '@', ColorBrightCyan)
	s.Set(1, 0, '#')

	checkCells(t, s, map[[2]int]Cell{
		{1, 0}: {'#', ColorDefault},
	})
}

func TestScreenDrawTextColoredMultibyte(t *testing.T) {
	s := NewScreen(8, 2)

	// Each rune takes one cell regardless of its UTF-8 length
	s.DrawTextColored(1, 0, "[█░·]", ColorYellow)
	checkCells(t, s, map[[2]int]Cell{
		{0, 0}: blankCell,
		{1, 0}: {'[', ColorYellow},
		{2, 0}: {'█', ColorYellow},
		{3, 0}: {'░', ColorYellow},
		{4, 0}: {'·', ColorYellow},
		{5, 0}: {']', ColorYellow},
		{6, 0}: blankCell,
	})
	if got := s.Row(0); got != " [█░·]  " {
		t.Errorf("Row(0) = %q", got)
	}

	// Clipped on both edges
	s.DrawTextColored(-2, 1, "ab─cdefghij", ColorGreen)
	if got := s.Row(1); got != "─cdefghi" {
		t.Errorf("Row(1) = %q, expected the clipped text", got)
	}
	checkCells(t, s, map[[2]int]Cell{
		{0, 1}: {'─', ColorGreen},
		{7, 1}: {'i', ColorGreen},
	})
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(10, 1)

	// 3 runes, 7 bytes: centered as 3 cells
	s.DrawTextCentered(0, "█A█", ColorMagenta)
	checkCells(t, s, map[[2]int]Cell{
		{2, 0}: blankCell,
		{3, 0}: {'█', ColorMagenta},
		{4, 0}: {'A', ColorMagenta},
		{5, 0}: {'█', ColorMagenta},
		{6, 0}: blankCell,
	})
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 6)
	s.SetColored(3, 2, 'x', ColorRed)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	checkCells(t, s, map[[2]int]Cell{
		{1, 1}: {'┌', ColorGray},
		{5, 1}: {'┐', ColorGray},
		{1, 4}: {'└', ColorGray},
		{5, 4}: {'┘', ColorGray},
		{3, 1}: {'─', ColorGray},
		{3, 4}: {'─', ColorGray},
		{1, 2}: {'│', ColorGray},
		{5, 3}: {'│', ColorGray},
		{3, 2}: {'x', ColorRed}, // interior untouched
		{0, 0}: blankCell,
	})
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, '@', ColorBrightCyan)

	// Partly off screen: only the visible part is filled
	s.DrawRect(NewRect(1, 1, 6, 2), ' ')
	s.DrawRect(NewRect(-1, 4, 2, 1), '#')

	checkCells(t, s, map[[2]int]Cell{
		{1, 1}: blankCell,
		{4, 2}: blankCell,
		{2, 2}: blankCell, // color is reset too
		{0, 4}: {'#', ColorDefault},
		{1, 4}: blankCell,
		{0, 0}: blankCell,
	})
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(3, 1, 10, '─', ColorGray)

	if got := s.Row(1); got != "   ───" {
		t.Errorf("Row(1) = %q", got)
	}
	checkCells(t, s, map[[2]int]Cell{
		{2, 1}: blankCell,
		{5, 1}: {'─', ColorGray},
	})
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	for y := 0; y < 3; y++ {
		s.DrawTextColored(0, y, "XXXX", ColorBlue)
	}

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if cell := s.GetCell(x, y); cell != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenResizeKeepsColors(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hi█", ColorBrightGreen)
	s.SetColored(9, 9, 'z', ColorRed)

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("After resize, dimensions should be 3x2, got %dx%d", s.Width(), s.Height())
	}
	checkCells(t, s, map[[2]int]Cell{
		{2, 0}: {'█', ColorBrightGreen},
	})

	// Cells cut off by shrinking do not come back
	s.Resize(10, 10)
	checkCells(t, s, map[[2]int]Cell{
		{0, 0}: {'H', ColorBrightGreen},
		{9, 9}: blankCell,
	})

	s.Resize(-1, 5)
	if s.Width() != 0 || s.Height() != 5 {
		t.Errorf("Negative width should collapse to 0, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawTextColored(0, 0, "ab", ColorRed)
	s.DrawTextColored(1, 2, "·─·", ColorCyan)

	if got, want := s.String(), "ab  \n    \n ·─·"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if got := s.Row(2); got != " ·─·" {
		t.Errorf("Row(2) = %q", got)
	}
	for _, y := range []int{-1, 3} {
		if got := s.Row(y); got != strings.Repeat(" ", 4) {
			t.Errorf("Row(%d) out of bounds = %q, expected spaces", y, got)
		}
	}
}
