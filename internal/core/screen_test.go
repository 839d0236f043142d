package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, 5)
	if s.Width() != 0 || s.String() != "" {
		t.Errorf("negative width should give an empty screen, got %dx%d %q", s.Width(), s.Height(), s.String())
	}
}

func TestScreenSetGetClipping(t *testing.T) {
	s := NewScreen(5, 3)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"origin", 0, 0, '@'},
		{"last cell", 4, 2, '@'},
		{"left of screen", -1, 0, ' '},
		{"right of screen", 5, 0, ' '},
		{"above screen", 0, -1, ' '},
		{"below screen", 0, 3, ' '},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.Clear()
			s.SetColor(tc.x, tc.y, '@', ColorRed)
			if got := s.Get(tc.x, tc.y); got != tc.want {
				t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawTextColor(0, 0, "abc", ColorGreen)
	s.Clear()

	if c := s.GetCell(1, 0); c != blank {
		t.Errorf("cell after Clear = %+v, expected blank", c)
	}
}

func TestScreenDrawTextClipsBothEdges(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(-2, 0, "xxhello")
	if got := s.String(); got != "hello " {
		t.Errorf("left clip = %q", got)
	}

	s.Clear()
	s.DrawTextColor(3, 0, "→→→→", ColorYellow)
	if got := s.String(); got != "   →→→" {
		t.Errorf("right clip = %q", got)
	}
	if c := s.GetCell(5, 0); c.Color != ColorYellow {
		t.Errorf("color = %d, expected %d", c.Color, ColorYellow)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRectColor(NewRect(1, 1, 3, 2), '~', ColorBlue)

	want := "     \n ~~~ \n ~~~ \n     "
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}

	s.DrawRect(NewRect(0, 0, 0, 4), '#')
	if strings.ContainsRune(s.String(), '#') {
		t.Error("empty rect should draw nothing")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(0, 0, 1, 3))
	if got := s.String(); strings.TrimSpace(got) != "" {
		t.Errorf("one-column box should draw nothing, got %q", got)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")
	s.DrawText(0, 2, "ijkl")

	s.Resize(2, 2)
	if got := s.String(); got != "ab\nef" {
		t.Errorf("shrink = %q", got)
	}

	s.Resize(3, 3)
	if got := s.String(); got != "ab \nef \n   " {
		t.Errorf("grow = %q", got)
	}
}

func TestScreenColorCells(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetColor(0, 0, 'A', ColorRed)
	s.Set(1, 0, 'B')

	if c := s.GetCell(0, 0); c.Rune != 'A' || c.Color != ColorRed {
		t.Errorf("cell 0 = %+v", c)
	}
	if c := s.GetCell(1, 0); c.Color != ColorDefault {
		t.Errorf("Set should use the default color, got %d", c.Color)
	}
	if c := s.GetCell(9, 9); c != blank {
		t.Errorf("out of bounds cell = %+v, expected blank", c)
	}
}

func TestColorANSI(t *testing.T) {
	if _, ok := ColorDefault.ANSI(); ok {
		t.Error("default color should have no ANSI code")
	}
	if _, ok := Color(200).ANSI(); ok {
		t.Error("unknown color should have no ANSI code")
	}
	if code, ok := ColorOrange.ANSI(); !ok || code != "208" {
		t.Errorf("orange = %q, %v", code, ok)
	}
	for _, c := range Colors() {
		if _, ok := c.ANSI(); !ok {
			t.Errorf("Colors() returned %d without a code", c)
		}
	}
	if n := len(Colors()); n != int(ColorGray) {
		t.Errorf("len(Colors()) = %d, expected %d", n, ColorGray)
	}
}
