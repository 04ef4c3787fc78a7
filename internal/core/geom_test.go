package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCoordDisplay(t *testing.T) {
	tests := []struct {
		c        Coord
		internal string
		display  string
	}{
		{At(0, 0), "(0,0)", "(1,1)"},
		{At(2, 1), "(2,1)", "(2,3)"},
		{At(0, 4), "(0,4)", "(5,1)"},
	}

	for _, tc := range tests {
		if got := tc.c.String(); got != tc.internal {
			t.Errorf("String() = %q, expected %q", got, tc.internal)
		}
		if got := tc.c.Display(); got != tc.display {
			t.Errorf("Display() = %q, expected %q", got, tc.display)
		}
	}
}

func TestCoordAdd(t *testing.T) {
	c := At(3, 4).Add(-1, 2)
	if c != At(2, 6) {
		t.Errorf("Add(-1, 2) = %v, expected (2,6)", c)
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("bright_cyan"); !ok || c != ColorBrightCyan {
		t.Errorf("ParseColor(bright_cyan) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("ultraviolet"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}
