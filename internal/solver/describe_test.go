package solver

import (
	"testing"

	"github.com/vovakirdan/icemaze/internal/core"
)

func TestDescribe(t *testing.T) {
	path := []core.Coord{
		core.At(0, 0),
		core.At(0, 1),
		core.At(2, 1),
		core.At(2, 0),
		core.At(1, 0),
	}

	steps := Describe(path)
	if len(steps) != len(path) {
		t.Fatalf("Describe() returned %d steps, expected %d", len(steps), len(path))
	}

	if !steps[0].Start || steps[0].Index != 1 {
		t.Errorf("first step = %+v, expected start with index 1", steps[0])
	}

	wantDirs := []Dir{Right, Down, Left, Up}
	for i, want := range wantDirs {
		s := steps[i+1]
		if s.Start {
			t.Errorf("step %d should not be a start step", s.Index)
		}
		if s.Dir != want {
			t.Errorf("step %d Dir = %s, expected %s", s.Index, s.Dir, want)
		}
	}

	for i, s := range steps {
		if s.Final != (i == len(steps)-1) {
			t.Errorf("step %d Final = %v", s.Index, s.Final)
		}
	}
}

func TestDescribeEmpty(t *testing.T) {
	if steps := Describe(nil); len(steps) != 0 {
		t.Errorf("Describe(nil) = %v, expected no steps", steps)
	}
}

func TestDirBasics(t *testing.T) {
	tests := []struct {
		d        Dir
		name     string
		dr, dc   int
		opposite Dir
	}{
		{Up, "up", -1, 0, Down},
		{Right, "right", 0, 1, Left},
		{Down, "down", 1, 0, Up},
		{Left, "left", 0, -1, Right},
	}

	for _, tc := range tests {
		if tc.d.String() != tc.name {
			t.Errorf("String() = %q, expected %q", tc.d.String(), tc.name)
		}
		dr, dc := tc.d.Delta()
		if dr != tc.dr || dc != tc.dc {
			t.Errorf("%s Delta() = (%d, %d), expected (%d, %d)", tc.name, dr, dc, tc.dr, tc.dc)
		}
		if tc.d.Opposite() != tc.opposite {
			t.Errorf("%s Opposite() = %s, expected %s", tc.name, tc.d.Opposite(), tc.opposite)
		}
	}

	if _, ok := DirBetween(core.At(1, 1), core.At(1, 1)); ok {
		t.Error("DirBetween of equal coords should report false")
	}
}

func TestTrace(t *testing.T) {
	path := []core.Coord{core.At(0, 0), core.At(0, 3), core.At(2, 3)}
	want := []core.Coord{
		core.At(0, 0), core.At(0, 1), core.At(0, 2), core.At(0, 3),
		core.At(1, 3), core.At(2, 3),
	}

	got := Trace(path)
	if len(got) != len(want) {
		t.Fatalf("Trace() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Trace()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}
