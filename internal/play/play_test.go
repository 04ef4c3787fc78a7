package play

import (
	"errors"
	"testing"

	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/grid"
	"github.com/vovakirdan/icemaze/internal/solver"
)

// Shortest route: right, down, down, right.
func scenario() *grid.Grid {
	return grid.MustParse(
		"S.0",
		"..0",
		"0.F",
	)
}

func TestNewRequiresStart(t *testing.T) {
	_, err := New(grid.MustParse("..F"), 0)
	if !errors.Is(err, ErrNoStart) {
		t.Fatalf("New() error = %v, want ErrNoStart", err)
	}
}

func TestPlayThrough(t *testing.T) {
	s, err := New(scenario(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if s.Pos() != core.At(0, 0) || s.Moves() != 0 || s.Won() {
		t.Fatalf("unexpected initial state: pos %v moves %d", s.Pos(), s.Moves())
	}

	if s.Move(solver.Up) {
		t.Error("moving off the map should be blocked")
	}
	if s.Moves() != 0 {
		t.Errorf("blocked move counted: %d", s.Moves())
	}

	for _, d := range []solver.Dir{solver.Right, solver.Down, solver.Down, solver.Right} {
		if !s.Move(d) {
			t.Fatalf("Move(%v) blocked at %v", d, s.Pos())
		}
	}
	if !s.Won() {
		t.Fatalf("expected win at %v", s.Pos())
	}
	if s.Moves() != s.Optimal() {
		t.Errorf("Moves() = %d, want %d", s.Moves(), s.Optimal())
	}
	if s.Move(solver.Left) {
		t.Error("moves after winning should be ignored")
	}

	want := []core.Coord{core.At(0, 0), core.At(0, 1), core.At(1, 1), core.At(2, 1), core.At(2, 2)}
	trail := s.Trail()
	if len(trail) != len(want) {
		t.Fatalf("Trail() = %v, want %v", trail, want)
	}
	for i := range want {
		if trail[i] != want[i] {
			t.Errorf("Trail()[%d] = %v, want %v", i, trail[i], want[i])
		}
	}
}

func TestUndoAndReset(t *testing.T) {
	s, err := New(scenario(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if s.Undo() {
		t.Error("Undo() at start should return false")
	}

	s.Move(solver.Right)
	s.Move(solver.Down)
	if !s.Undo() {
		t.Fatal("Undo() returned false")
	}
	if s.Pos() != core.At(0, 1) || s.Moves() != 1 {
		t.Errorf("after undo: pos %v moves %d", s.Pos(), s.Moves())
	}

	s.Reset()
	if s.Pos() != core.At(0, 0) || s.Moves() != 0 {
		t.Errorf("after reset: pos %v moves %d", s.Pos(), s.Moves())
	}
}

func TestTrailIsCopy(t *testing.T) {
	s, _ := New(scenario(), 4)
	s.Move(solver.Right)
	tr := s.Trail()
	tr[1] = core.At(2, 2)
	if s.Pos() != core.At(0, 1) {
		t.Error("mutating Trail() result changed the session")
	}
}

func TestRemaining(t *testing.T) {
	s, _ := New(scenario(), 4)
	if n, ok := s.Remaining(); !ok || n != 4 {
		t.Errorf("Remaining() = %d, %v; want 4, true", n, ok)
	}
	s.Move(solver.Right)
	s.Move(solver.Down)
	if n, ok := s.Remaining(); !ok || n != 2 {
		t.Errorf("Remaining() = %d, %v; want 2, true", n, ok)
	}

	// Finish is walled off.
	dead, _ := New(grid.MustParse("S.0F"), 0)
	if n, ok := dead.Remaining(); ok {
		t.Errorf("Remaining() = %d, true; want unreachable", n)
	}
}

func TestDirFor(t *testing.T) {
	tests := []struct {
		a    core.Action
		want solver.Dir
		ok   bool
	}{
		{core.ActionUp, solver.Up, true},
		{core.ActionRight, solver.Right, true},
		{core.ActionDown, solver.Down, true},
		{core.ActionLeft, solver.Left, true},
		{core.ActionUndo, 0, false},
		{core.ActionNone, 0, false},
	}
	for _, tt := range tests {
		got, ok := DirFor(tt.a)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("DirFor(%v) = %v, %v; want %v, %v", tt.a, got, ok, tt.want, tt.ok)
		}
	}
}
