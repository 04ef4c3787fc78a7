// Package play holds the state of a hand-played ice maze. The player slides
// by the same rule the solver uses; the package has no rendering or I/O.
package play

import (
	"errors"

	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/grid"
	"github.com/vovakirdan/icemaze/internal/solver"
)

// ErrNoStart is returned by New for a map without a start cell.
var ErrNoStart = errors.New("play: map has no start cell")

// Session is one attempt at a map.
type Session struct {
	g       *grid.Grid
	start   core.Coord
	trail   []core.Coord // trail[0] is the start; the last entry is the player
	optimal int
}

// New starts a session at the map's start cell. optimal is the shortest
// solution length, or 0 when unknown or unsolvable.
func New(g *grid.Grid, optimal int) (*Session, error) {
	start, err := g.FindUnique(grid.Start)
	if err != nil {
		return nil, ErrNoStart
	}
	s := &Session{
		g:       g,
		start:   start.Coord(),
		optimal: optimal,
	}
	s.Reset()
	return s, nil
}

// Grid returns the map being played.
func (s *Session) Grid() *grid.Grid {
	return s.g
}

// Move slides the player in direction d. It returns false, leaving the
// state unchanged, if the slide is blocked or the map is already won.
func (s *Session) Move(d solver.Dir) bool {
	if s.Won() {
		return false
	}
	next, ok := solver.Slide(s.g, s.Pos(), d)
	if !ok {
		return false
	}
	s.trail = append(s.trail, next)
	return true
}

// Undo takes back the last move. Returns false at the start.
func (s *Session) Undo() bool {
	if len(s.trail) <= 1 {
		return false
	}
	s.trail = s.trail[:len(s.trail)-1]
	return true
}

// Reset puts the player back on the start cell.
func (s *Session) Reset() {
	s.trail = []core.Coord{s.start}
}

// Pos returns the player's cell.
func (s *Session) Pos() core.Coord {
	return s.trail[len(s.trail)-1]
}

// Moves returns the number of slides made so far.
func (s *Session) Moves() int {
	return len(s.trail) - 1
}

// Optimal returns the shortest solution length given to New.
func (s *Session) Optimal() int {
	return s.optimal
}

// Won reports whether the player stands on the finish cell.
func (s *Session) Won() bool {
	return s.g.At(s.Pos()) == grid.Finish
}

// Trail returns a copy of the visited stop cells, start first.
func (s *Session) Trail() []core.Coord {
	out := make([]core.Coord, len(s.trail))
	copy(out, s.trail)
	return out
}

// Remaining returns the fewest moves from the current cell to the finish.
// ok is false when the finish can no longer be reached.
func (s *Session) Remaining() (moves int, ok bool) {
	finish, err := s.g.FindUnique(grid.Finish)
	if err != nil {
		return 0, false
	}
	moves, ok = solver.Distances(s.g, s.Pos())[finish.Coord()]
	return moves, ok
}

// DirFor maps a movement action to a slide direction.
func DirFor(a core.Action) (solver.Dir, bool) {
	switch a {
	case core.ActionUp:
		return solver.Up, true
	case core.ActionRight:
		return solver.Right, true
	case core.ActionDown:
		return solver.Down, true
	case core.ActionLeft:
		return solver.Left, true
	}
	return 0, false
}
