package solver

import (
	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/grid"
)

// Slide computes where a single move from `from` in direction d ends.
//
// The first step must land inside the grid on a non-wall cell, otherwise the
// move does not exist. Floor, Start and Finish end the move immediately. Ice
// keeps the player going until the next step would leave the grid or hit a
// wall (the move ends on the last ice cell) or a non-ice cell is entered (the
// move ends there).
//
// Every step is bounds-checked, so a slide always terminates.
func Slide(g *grid.Grid, from core.Coord, d Dir) (core.Coord, bool) {
	next := Next(from, d)
	if g.At(next) == grid.Wall {
		return from, false
	}

	cur := next
	for g.At(cur) == grid.Ice {
		ahead := Next(cur, d)
		if g.At(ahead) == grid.Wall {
			break
		}
		cur = ahead
	}
	return cur, true
}

// Move is a single slide edge: direction and destination.
type Move struct {
	Dir Dir
	To  core.Coord
}

// Moves returns every slide available from c, in Dirs order.
func Moves(g *grid.Grid, from core.Coord) []Move {
	moves := make([]Move, 0, len(Dirs))
	for _, d := range Dirs {
		if to, ok := Slide(g, from, d); ok {
			moves = append(moves, Move{Dir: d, To: to})
		}
	}
	return moves
}
