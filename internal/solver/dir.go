package solver

import "github.com/vovakirdan/icemaze/internal/core"

// Dir is one of the four axis-aligned move directions.
type Dir uint8

const (
	Up Dir = iota
	Right
	Down
	Left
)

// Dirs is the order in which BFS expands directions. It decides which of
// several equally short paths is reported, so it must stay fixed.
var Dirs = [4]Dir{Up, Right, Down, Left}

// String returns the lower-case word used in transcripts.
func (d Dir) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
// Up decreases Row, Down increases Row (screen coordinates).
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// Next returns the coordinate one cell away from c in direction d.
func Next(c core.Coord, d Dir) core.Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

// DirBetween derives the direction of a move from its endpoints.
// Vertical movement wins over horizontal; identical endpoints report false.
func DirBetween(from, to core.Coord) (Dir, bool) {
	switch {
	case to.Row < from.Row:
		return Up, true
	case to.Row > from.Row:
		return Down, true
	case to.Col < from.Col:
		return Left, true
	case to.Col > from.Col:
		return Right, true
	default:
		return 0, false
	}
}
