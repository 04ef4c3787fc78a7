package core

import "fmt"

// Coord is a cell position on a grid. Row grows downward, Col grows to the
// right. Coordinates are comparable values and are used directly as map keys.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns a new Coord offset by (dRow, dCol).
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String returns the zero-based (row,col) form used in logs and errors.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Display returns the one-based, column-first form shown to players: (col+1,row+1).
func (c Coord) Display() string {
	return fmt.Sprintf("(%d,%d)", c.Col+1, c.Row+1)
}
