package grid

import (
	"fmt"

	"github.com/vovakirdan/icemaze/internal/core"
)

// Grid is a rectangular ice-maze map.
// Cells are stored in row-major order: index = row*cols + col.
// A Grid is never modified after Build, so it can be shared freely between
// goroutines.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// Build parses rows of symbols into a Grid using the given alphabet.
// It fails with a *MalformedError (matching ErrMalformedGrid) when there are
// no rows, rows differ in length, a symbol is not in the alphabet, or the map
// has more than one start or finish.
func Build(rows []string, alpha Alphabet) (*Grid, error) {
	if err := alpha.Validate(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, malformed(-1, -1, "no rows")
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, malformed(0, -1, "empty row")
	}

	g := &Grid{
		rows:  len(rows),
		cols:  width,
		cells: make([]Cell, 0, len(rows)*width),
	}

	var start, finish *Cell
	for r, line := range rows {
		symbols := []rune(line)
		if len(symbols) != width {
			return nil, malformed(r, -1, "has %d columns, expected %d", len(symbols), width)
		}
		for c, sym := range symbols {
			t, ok := alpha.Lookup(sym)
			if !ok {
				return nil, malformed(r, c, "unrecognized symbol %q", sym)
			}
			cell := Cell{Row: r, Col: c, Type: t}
			switch t {
			case Start:
				if start != nil {
					return nil, malformed(r, c, "second start cell (first at %s)", start.Coord().Display())
				}
				start = &cell
			case Finish:
				if finish != nil {
					return nil, malformed(r, c, "second finish cell (first at %s)", finish.Coord().Display())
				}
				finish = &cell
			}
			g.cells = append(g.cells, cell)
		}
	}

	return g, nil
}

// Parse builds a Grid with the default alphabet.
func Parse(rows []string) (*Grid, error) {
	return Build(rows, DefaultAlphabet())
}

// MustParse is like Parse but panics on error. Intended for tests and
// built-in sample maps.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// InBounds returns true if (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains is InBounds for a Coord.
func (g *Grid) Contains(c core.Coord) bool {
	return g.InBounds(c.Row, c.Col)
}

// TypeAt returns the type of the cell at (row, col).
// Out-of-range coordinates return an error wrapping ErrOutOfBounds.
func (g *Grid) TypeAt(row, col int) (CellType, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.cells[g.index(row, col)].Type, nil
}

// Cell returns the cell at (row, col) and whether it exists.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if !g.InBounds(row, col) {
		return Cell{}, false
	}
	return g.cells[g.index(row, col)], true
}

// At returns the type at c, treating anything outside the grid as Wall.
// The slide rule relies on this: the boundary blocks exactly like a wall.
func (g *Grid) At(c core.Coord) CellType {
	if !g.Contains(c) {
		return Wall
	}
	return g.cells[g.index(c.Row, c.Col)].Type
}

// FindUnique returns the first cell of type t in row-major order.
// Returns ErrNotFound if the grid has no such cell.
func (g *Grid) FindUnique(t CellType) (Cell, error) {
	for _, cell := range g.cells {
		if cell.Type == t {
			return cell, nil
		}
	}
	return Cell{}, fmt.Errorf("%w: no %s cell", ErrNotFound, t)
}

// Count returns the number of cells of type t.
func (g *Grid) Count(t CellType) int {
	n := 0
	for _, cell := range g.cells {
		if cell.Type == t {
			n++
		}
	}
	return n
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Lines encodes the grid back into rows of symbols.
func (g *Grid) Lines(alpha Alphabet) []string {
	lines := make([]string, g.rows)
	buf := make([]rune, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf[c] = alpha.Symbol(g.cells[g.index(r, c)].Type)
		}
		lines[r] = string(buf)
	}
	return lines
}
