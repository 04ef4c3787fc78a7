// Package grid models an ice-maze map: a rectangular, immutable array of
// typed cells parsed from rows of symbols.
package grid

import "github.com/vovakirdan/icemaze/internal/core"

// CellType is the terrain of a single cell.
type CellType uint8

const (
	Wall CellType = iota
	Floor
	Ice
	Start
	Finish
)

// AllTypes lists every cell type in declaration order.
var AllTypes = []CellType{Wall, Floor, Ice, Start, Finish}

// String returns the string representation of a cell type.
func (t CellType) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Ice:
		return "Ice"
	case Start:
		return "Start"
	case Finish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// Stops reports whether a slide ends when it reaches a cell of this type.
// Floor, Start and Finish stop a slide; Ice keeps it going; Wall is never entered.
func (t CellType) Stops() bool {
	return t == Floor || t == Start || t == Finish
}

// Cell is an immutable grid position tagged with its type.
// Two cells are the same cell when their coordinates are equal.
type Cell struct {
	Row  int
	Col  int
	Type CellType
}

// Coord returns the cell position.
func (c Cell) Coord() core.Coord {
	return core.At(c.Row, c.Col)
}
