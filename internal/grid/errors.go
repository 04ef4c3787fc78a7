package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is returned when map rows cannot form a valid grid.
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrNotFound is returned by FindUnique when no cell has the requested type.
	ErrNotFound = errors.New("cell not found")
)

// MalformedError describes where a map failed to parse.
// Row and Col are zero-based; Col is -1 when the whole row is at fault
// and Row is -1 when the error concerns the map as a whole.
type MalformedError struct {
	Row    int
	Col    int
	Reason string
}

func (e *MalformedError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("%s: %s", ErrMalformedGrid, e.Reason)
	case e.Col < 0:
		return fmt.Sprintf("%s: row %d: %s", ErrMalformedGrid, e.Row+1, e.Reason)
	default:
		return fmt.Sprintf("%s: row %d, column %d: %s", ErrMalformedGrid, e.Row+1, e.Col+1, e.Reason)
	}
}

// Unwrap lets errors.Is match ErrMalformedGrid.
func (e *MalformedError) Unwrap() error {
	return ErrMalformedGrid
}

func malformed(row, col int, format string, args ...any) error {
	return &MalformedError{Row: row, Col: col, Reason: fmt.Sprintf(format, args...)}
}
