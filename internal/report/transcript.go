// Package report formats solver results for people: the numbered move
// transcript printed by the CLI and a drawing of the map with the path on it.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/icemaze/internal/grid"
	"github.com/vovakirdan/icemaze/internal/solver"
)

// WriteTranscript prints the numbered move list for a solved map:
//
//	Shortest path from 'S' to 'F':
//	1. Start at (1,1)
//	2. Move right to (2,1)
//	Done!
//
// Coordinates are one-based and column-first.
func WriteTranscript(w io.Writer, steps []solver.Step, alpha grid.Alphabet) error {
	if _, err := fmt.Fprintf(w, "Shortest path from '%c' to '%c':\n", alpha.Start, alpha.Finish); err != nil {
		return err
	}
	for _, s := range steps {
		if _, err := fmt.Fprintln(w, StepLine(s)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "Done!")
	return err
}

// StepLine formats one transcript line without a trailing newline.
func StepLine(s solver.Step) string {
	if s.Start {
		return fmt.Sprintf("%d. Start at %s", s.Index, s.At.Display())
	}
	return fmt.Sprintf("%d. Move %s to %s", s.Index, s.Dir, s.At.Display())
}

// OutcomeLine returns the plain-text message for a search that did not
// produce a path. ok is false for errors that are not search outcomes.
func OutcomeLine(err error, alpha grid.Alphabet) (line string, ok bool) {
	switch {
	case errors.Is(err, solver.ErrNoPathFound):
		return fmt.Sprintf("No path found from '%c' to '%c'.", alpha.Start, alpha.Finish), true
	case errors.Is(err, solver.ErrStartNotFound):
		return fmt.Sprintf("Starting cell '%c' not found in the grid.", alpha.Start), true
	case errors.Is(err, solver.ErrFinishNotFound):
		return fmt.Sprintf("Finish cell '%c' not found in the grid.", alpha.Finish), true
	}
	return "", false
}

// WriteOutcome prints the message for a search outcome. Errors that are not
// search outcomes are returned unchanged.
func WriteOutcome(w io.Writer, err error, alpha grid.Alphabet) error {
	line, ok := OutcomeLine(err, alpha)
	if !ok {
		return err
	}
	_, werr := fmt.Fprintln(w, line)
	return werr
}
