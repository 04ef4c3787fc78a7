package solver

import "github.com/vovakirdan/icemaze/internal/core"

// Step is one line of a solution transcript.
type Step struct {
	// Index is 1-based.
	Index int
	// At is the cell reached by this step.
	At core.Coord
	// Start is true for the first step, which has no direction.
	Start bool
	// Dir is the direction moved to reach At. Unset for the start step.
	Dir Dir
	// Final is true for the step that reaches the finish.
	Final bool
}

// Describe turns a path into transcript steps. The first step is the start;
// each later step carries the direction derived from the coordinate delta,
// and the last one is flagged as final.
func Describe(path []core.Coord) []Step {
	steps := make([]Step, len(path))
	for i, c := range path {
		steps[i] = Step{Index: i + 1, At: c}
		if i == 0 {
			steps[i].Start = true
		} else {
			steps[i].Dir, _ = DirBetween(path[i-1], c)
		}
	}
	if len(steps) > 0 {
		steps[len(steps)-1].Final = true
	}
	return steps
}

// Trace expands a path of move endpoints into every cell crossed, in order.
// Slides over ice cover several cells in a single move.
func Trace(path []core.Coord) []core.Coord {
	if len(path) == 0 {
		return nil
	}
	cells := []core.Coord{path[0]}
	for i := 1; i < len(path); i++ {
		d, ok := DirBetween(path[i-1], path[i])
		if !ok {
			continue
		}
		for c := path[i-1]; c != path[i]; {
			c = Next(c, d)
			cells = append(cells, c)
		}
	}
	return cells
}
