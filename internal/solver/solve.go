// Package solver finds the shortest move sequence through an ice maze.
//
// A move slides the player in one direction: one cell over floor, or across a
// whole run of ice until a wall, the map edge, or non-ice terrain stops it.
// Because every move costs the same, a breadth-first search over slide moves
// yields the minimum number of moves.
package solver

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/grid"
)

var (
	// ErrStartNotFound is returned when the map has no start cell.
	ErrStartNotFound = errors.New("start cell not found")
	// ErrFinishNotFound is returned when the map has no finish cell.
	ErrFinishNotFound = errors.New("finish cell not found")
	// ErrNoPathFound is returned when the finish cannot be reached.
	ErrNoPathFound = errors.New("no path found")
	// ErrSearchLimit is returned when the expansion bound is hit first.
	ErrSearchLimit = errors.New("search limit exceeded")
)

// Result is the outcome of a successful search.
type Result struct {
	// Path lists the cells visited from start to finish, inclusive.
	Path []core.Coord
	// Expanded is the number of cells taken off the frontier.
	Expanded int
}

// Moves returns the number of moves in the path.
func (r Result) Moves() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Option configures a search.
type Option func(*options)

type options struct {
	maxExpansions int
}

// WithMaxExpansions stops the search with ErrSearchLimit after n cells have
// been expanded. Zero or negative means unbounded.
func WithMaxExpansions(n int) Option {
	return func(o *options) {
		o.maxExpansions = n
	}
}

// Solve runs a breadth-first search over slide moves from the start cell to
// the finish cell and returns the shortest path.
//
// Not finding a start, a finish or a path is a normal outcome reported through
// ErrStartNotFound, ErrFinishNotFound and ErrNoPathFound.
func Solve(g *grid.Grid, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	startCell, err := g.FindUnique(grid.Start)
	if err != nil {
		return Result{}, ErrStartNotFound
	}
	finishCell, err := g.FindUnique(grid.Finish)
	if err != nil {
		return Result{}, ErrFinishNotFound
	}
	start, finish := startCell.Coord(), finishCell.Coord()

	queue := []core.Coord{start}
	visited := map[core.Coord]bool{start: true}
	parent := make(map[core.Coord]core.Coord)
	expanded := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		expanded++

		if cur == finish {
			return Result{
				Path:     reconstruct(parent, start, finish),
				Expanded: expanded,
			}, nil
		}

		if o.maxExpansions > 0 && expanded >= o.maxExpansions {
			return Result{Expanded: expanded}, fmt.Errorf("%w after %d cells", ErrSearchLimit, expanded)
		}

		for _, d := range Dirs {
			next, ok := Slide(g, cur, d)
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	return Result{Expanded: expanded}, ErrNoPathFound
}

// reconstruct walks the parent map back from finish and reverses the result.
func reconstruct(parent map[core.Coord]core.Coord, start, finish core.Coord) []core.Coord {
	path := []core.Coord{finish}
	for cur := finish; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Distances returns the minimum number of moves from `from` to every
// reachable cell. Cells that cannot be reached are absent from the map.
func Distances(g *grid.Grid, from core.Coord) map[core.Coord]int {
	dist := map[core.Coord]int{from: 0}
	queue := []core.Coord{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range Dirs {
			next, ok := Slide(g, cur, d)
			if !ok {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return dist
}
