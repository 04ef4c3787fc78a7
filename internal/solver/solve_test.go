package solver

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/grid"
)

func TestSolveFloorMaze(t *testing.T) {
	g := grid.MustParse(
		"S.0",
		"..0",
		"0.F",
	)

	res, err := Solve(g)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}

	// Up, Right, Down, Left expansion order prefers going right first.
	expected := []core.Coord{
		core.At(0, 0),
		core.At(0, 1),
		core.At(1, 1),
		core.At(2, 1),
		core.At(2, 2),
	}
	if !reflect.DeepEqual(res.Path, expected) {
		t.Errorf("Path = %v, expected %v", res.Path, expected)
	}
	if res.Moves() != 4 {
		t.Errorf("Moves() = %d, expected 4", res.Moves())
	}
	// S, (0,1), (1,0), (1,1), (2,1), then F is dequeued.
	if res.Expanded != 6 {
		t.Errorf("Expanded = %d, expected 6", res.Expanded)
	}
}

func TestSolveScenarios(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		path  []core.Coord
		moves int
	}{
		{
			name:  "adjacent start and finish",
			rows:  []string{"SF"},
			path:  []core.Coord{core.At(0, 0), core.At(0, 1)},
			moves: 1,
		},
		{
			name:  "ice corridor crossed in one move",
			rows:  []string{"SIII.F"},
			path:  []core.Coord{core.At(0, 0), core.At(0, 4), core.At(0, 5)},
			moves: 2,
		},
		{
			name:  "slide stops on finish",
			rows:  []string{"SIIF"},
			path:  []core.Coord{core.At(0, 0), core.At(0, 3)},
			moves: 1,
		},
		{
			name: "slide stops at map edge",
			rows: []string{
				"SII",
				"00F",
			},
			path:  []core.Coord{core.At(0, 0), core.At(0, 2), core.At(1, 2)},
			moves: 2,
		},
		{
			name: "vertical ice",
			rows: []string{
				"S0",
				"I0",
				"I.",
				"0F",
			},
			path:  []core.Coord{core.At(0, 0), core.At(2, 0), core.At(2, 1), core.At(3, 1)},
			moves: 3,
		},
		{
			name: "winding floor route",
			rows: []string{
				"S.....",
				"00000.",
				"F.....",
			},
			path: []core.Coord{
				core.At(0, 0), core.At(0, 1), core.At(0, 2), core.At(0, 3), core.At(0, 4), core.At(0, 5),
				core.At(1, 5),
				core.At(2, 5), core.At(2, 4), core.At(2, 3), core.At(2, 2), core.At(2, 1), core.At(2, 0),
			},
			moves: 12,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.MustParse(tc.rows...)
			res, err := Solve(g)
			if err != nil {
				t.Fatalf("Solve() failed: %v", err)
			}
			if !reflect.DeepEqual(res.Path, tc.path) {
				t.Errorf("Path = %v, expected %v", res.Path, tc.path)
			}
			if res.Moves() != tc.moves {
				t.Errorf("Moves() = %d, expected %d", res.Moves(), tc.moves)
			}
		})
	}
}

func TestSolveOutcomes(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"ice stops before wall, finish unreachable", []string{"SII0F"}, ErrNoPathFound},
		{"finish walled in", []string{"S.0", "..0", "00F"}, ErrNoPathFound},
		{"no start", []string{"..F"}, ErrStartNotFound},
		{"no finish", []string{"S.."}, ErrFinishNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Solve(grid.MustParse(tc.rows...))
			if !errors.Is(err, tc.want) {
				t.Fatalf("Solve() error = %v, expected %v", err, tc.want)
			}
			if len(res.Path) != 0 {
				t.Errorf("failed search should not return a path, got %v", res.Path)
			}
		})
	}
}

func TestSolveSearchLimit(t *testing.T) {
	g := grid.MustParse(
		"S.0",
		"..0",
		"0.F",
	)

	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"stops early", 2, true},
		{"one cell short of the finish", 5, true},
		{"finish is the last allowed cell", 6, false},
		{"bound never reached", 100, false},
		{"zero is unbounded", 0, false},
		{"negative is unbounded", -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Solve(g, WithMaxExpansions(tc.limit))
			if tc.wantErr {
				if !errors.Is(err, ErrSearchLimit) {
					t.Fatalf("Solve() with limit %d error = %v, expected ErrSearchLimit", tc.limit, err)
				}
				if res.Expanded != tc.limit {
					t.Errorf("Expanded = %d, expected %d", res.Expanded, tc.limit)
				}
				return
			}
			if err != nil {
				t.Fatalf("Solve() with limit %d failed: %v", tc.limit, err)
			}
			if res.Moves() != 4 || res.Expanded != 6 {
				t.Errorf("Moves() = %d, Expanded = %d; expected 4 and 6", res.Moves(), res.Expanded)
			}
		})
	}
}

func TestSolveIdempotent(t *testing.T) {
	g := grid.MustParse(
		"S.I..0",
		".0I0..",
		"..III.",
		"0.0..F",
	)

	first, err := Solve(g)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Solve(g)
		if err != nil {
			t.Fatalf("Solve() run %d failed: %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d returned %v, first run returned %v", i, again.Path, first.Path)
		}
	}
}

func TestSolveMatchesRelaxation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		rows := randomRows(rng, 2+rng.Intn(5), 2+rng.Intn(5))
		g, err := grid.Parse(rows)
		if err != nil {
			t.Fatalf("random grid %v invalid: %v", rows, err)
		}

		start, _ := g.FindUnique(grid.Start)
		finish, _ := g.FindUnique(grid.Finish)
		want, reachable := relaxedDistance(g, start.Coord(), finish.Coord())

		res, err := Solve(g)
		if !reachable {
			if !errors.Is(err, ErrNoPathFound) {
				t.Errorf("grid %v: expected ErrNoPathFound, got %v", rows, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("grid %v: Solve() failed: %v", rows, err)
			continue
		}
		if res.Moves() != want {
			t.Errorf("grid %v: Moves() = %d, expected %d", rows, res.Moves(), want)
		}
		checkPath(t, g, res.Path)
	}
}

func TestDistances(t *testing.T) {
	g := grid.MustParse(
		"S.0",
		"..0",
		"0.F",
	)

	dist := Distances(g, core.At(0, 0))
	if dist[core.At(2, 2)] != 4 {
		t.Errorf("distance to finish = %d, expected 4", dist[core.At(2, 2)])
	}
	if _, ok := dist[core.At(0, 2)]; ok {
		t.Error("walls must not appear in the distance map")
	}
}

// checkPath verifies that consecutive cells are joined by exactly one slide
// and that no cell repeats.
func checkPath(t *testing.T, g *grid.Grid, path []core.Coord) {
	t.Helper()

	seen := make(map[core.Coord]bool)
	for i, c := range path {
		if seen[c] {
			t.Errorf("path %v repeats %v", path, c)
		}
		seen[c] = true
		if i == 0 {
			continue
		}
		d, ok := DirBetween(path[i-1], c)
		if !ok {
			t.Errorf("path %v has a zero-length move at %d", path, i)
			continue
		}
		if to, ok := Slide(g, path[i-1], d); !ok || to != c {
			t.Errorf("path %v: %v -> %v is not a slide (slide %s ends at %v)", path, path[i-1], c, d, to)
		}
	}
}

// relaxedDistance computes the move count with repeated edge relaxation,
// independently of the BFS queue. The slide itself is re-implemented from
// the rules so a bug in Slide cannot hide here.
func relaxedDistance(g *grid.Grid, from, to core.Coord) (int, bool) {
	const inf = 1 << 30
	dist := make(map[core.Coord]int)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			dist[core.At(r, c)] = inf
		}
	}
	dist[from] = 0

	for changed := true; changed; {
		changed = false
		for c, d := range dist {
			if d == inf {
				continue
			}
			for _, dir := range []Dir{Left, Down, Right, Up} {
				next, ok := naiveSlide(g, c, dir)
				if ok && dist[next] > d+1 {
					dist[next] = d + 1
					changed = true
				}
			}
		}
	}

	if dist[to] == inf {
		return 0, false
	}
	return dist[to], true
}

func naiveSlide(g *grid.Grid, from core.Coord, d Dir) (core.Coord, bool) {
	dr, dc := d.Delta()
	r, c := from.Row+dr, from.Col+dc
	blocked := func(r, c int) bool {
		typ, err := g.TypeAt(r, c)
		return err != nil || typ == grid.Wall
	}
	if blocked(r, c) {
		return from, false
	}
	for {
		typ, _ := g.TypeAt(r, c)
		if typ != grid.Ice {
			return core.At(r, c), true
		}
		if blocked(r+dr, c+dc) {
			return core.At(r, c), true
		}
		r, c = r+dr, c+dc
	}
}

// randomRows builds a map of walls, floor and ice with one start and one
// finish in distinct cells.
func randomRows(rng *rand.Rand, rows, cols int) []string {
	symbols := []rune("0..II")
	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = make([]rune, cols)
		for c := range cells[r] {
			cells[r][c] = symbols[rng.Intn(len(symbols))]
		}
	}

	start := rng.Intn(rows * cols)
	finish := rng.Intn(rows*cols - 1)
	if finish >= start {
		finish++
	}
	cells[start/cols][start%cols] = 'S'
	cells[finish/cols][finish%cols] = 'F'

	out := make([]string, rows)
	for r := range cells {
		out[r] = string(cells[r])
	}
	return out
}
