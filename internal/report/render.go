package report

import (
	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/grid"
	"github.com/vovakirdan/icemaze/internal/solver"
)

// Overlay glyphs drawn on top of the map.
const (
	PathRune   = '*'
	PlayerRune = '@'
)

// Theme assigns screen colors to map elements.
type Theme struct {
	Wall   core.Color
	Floor  core.Color
	Ice    core.Color
	Start  core.Color
	Finish core.Color
	Path   core.Color
	Player core.Color
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	return Theme{
		Wall:   core.ColorGray,
		Floor:  core.ColorDefault,
		Ice:    core.ColorBrightCyan,
		Start:  core.ColorBrightGreen,
		Finish: core.ColorBrightYellow,
		Path:   core.ColorYellow,
		Player: core.ColorBrightMagenta,
	}
}

// ColorFor returns the color for a cell type.
func (t Theme) ColorFor(ct grid.CellType) core.Color {
	switch ct {
	case grid.Wall:
		return t.Wall
	case grid.Floor:
		return t.Floor
	case grid.Ice:
		return t.Ice
	case grid.Start:
		return t.Start
	case grid.Finish:
		return t.Finish
	default:
		return core.ColorDefault
	}
}

// Overlay describes what to draw over the bare map.
type Overlay struct {
	// Path cells are marked with PathRune, except start and finish
	// which keep their own symbols.
	Path []core.Coord
	// Player, when set, is drawn with PlayerRune on top of everything else.
	Player *core.Coord
}

// RenderGrid draws the map at (x, y) on the screen using the alphabet's
// symbols and the theme's colors, then the overlay.
func RenderGrid(dst *core.Screen, x, y int, g *grid.Grid, alpha grid.Alphabet, theme Theme, ov Overlay) {
	for _, cell := range g.Cells() {
		dst.SetColored(x+cell.Col, y+cell.Row, alpha.Symbol(cell.Type), theme.ColorFor(cell.Type))
	}

	for _, c := range ov.Path {
		switch g.At(c) {
		case grid.Start, grid.Finish:
			continue
		}
		dst.SetColored(x+c.Col, y+c.Row, PathRune, theme.Path)
	}

	if ov.Player != nil {
		dst.SetColored(x+ov.Player.Col, y+ov.Player.Row, PlayerRune, theme.Player)
	}
}

// Plain returns the map with every cell the path crosses marked, as
// uncolored text.
func Plain(g *grid.Grid, path []core.Coord, alpha grid.Alphabet) string {
	s := core.NewScreen(g.Cols(), g.Rows())
	RenderGrid(s, 0, 0, g, alpha, Theme{}, Overlay{Path: solver.Trace(path)})
	return s.String()
}
