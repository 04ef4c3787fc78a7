package grid

import "fmt"

// Alphabet maps map symbols to cell types.
type Alphabet struct {
	Wall   rune
	Floor  rune
	Ice    rune
	Start  rune
	Finish rune
}

// DefaultAlphabet returns the standard map alphabet:
//
//	'0' = wall
//	'.' = floor
//	'I' = ice
//	'S' = start
//	'F' = finish
func DefaultAlphabet() Alphabet {
	return Alphabet{
		Wall:   '0',
		Floor:  '.',
		Ice:    'I',
		Start:  'S',
		Finish: 'F',
	}
}

// Lookup returns the cell type for a symbol.
func (a Alphabet) Lookup(r rune) (CellType, bool) {
	switch r {
	case a.Wall:
		return Wall, true
	case a.Floor:
		return Floor, true
	case a.Ice:
		return Ice, true
	case a.Start:
		return Start, true
	case a.Finish:
		return Finish, true
	}
	return 0, false
}

// Symbol returns the symbol used for a cell type.
func (a Alphabet) Symbol(t CellType) rune {
	switch t {
	case Wall:
		return a.Wall
	case Floor:
		return a.Floor
	case Ice:
		return a.Ice
	case Start:
		return a.Start
	case Finish:
		return a.Finish
	default:
		return '?'
	}
}

// Validate checks that every type has a distinct, non-zero symbol.
func (a Alphabet) Validate() error {
	seen := make(map[rune]CellType, len(AllTypes))
	for _, t := range AllTypes {
		r := a.Symbol(t)
		if r == 0 {
			return fmt.Errorf("grid: alphabet has no symbol for %s", t)
		}
		if prev, dup := seen[r]; dup {
			return fmt.Errorf("grid: alphabet symbol %q used for both %s and %s", r, prev, t)
		}
		seen[r] = t
	}
	return nil
}
