package mapfile

import (
	"strings"

	"github.com/vovakirdan/icemaze/internal/grid"
)

// commentMarks are tried in order; the first one that is not a map symbol
// starts comment lines.
var commentMarks = []rune{'#', ';'}

// commentPrefix returns the comment marker for text maps in alpha. It is
// false when every candidate is a map symbol, in which case a text map has
// no comments at all.
func commentPrefix(alpha grid.Alphabet) (string, bool) {
	for _, r := range commentMarks {
		if _, used := alpha.Lookup(r); !used {
			return string(r), true
		}
	}
	return "", false
}

// ParseText decodes the plain map format: one grid row per line.
// Lines starting with the comment marker ('#', or ';' when '#' is a map
// symbol) before the first grid row are comments; a "# name: ..." comment
// sets the map name. Carriage returns and trailing blank lines are ignored.
func ParseText(data []byte, alpha grid.Alphabet) (Parsed, error) {
	lines := SplitLines(string(data))

	p := Parsed{Alphabet: alpha}
	if prefix, ok := commentPrefix(alpha); ok {
		for len(lines) > 0 && strings.HasPrefix(lines[0], prefix) {
			comment := strings.TrimSpace(strings.TrimPrefix(lines[0], prefix))
			if name, ok := strings.CutPrefix(comment, "name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			lines = lines[1:]
		}
	}
	p.Rows = lines
	return p, nil
}

// SplitLines splits text into lines, dropping '\r' and trailing empty lines.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
