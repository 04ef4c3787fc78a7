package mapfile

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/icemaze/internal/grid"
)

// YAMLMap represents the YAML structure for a map file.
type YAMLMap struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Alphabet YAMLAlphabet      `yaml:"alphabet,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLAlphabet overrides individual symbols; empty fields keep the base alphabet.
type YAMLAlphabet struct {
	Wall   string `yaml:"wall,omitempty"`
	Floor  string `yaml:"floor,omitempty"`
	Ice    string `yaml:"ice,omitempty"`
	Start  string `yaml:"start,omitempty"`
	Finish string `yaml:"finish,omitempty"`
}

// apply returns base with the non-empty overrides applied.
func (a YAMLAlphabet) apply(base grid.Alphabet) (grid.Alphabet, error) {
	out := base
	fields := []struct {
		name string
		val  string
		dst  *rune
	}{
		{"wall", a.Wall, &out.Wall},
		{"floor", a.Floor, &out.Floor},
		{"ice", a.Ice, &out.Ice},
		{"start", a.Start, &out.Start},
		{"finish", a.Finish, &out.Finish},
	}
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		if utf8.RuneCountInString(f.val) != 1 {
			return base, fmt.Errorf("alphabet.%s must be a single character, got %q", f.name, f.val)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.val)
	}
	return out, out.Validate()
}

// ParseYAML parses a YAML map file.
func ParseYAML(data []byte, alpha grid.Alphabet) (Parsed, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Parsed{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	merged, err := ym.Alphabet.apply(alpha)
	if err != nil {
		return Parsed{}, err
	}

	return Parsed{
		ID:       ym.ID,
		Name:     ym.Name,
		Rows:     ym.Rows,
		Alphabet: merged,
		Metadata: ym.Metadata,
	}, nil
}

// MarshalYAML encodes a map in the YAML format using the given alphabet.
func MarshalYAML(m Map) ([]byte, error) {
	ym := YAMLMap{
		ID:       m.ID,
		Name:     m.Name,
		Rows:     m.Grid.Lines(m.Alphabet),
		Metadata: m.Metadata,
	}
	if m.Alphabet != grid.DefaultAlphabet() {
		ym.Alphabet = YAMLAlphabet{
			Wall:   string(m.Alphabet.Wall),
			Floor:  string(m.Alphabet.Floor),
			Ice:    string(m.Alphabet.Ice),
			Start:  string(m.Alphabet.Start),
			Finish: string(m.Alphabet.Finish),
		}
	}
	return yaml.Marshal(ym)
}
