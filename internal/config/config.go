// Package config provides YAML-based configuration loading for icemaze.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/grid"
	"github.com/vovakirdan/icemaze/internal/report"
)

// Config is the full icemaze configuration.
type Config struct {
	MapsDir  string         `yaml:"maps_dir"`
	DBPath   string         `yaml:"db_path"`
	LogLevel string         `yaml:"log_level"`
	Alphabet AlphabetConfig `yaml:"alphabet"`
	Solver   SolverConfig   `yaml:"solver"`
	Play     PlayConfig     `yaml:"play"`
	Theme    ThemeConfig    `yaml:"theme"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// AlphabetConfig defines the map symbols. Each value must be a single character.
type AlphabetConfig struct {
	Wall   string `yaml:"wall"`
	Floor  string `yaml:"floor"`
	Ice    string `yaml:"ice"`
	Start  string `yaml:"start"`
	Finish string `yaml:"finish"`
}

// SolverConfig tunes the search.
type SolverConfig struct {
	MaxExpansions int `yaml:"max_expansions"` // 0 = unbounded
}

// PlayConfig tunes the interactive play screen.
type PlayConfig struct {
	TickRate  int `yaml:"tick_rate"`  // UI ticks per second
	AnimateMS int `yaml:"animate_ms"` // Delay between solution playback moves
}

// ThemeConfig names a color for each map element (see core.ParseColor).
type ThemeConfig struct {
	Wall   string `yaml:"wall"`
	Floor  string `yaml:"floor"`
	Ice    string `yaml:"ice"`
	Start  string `yaml:"start"`
	Finish string `yaml:"finish"`
	Path   string `yaml:"path"`
	Player string `yaml:"player"`
}

// SSHConfig configures `icemaze serve`.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// GridAlphabet converts the configured symbols to a grid.Alphabet.
func (a AlphabetConfig) GridAlphabet() (grid.Alphabet, error) {
	var out grid.Alphabet
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
		if utf8.RuneCountInString(f.val) != 1 {
			return grid.Alphabet{}, fmt.Errorf("config: alphabet.%s must be a single character, got %q", f.name, f.val)
		}
		r, _ := utf8.DecodeRuneInString(f.val)
		*f.dst = r
	}
	if err := out.Validate(); err != nil {
		return grid.Alphabet{}, fmt.Errorf("config: %w", err)
	}
	return out, nil
}

// ReportTheme converts color names to a report.Theme.
// Unknown names fall back to the default theme's color.
func (t ThemeConfig) ReportTheme() report.Theme {
	theme := report.DefaultTheme()
	set := func(name string, dst *core.Color) {
		if c, ok := core.ParseColor(name); ok {
			*dst = c
		}
	}
	set(t.Wall, &theme.Wall)
	set(t.Floor, &theme.Floor)
	set(t.Ice, &theme.Ice)
	set(t.Start, &theme.Start)
	set(t.Finish, &theme.Finish)
	set(t.Path, &theme.Path)
	set(t.Player, &theme.Player)
	return theme
}
