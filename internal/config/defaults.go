package config

import (
	_ "embed"
)

//go:embed defaults/icemaze.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MapsDir:  "~/.icemaze/maps",
		DBPath:   "~/.icemaze/history.db",
		LogLevel: "info",
		Alphabet: AlphabetConfig{
			Wall:   "0",
			Floor:  ".",
			Ice:    "I",
			Start:  "S",
			Finish: "F",
		},
		Solver: SolverConfig{
			MaxExpansions: 0,
		},
		Play: PlayConfig{
			TickRate:  20,
			AnimateMS: 250,
		},
		Theme: ThemeConfig{
			Wall:   "gray",
			Floor:  "default",
			Ice:    "bright_cyan",
			Start:  "bright_green",
			Finish: "bright_yellow",
			Path:   "yellow",
			Player: "bright_magenta",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			HostKey:            "",
			IdleTimeoutMinutes: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default configuration file.
func GetDefaultYAML() []byte {
	return defaultYAML
}
