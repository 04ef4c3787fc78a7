package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/vovakirdan/icemaze/internal/config"
	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/grid"
	"github.com/vovakirdan/icemaze/internal/mapfile"
	"github.com/vovakirdan/icemaze/internal/storage"
)

// alphabet returns the configured map symbols or exits.
func alphabet() grid.Alphabet {
	alpha, err := settings.Alphabet.GridAlphabet()
	if err != nil {
		fail("%v", err)
	}
	return alpha
}

// mapsLoader returns a loader for dir, or for the configured maps
// directory when dir is empty.
func mapsLoader(dir string) *mapfile.Loader {
	if dir == "" {
		dir = settings.MapsDir
	}
	root, err := config.ExpandPath(dir)
	if err != nil {
		fail("%v", err)
	}
	return mapfile.NewLoader(root, alphabet(), logger)
}

// resolveMap loads ref as a file path if it exists, otherwise as a map ID
// in the maps directory.
func resolveMap(ref string) (mapfile.Map, error) {
	if _, err := os.Stat(ref); err == nil {
		return mapfile.LoadFile(ref, alphabet())
	}
	m, err := mapsLoader("").LoadByID(ref)
	if err != nil {
		return mapfile.Map{}, fmt.Errorf("%s is not a map file, and loading it as a map ID from %s failed: %w", ref, settings.MapsDir, err)
	}
	return m, nil
}

// openStore opens the history database. Failures are logged and yield a
// nil store; callers treat history as optional.
func openStore() *storage.Store {
	store, err := storage.Open(settings.DBPath, logger)
	if err != nil {
		logger.Warn("could not open history database", "path", settings.DBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the TUI runtime config for a terminal of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ScreenW = width
		cfg.ScreenH = height
	}
	if settings.Play.TickRate > 0 {
		cfg.TickRate = settings.Play.TickRate
	}
	return cfg
}

func animateEvery() time.Duration {
	return time.Duration(settings.Play.AnimateMS) * time.Millisecond
}

// playerName returns the local user name for play records.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
