package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/icemaze/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick maps interactively",
	Long: `Start the map picker on the configured maps directory. Press Enter to
play a map, Tab for the leaderboard, Q to quit.`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	maps, err := mapsLoader("").LoadAll()
	if err != nil {
		fail("%v", err)
	}

	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	err = tui.RunSession(tui.SessionOptions{
		Maps:          maps,
		Store:         store,
		Player:        playerName(),
		Theme:         settings.Theme.ReportTheme(),
		Runtime:       runtimeConfig(width, height),
		AnimateEvery:  animateEvery(),
		MaxExpansions: settings.Solver.MaxExpansions,
	})
	if err != nil {
		fail("%v", err)
	}
}
