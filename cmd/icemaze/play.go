package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/icemaze/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <map>",
	Short: "Play a map",
	Long: `Slide through a map yourself. Finished runs are saved to the leaderboard
unless the solution was shown.

Controls:
  Arrows/WASD/HJKL  - Slide
  U                 - Undo
  R                 - Reset to start
  Space             - Show the solution
  ?                 - More keys
  Esc/B, Q          - Quit

Examples:
  icemaze play lake
  icemaze play maps/cave.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	m, err := resolveMap(args[0])
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

	err = tui.Run(m, tui.PlayOptions{
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
