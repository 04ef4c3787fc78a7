package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/icemaze/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [map-id]",
	Short: "Show recent solver runs and best plays",
	Long: `List the most recent 'icemaze solve' runs, newest first. With a map ID,
only that map's runs are listed, followed by its statistics and the best
hand-played records.

Examples:
  icemaze history
  icemaze history lake --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of runs to show")
}

func runHistory(_ *cobra.Command, args []string) {
	mapID := ""
	if len(args) == 1 {
		mapID = args[0]
	}

	store, err := storage.Open(settings.DBPath, logger)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(mapID, flagHistoryLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	if mapID == "" {
		fmt.Println("Recent runs")
	} else {
		fmt.Printf("Recent runs - %s\n", mapID)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
	} else {
		fmt.Printf("  %-16s  %-12s  %-6s  %-8s  %-10s  %s\n", "When", "Map", "Moves", "Expanded", "Time", "Run")
		fmt.Printf("  %-16s  %-12s  %-6s  %-8s  %-10s  %s\n", "----", "---", "-----", "--------", "----", "---")
		for _, r := range runs {
			moves := "none"
			if r.Found {
				moves = fmt.Sprint(r.Moves)
			}
			fmt.Printf("  %-16s  %-12s  %-6s  %-8d  %-10s  %s\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.MapID, moves, r.Expanded, r.Duration, r.ID[:8])
		}
	}

	if mapID == "" {
		return
	}

	stats, err := store.MapStats(mapID)
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	fmt.Println()
	fmt.Printf("Runs: %d (solved %d), avg cells expanded: %.1f\n", stats.Runs, stats.Solved, stats.AvgExpanded)

	plays, err := store.TopPlays(mapID, 5)
	if err != nil {
		fail("retrieving plays: %v", err)
	}
	if len(plays) == 0 {
		fmt.Printf("Not finished by hand yet. Try 'icemaze play %s'.\n", mapID)
		return
	}

	fmt.Printf("Hand plays: %d, last %s\n", stats.Plays, stats.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("  %-4s  %-14s  %-5s  %s\n", "Rank", "Player", "Moves", "Date")
	fmt.Printf("  %-4s  %-14s  %-5s  %s\n", "----", "------", "-----", "----")
	for i, p := range plays {
		moves := fmt.Sprint(p.Moves)
		if p.Perfect() {
			moves += "*"
		}
		fmt.Printf("  %-4d  %-14s  %-5s  %s\n", i+1, p.Player, moves, p.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("* matches the shortest route")
}
