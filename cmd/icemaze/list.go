package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/icemaze/internal/mapfile"
	"github.com/vovakirdan/icemaze/internal/solver"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List the maps in a directory",
	Long: `Scan a directory (the configured maps directory by default) for map files
and show each map's size and the length of its shortest route.
Files that fail to load are skipped with a warning.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func runList(_ *cobra.Command, args []string) {
	dir := ""
	if len(args) == 1 {
		dir = args[0]
	}
	loader := mapsLoader(dir)

	maps, err := loader.LoadAll()
	if err != nil {
		fail("%v", err)
	}

	if len(maps) == 0 {
		fmt.Printf("No maps found in %s.\n", loader.Root)
		fmt.Printf("Supported extensions: %v (optionally with .zst)\n", mapfile.Extensions())
		return
	}

	fmt.Printf("Maps in %s:\n", loader.Root)
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range maps {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Moves", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")

	for _, m := range maps {
		size := fmt.Sprintf("%dx%d", m.Grid.Cols(), m.Grid.Rows())
		fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, m.ID, size, parLabel(m), m.Name)
	}

	fmt.Println()
	fmt.Println("Run 'icemaze solve <id>' for the route or 'icemaze play <id>' to try it.")
}

// parLabel is the shortest route length, or a short reason there is none.
func parLabel(m mapfile.Map) string {
	res, err := solver.Solve(m.Grid, solver.WithMaxExpansions(settings.Solver.MaxExpansions))
	switch {
	case err == nil:
		return fmt.Sprint(res.Moves())
	case errors.Is(err, solver.ErrNoPathFound):
		return "none"
	case errors.Is(err, solver.ErrSearchLimit):
		return "?"
	default:
		return "-"
	}
}
