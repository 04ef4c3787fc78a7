package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/icemaze/internal/mapfile"
	"github.com/vovakirdan/icemaze/internal/report"
	"github.com/vovakirdan/icemaze/internal/solver"
	"github.com/vovakirdan/icemaze/internal/storage"
)

var (
	flagShow          bool
	flagNoRecord      bool
	flagMaxExpansions int
)

var solveCmd = &cobra.Command{
	Use:   "solve <map>",
	Short: "Print the shortest path through a map",
	Long: `Load a map, find the route with the fewest moves from start to finish
and print it step by step. Coordinates are (column,row), counted from 1.

<map> is a file path (.txt, .map, .yaml, .yml, optionally .zst-compressed)
or the ID of a map in the maps directory.

A map without a start, without a finish or without a route is not an error:
a one-line explanation is printed instead of the route.

Examples:
  icemaze solve maps/lake.txt
  icemaze solve lake --show
  icemaze solve big.yaml.zst --max-expansions 100000`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagShow, "show", false, "Also draw the map with the route marked")
	solveCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save this run to the history database")
	solveCmd.Flags().IntVar(&flagMaxExpansions, "max-expansions", -1, "Search limit in cells (default from config, 0 = unbounded)")
}

func runSolve(_ *cobra.Command, args []string) {
	m, err := resolveMap(args[0])
	if err != nil {
		fail("%v", err)
	}

	limit := settings.Solver.MaxExpansions
	if flagMaxExpansions >= 0 {
		limit = flagMaxExpansions
	}

	started := time.Now()
	res, solveErr := solver.Solve(m.Grid, solver.WithMaxExpansions(limit))
	elapsed := time.Since(started)
	logger.Debug("search finished", "map", m.ID, "expanded", res.Expanded, "elapsed", elapsed)

	if errors.Is(solveErr, solver.ErrSearchLimit) {
		fail("%s: %v", m.ID, solveErr)
	}

	if !flagNoRecord {
		recordRun(m, res, solveErr, elapsed)
	}

	if solveErr != nil {
		if err := report.WriteOutcome(os.Stdout, solveErr, m.Alphabet); err != nil {
			fail("%v", err)
		}
		return
	}

	if err := report.WriteTranscript(os.Stdout, solver.Describe(res.Path), m.Alphabet); err != nil {
		fail("%v", err)
	}
	if flagShow {
		fmt.Println()
		fmt.Println(report.Plain(m.Grid, res.Path, m.Alphabet))
	}
}

// recordRun stores the run in the history database, best effort.
func recordRun(m mapfile.Map, res solver.Result, solveErr error, elapsed time.Duration) {
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()

	run := storage.SolveRun{
		MapID:    m.ID,
		MapHash:  m.Hash(),
		Found:    solveErr == nil,
		Moves:    res.Moves(),
		Expanded: res.Expanded,
		Duration: elapsed,
	}
	if _, err := store.SaveRun(run); err != nil {
		logger.Warn("could not record run", "map", m.ID, "error", err)
	}
}
