package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/icemaze/internal/mapfile"
)

var convertCmd = &cobra.Command{
	Use:   "convert <map> <out>",
	Short: "Rewrite a map as text or YAML",
	Long: `Load a map and write it to <out>. The output format follows the extension
of <out>: .txt/.map for plain text, .yaml/.yml for YAML. Add .zst to
compress the result with zstd. Plain text has no room for an alphabet, so
text output uses the configured symbols; YAML keeps the map's own.

Examples:
  icemaze convert maps/lake.txt lake.yaml
  icemaze convert lake maps/lake.txt.zst`,
	Args: cobra.ExactArgs(2),
	Run:  runConvert,
}

func runConvert(_ *cobra.Command, args []string) {
	m, err := resolveMap(args[0])
	if err != nil {
		fail("%v", err)
	}
	if err := mapfile.Save(args[1], m, alphabet()); err != nil {
		fail("%v", err)
	}
	logger.Info("map written", "id", m.ID, "path", args[1])
	fmt.Println(args[1])
}
