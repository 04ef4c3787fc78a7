// icemaze finds and plays shortest routes through ice sliding mazes.
//
// Usage:
//
//	icemaze solve <map>          - Print the shortest path through a map
//	icemaze list [dir]           - List maps in a directory
//	icemaze play <map>           - Play a map in the terminal
//	icemaze menu                 - Pick maps interactively
//	icemaze history [map-id]     - Show recent solver runs and best plays
//	icemaze convert <map> <out>  - Rewrite a map in another format
//	icemaze config               - Print the effective configuration
//	icemaze serve                - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.icemaze/config.yaml)
//	--db <path>         - History database (overrides db_path)
//	--maps <dir>        - Maps directory (overrides maps_dir)
//	--log-level <lvl>   - debug, info, warn or error (overrides log_level)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/icemaze/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagMapsDir  string
	flagLogLevel string

	// Set by loadSettings in PersistentPreRunE.
	settings config.Config
	logger   *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "icemaze",
	Short: "Ice maze solver - shortest sliding routes in your terminal",
	Long: `icemaze solves ice sliding mazes: on ice you keep sliding until a wall
or solid ground stops you. It prints the route with the fewest moves,
lets you play maps yourself and keeps a history of runs and records.

Available commands:
  solve    - Print the shortest path through a map
  list     - Show the maps in a directory
  play     - Play a map
  menu     - Interactive map picker
  history  - Recent solver runs and best plays
  convert  - Rewrite a map as text or YAML, optionally zstd-compressed
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  icemaze solve maps/lake.txt
  icemaze solve lake --show
  icemaze list ./maps
  icemaze play lake
  icemaze serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps", "", "Maps directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings reads the config, applies flag overrides and builds the logger.
func loadSettings(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagMapsDir != "" {
		cfg.MapsDir = flagMapsDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "icemaze",
		Level:           level,
	})
	settings = cfg
	return nil
}

// fail prints an error the way every command does and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
