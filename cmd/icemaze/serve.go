package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/icemaze/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the icemaze SSH server",
	Long: `Start an SSH server where every connection gets the map picker.

Maps are read from the maps directory for each new session. Hand plays are
stored in the history database, so all users share one leaderboard.

Host key handling:
  - If --host-key (or ssh.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.icemaze/host_key

Examples:
  icemaze serve                           # Listen on :23235
  icemaze serve --ssh :2222               # Listen on port 2222
  icemaze serve --maps ./maps --db ./history.db

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	if settings.SSH.Address != "" {
		cfg.Address = settings.SSH.Address
	}
	cfg.HostKeyPath = settings.SSH.HostKey
	if settings.SSH.IdleTimeoutMinutes > 0 {
		cfg.IdleTimeout = time.Duration(settings.SSH.IdleTimeoutMinutes) * time.Minute
	}

	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	if settings.Play.TickRate > 0 {
		cfg.TickRate = settings.Play.TickRate
	}
	if settings.Play.AnimateMS > 0 {
		cfg.AnimateEvery = animateEvery()
	}
	cfg.MaxExpansions = settings.Solver.MaxExpansions
	cfg.Theme = settings.Theme.ReportTheme()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, mapsLoader(""), store, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting icemaze SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
