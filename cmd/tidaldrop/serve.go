package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tidal-drop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tidal Drop SSH server",
	Long: `Start an SSH server that lets users connect and surf.

Each SSH connection gets its own independent game.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tidaldrop/host_key

Examples:
  tidaldrop serve                           # Listen on :23234 with auto-generated key
  tidaldrop serve --ssh :2222               # Listen on port 2222
  tidaldrop serve --host-key ./my_host_key  # Use specific host key
  tidaldrop serve --difficulty hard         # Every session surfs on hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom surf config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger().WithPrefix("tidaldrop-ssh")

	surfCfg, preset, err := loadSurfConfig()
	if err != nil {
		return err
	}

	store, board, recorder := openScoreStore(logger, surfCfg.Scoring.LeaderboardSize)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Surf:        surfCfg,
		Difficulty:  string(preset),
	}

	server, err := tui.NewSSHServer(cfg, board, recorder, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Tidal Drop SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
