// tidaldrop is a terminal surfing arcade game: ride the wave, jump the hazards.
//
// Usage:
//
//	tidaldrop play             - Surf in this terminal
//	tidaldrop serve            - Start SSH server for remote play
//	tidaldrop scores           - Show the leaderboard and run statistics
//	tidaldrop config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible obstacle spawns
//	--db <path>         - Set database path (default: ~/.tidaldrop/scores.db)
//	--log-level <level> - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tidal-drop/internal/platform/tui"
	"github.com/vovakirdan/tidal-drop/internal/storage"
	"github.com/vovakirdan/tidal-drop/internal/surf"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tidaldrop",
	Short: "Tidal Drop - surf a wave in your terminal",
	Long: `Tidal Drop is a one-button surfing arcade game for the terminal.
Ride the wave, jump over rocks, buoys and mines, and chase the best score
while the sea speeds up.

Available commands:
  play     - Surf in this terminal
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  config   - Print the default configuration

Examples:
  tidaldrop play
  tidaldrop play --difficulty hard
  tidaldrop serve --ssh :2222
  tidaldrop scores --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tidaldrop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger shared by all subcommands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tidaldrop",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)

	return logger
}

// openScoreStore opens the SQLite store. If it cannot be opened the game
// still runs on an in-memory store; store is nil in that case.
func openScoreStore(logger *log.Logger, capacity int) (store *storage.Store, board surf.ScoreStore, recorder tui.RunRecorder) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "error", err)
		return nil, surf.NewMemoryStore(capacity), nil
	}

	store.SetCapacity(capacity)
	sb := storage.NewScoreBoard(store, logger)
	return store, sb, sb
}
