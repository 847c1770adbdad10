package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tidal-drop/internal/config"
	"github.com/vovakirdan/tidal-drop/internal/core"
	"github.com/vovakirdan/tidal-drop/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Surf in this terminal",
	Long: `Start surfing in the current terminal.

Controls:
  Space/Up/Click - Jump (also starts a run)
  Enter          - Start a run
  P              - Pause
  L/Tab          - Leaderboard (menu and game over)
  Q/Ctrl+C       - Quit

After a wipeout, type a name and press Enter to save the score,
or Esc to skip.

Difficulty options:
  easy   - Slow speed ramp, relaxed spawns
  normal - Default speed ramp
  hard   - Fast speed ramp, dense spawns
  fixed  - No speed ramp

Examples:
  tidaldrop play
  tidaldrop play --difficulty easy
  tidaldrop play --config ./my-surf.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom surf config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadSurfConfig loads the configuration and applies the difficulty preset.
func loadSurfConfig() (config.SurfConfig, config.DifficultyPreset, error) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.SurfConfig{}, "", fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SurfConfig{}, "", err
	}

	config.ApplyPreset(&cfg, preset)
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return cfg, preset, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, preset, err := loadSurfConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, board, recorder := openScoreStore(logger, cfg.Scoring.LeaderboardSize)
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "difficulty", preset, "seed", flagSeed, "size", fmt.Sprintf("%dx%d", width, height))

	err = tui.Run(tui.Options{
		Surf: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:      board,
		Recorder:   recorder,
		Difficulty: string(preset),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
