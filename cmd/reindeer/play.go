package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reindeer-chase/internal/config"
	"github.com/vovakirdan/reindeer-chase/internal/core"
	"github.com/vovakirdan/reindeer-chase/internal/games/chase"
	"github.com/vovakirdan/reindeer-chase/internal/platform/tui"
	"github.com/vovakirdan/reindeer-chase/internal/registry"
	"github.com/vovakirdan/reindeer-chase/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Reindeer Chase",
	Long: `Start a session in this terminal.

Controls:
  Space/Up/W - Jump (also starts and restarts)
  Enter      - Start
  R          - Restart after a run ends
  Ctrl+S     - Save a screenshot to ~/.reindeer/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, gentle ramp
  normal - Configured values
  hard   - Faster start, steep ramp, denser canes
  fixed  - No progression, speed stays at the start value

Examples:
  reindeer play
  reindeer play --difficulty easy
  reindeer play --config ./my-chase.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger("reindeer")

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}
	if flagConfig != "" {
		if _, err := config.LoadChase(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	chase.SetConfigPath(flagConfig)
	chase.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The game still works without a leaderboard
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.Options{
		Difficulty: flagDifficulty,
		Logger:     logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
