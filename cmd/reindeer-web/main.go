// reindeer-web runs Reindeer Chase in an Ebitengine window. Build with
// GOOS=js GOARCH=wasm to play in the browser.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reindeer-chase/internal/config"
	"github.com/vovakirdan/reindeer-chase/internal/games/chase"
	"github.com/vovakirdan/reindeer-chase/internal/platform/web"
)

var (
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
)

var rootCmd = &cobra.Command{
	Use:   "reindeer-web",
	Short: "Reindeer Chase in a window",
	Long: `Open Reindeer Chase in a resizable window.

Controls:
  Space/Up/W, click or tap - Jump (also starts and restarts)
  Enter                    - Start
  R                        - Restart after a run ends`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().IntVar(&flagWidth, "width", 960, "Initial window width")
	rootCmd.Flags().IntVar(&flagHeight, "height", 540, "Initial window height")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reindeer-web",
	})

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	chase.SetConfigPath(flagConfig)
	chase.SetDifficultyPreset(flagDifficulty)

	ebiten.SetWindowTitle("Reindeer Chase")
	ebiten.SetWindowSize(flagWidth, flagHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	host := web.NewHost(chase.New(), flagSeed, logger)
	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("reindeer-web: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
