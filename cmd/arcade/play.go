package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetris-arcade/internal/config"
	"github.com/vovakirdan/tetris-arcade/internal/platform/tui"
	"github.com/vovakirdan/tetris-arcade/internal/storage"
)

// minTermWidth and minTermHeight are the smallest dimensions that fit the
// board, its border, and the side panel without Bubble Tea's renderer
// wrapping lines.
const (
	minTermWidth  = 40
	minTermHeight = 26
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris locally in this terminal",
	Long: `Start an interactive, local Tetris game.

Controls:
  Left/Right/A/D  - Move
  Up/X            - Rotate clockwise
  Z               - Rotate counter-clockwise
  Down/S          - Soft drop
  Space           - Hard drop
  C/Shift+Tab     - Hold
  R               - Restart (after top out)
  Q/Ctrl+C        - Quit

Examples:
  arcade play
  arcade play --seed 42
  arcade play --config ./tetris.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < minTermWidth || h < minTermHeight) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, smaller than the recommended %dx%d; the board may not render cleanly.\n", w, h, minTermWidth, minTermHeight)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(cfg.ToEngineConfig(), store, flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
