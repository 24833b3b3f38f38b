package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/birthday-runner/internal/config"
	"github.com/vovakirdan/birthday-runner/internal/core"
	"github.com/vovakirdan/birthday-runner/internal/games/runner"
	"github.com/vovakirdan/birthday-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W/Enter/Click  - Start, jump, return to title after the game ends
  P                       - Pause
  R                       - Return to title (after the game ends)
  Q/Ctrl+C                - Quit

Examples:
  runner play
  runner play --fps 30
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := openLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closeLog()

	cfg, source, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(runner.New(cfg), rt, logger); err != nil {
		logger.Error("program failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
