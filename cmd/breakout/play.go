package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout in this terminal",
	Long: `Start a game of breakout.

Controls:
  Left/Right, A/D   - Move paddle (or move the mouse)
  Space/Enter       - Launch the ball (or click)
  P/Esc             - Pause
  R                 - Restart
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Default settings
  hard   - Faster ball, narrower paddle

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml
  breakout play --log-file ./breakout.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newPlayLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := setupGame(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create("breakout")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("game started", "game", game.ID(), "width", width, "height", height, "fps", flagFPS)
	if err := tui.Run(game, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// newPlayLogger logs to --log-file, or nowhere: the alt screen owns the terminal.
func newPlayLogger() (*log.Logger, func(), error) {
	level, err := parseLogLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})
	return logger, closeFn, nil
}
