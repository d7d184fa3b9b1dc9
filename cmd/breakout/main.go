// breakout is a terminal brick breaker.
//
// Usage:
//
//	breakout play            - Play in this terminal
//	breakout serve           - Start SSH server for remote play
//	breakout config          - Print the effective configuration
//	breakout list            - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Break bricks in your terminal",
	Long: `Breakout is a terminal brick breaker. Bounce the ball off the paddle
and clear all sixty bricks without letting it past the bottom edge.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  breakout play
  breakout play --difficulty hard
  breakout serve --ssh :2222
  breakout config > ~/.breakout/breakout.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game configuration from the global flags.
func loadConfig() (config.BreakoutConfig, config.Source, error) {
	cfg, source, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// setupGame loads the configuration and hands it to the game package.
func setupGame(logger *log.Logger) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	breakout.SetConfig(cfg)
	logger.Debug("config loaded", "source", source, "difficulty", flagDifficulty)
	return nil
}

// parseLogLevel reads the --log-level flag.
func parseLogLevel() (log.Level, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return level, nil
}
