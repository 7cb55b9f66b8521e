// arena is a terminal arena shooter: move, aim and fire at an enemy that
// tracks you and shoots back.
//
// Usage:
//
//	arena play               - Play a round in this terminal
//	arena serve              - Start SSH server for remote play
//	arena scores             - Show high scores
//	arena config             - Print the effective game config
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.arena/scores.db)
//	--config <path>  - Use a custom arena config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "TUI Arena - a top-down shooter in your terminal",
	Long: `TUI Arena is a single-player arena shooter for the terminal.
Move with WASD, aim with the mouse (or j/l), and fire with space or a click.
The enemy tracks you and fires back; every kill respawns it elsewhere.

Available commands:
  play     - Play a round in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game config

Examples:
  arena play
  arena play --seed 42 --fps 30
  arena serve --ssh :2222
  arena scores --interactive
  arena config > my-arena.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the CLI's stderr logger.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the arena config honouring --config.
func loadConfig() (config.ArenaConfig, error) {
	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// validateFPS rejects tick rates the driver loop cannot honour.
func validateFPS() error {
	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	return nil
}
