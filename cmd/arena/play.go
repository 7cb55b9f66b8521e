package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/platform/tui"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagName    string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round in this terminal.

Controls:
  WASD/Arrows    - Move (directions combine; diagonals are not faster)
  Mouse          - Aim
  J/L            - Rotate aim without a mouse
  Space/Click    - Fire
  P/Esc          - Pause
  R              - Restart (after game over)
  Ctrl+S         - Save a text screenshot to ~/.arena/screenshots
  Q/Ctrl+C       - Quit

Examples:
  arena play
  arena play --name neo
  arena play --seed 42
  arena play --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", os.Getenv("USER"), "Player name stored with scores")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.arena/arena.log", "Where to write logs while the game owns the terminal")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := validateFPS(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := playLogger()
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Open score storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		store = nil
	}

	runErr := tui.Run(cfg, store, rt, flagName, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// playLogger logs to a file because stderr belongs to the alternate screen.
// Logging is discarded when the file cannot be opened.
func playLogger() (*log.Logger, func()) {
	path := expandHome(flagLogFile)
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[1:])
}
