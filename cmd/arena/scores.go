package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arena/internal/games/arena"
	"github.com/vovakirdan/tui-arena/internal/platform/tui"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
	flagRun         string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

With --interactive (and a terminal on stdout) the scores open in a
scrollable table.

Examples:
  arena scores
  arena scores --limit 25
  arena scores --interactive
  arena scores --run 0b7c2f7e-3c1a-4d0e-9a55-2f1f0c7a9e11
  arena scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "Show a single run by its ID (logged when the run ends)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(arena.ID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagRun != "" {
		return printRun(os.Stdout, store, flagRun)
	}

	if flagInteractive && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(os.Stdout, store, flagLimit)
}

// printScores writes the plain-text score listing.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(arena.ID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", arena.Title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'arena play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Kills", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		played := e.Duration.Round(time.Second)
		fmt.Fprintf(w, "  %-4d  %-12s  %-8d  %-5d  %-6s  %s\n",
			i+1, player, e.Score, e.Kills, played, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(arena.ID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Runs: %d  Total kills: %d\n", stats.HighScore, stats.RunsCount, stats.TotalKills)
	}
	return nil
}

// printRun writes the details of one recorded run.
func printRun(w io.Writer, store *storage.Store, id string) error {
	runID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid run ID %q: %w", id, err)
	}

	e, err := store.ScoreByRun(runID)
	if err != nil {
		return fmt.Errorf("retrieving run: %w", err)
	}
	if e == nil {
		return fmt.Errorf("run %s not found", runID)
	}

	player := e.Player
	if player == "" {
		player = "-"
	}
	fmt.Fprintf(w, "Run     %s\n", e.RunID)
	fmt.Fprintf(w, "Player  %s\n", player)
	fmt.Fprintf(w, "Score   %d\n", e.Score)
	fmt.Fprintf(w, "Kills   %d\n", e.Kills)
	fmt.Fprintf(w, "Time    %s\n", e.Duration.Round(time.Second))
	fmt.Fprintf(w, "Date    %s\n", e.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
