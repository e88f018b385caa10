package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/precision-drop/internal/platform/tui"
	"github.com/vovakirdan/precision-drop/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [play|simulate]",
	Short: "Show the best runs",
	Long: `Display the top 10 runs for a mode (play by default).

Examples:
  drop scores
  drop scores simulate
  drop scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scoreboard UI")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := storage.ModePlay
	if len(args) == 1 {
		mode = args[0]
	}
	if mode != storage.ModePlay && mode != storage.ModeSimulate {
		return fmt.Errorf("unknown mode %q (expected play or simulate)", mode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(mode, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Best Runs - %s\n\n", mode)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'drop play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-7s  %-8s  %-6s  %s\n", "Rank", "Score", "Passes", "Smashes", "Rule", "Date")
	fmt.Fprintf(out, "  %-4s  %-7s  %-7s  %-8s  %-6s  %s\n", "----", "-----", "------", "-------", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-7d  %-7d  %-8d  %-6s  %s\n",
			i+1, r.Score, r.Passes, r.Smashes, r.Rule, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(mode)
	if err == nil {
		fmt.Fprintf(out, "\nRuns: %d  Best: %d  Average: %.1f\n", stats.RunsCount, stats.HighScore, stats.AvgScore)
	}
	return nil
}
