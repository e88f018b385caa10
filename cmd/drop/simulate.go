package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/precision-drop/internal/sim"
	"github.com/vovakirdan/precision-drop/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagAccuracy float64
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the auto-pilot headless",
	Long: `Run one or more games with the auto-pilot and print a summary per run.

The bot turns the tower toward the widest gap of the next ring. With
--accuracy below 1 it sometimes commits to a random angle instead.

Examples:
  drop simulate
  drop simulate --runs 50 --accuracy 0.8
  drop simulate --seed 42 --max-ticks 36000 --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 60*60*5, "Tick limit per run (0 = until game over)")
	simulateCmd.Flags().Float64Var(&flagAccuracy, "accuracy", -1, "Bot accuracy 0..1 (default from config)")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Store each run in the runs database")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagAccuracy >= 0 {
		cfg.Sim.BotAccuracy = flagAccuracy
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var store *storage.Store
	if flagSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s  %-7s  %-7s  %-8s  %-8s  %-7s  %s\n", "Run", "Score", "Passes", "Smashes", "Bounces", "Streak", "Time")
	fmt.Fprintf(out, "  %-4s  %-7s  %-7s  %-8s  %-8s  %-7s  %s\n", "---", "-----", "------", "-------", "-------", "------", "----")

	total := 0
	for i := 0; i < flagRuns; i++ {
		seed := flagSeed
		if seed != 0 {
			seed += int64(i)
		}
		session, err := sim.NewSession(sim.Options{
			Config:    cfg,
			Seed:      seed,
			Strict:    flagStrict,
			AutoPilot: true,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		st, runErr := session.Run(ctx, flagMaxTicks)
		elapsed := session.Elapsed().Round(time.Millisecond)
		fmt.Fprintf(out, "  %-4d  %-7d  %-7d  %-8d  %-8d  %-7d  %s\n",
			i+1, st.Score, st.Passes, st.Smashes, st.Bounces, session.BestStreak(), elapsed)
		total += st.Score

		if store != nil && st.Score > 0 {
			if _, err := store.SaveRun(storage.RunEntry{
				Mode:       storage.ModeSimulate,
				Rule:       session.Game().Flow.Rule().ID(),
				Score:      st.Score,
				Passes:     st.Passes,
				Smashes:    st.Smashes,
				Bounces:    st.Bounces,
				BestStreak: session.BestStreak(),
				Duration:   session.Elapsed(),
				Seed:       seed,
			}); err != nil {
				logger.Warn("cannot save run", "run", i+1, "err", err)
			}
		}
		if errors.Is(runErr, context.Canceled) {
			fmt.Fprintln(out, "\nInterrupted.")
			return nil
		}
		if runErr != nil {
			return runErr
		}
	}

	if flagRuns > 1 {
		fmt.Fprintf(out, "\nAverage score: %.1f\n", float64(total)/float64(flagRuns))
	}
	return nil
}
