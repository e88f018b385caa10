package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/platform/tui"
	"github.com/vovakirdan/precision-drop/internal/sim"
	"github.com/vovakirdan/precision-drop/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Left/A     - Rotate tower left
  Right/D    - Rotate tower right
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is set, so they do not draw over the
playfield.

Examples:
  drop play
  drop play --difficulty easy
  drop play --config ./my-drop.yaml --log-file drop.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Sim.TickRate,
		Seed:     flagSeed,
	}

	session, err := sim.NewSession(sim.Options{
		Config: cfg,
		Seed:   flagSeed,
		Strict: flagStrict,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	final, runErr := tui.Run(session, store, rc, logger)

	var best int
	if store != nil {
		best, _ = store.BestScore(storage.ModePlay)
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	fmt.Printf("Score: %d  Passes: %d  Smashes: %d  Best: %d\n", final.Score, final.Passes, final.Smashes, best)
	return nil
}
