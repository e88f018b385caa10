// drop is a terminal precision-drop game: steer a rotating tower of rings so
// the ball falls through the gaps.
//
// Usage:
//
//	drop play                 - Play in the terminal
//	drop simulate             - Run the auto-pilot headless
//	drop scores [mode]        - Show the best runs
//	drop rules                - List streak rules
//	drop config print         - Print the effective configuration
//	drop config validate      - Validate a configuration file
//
// Global flags:
//
//	--seed <value>        - Set RNG seed (0 = random)
//	--db <path>           - Set database path (default: ~/.precision-drop/runs.db)
//	--config <path>       - Use a custom configuration file
//	--difficulty <preset> - easy, normal or hard
//	--strict              - Fail loudly on event sequencing bugs
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/precision-drop/internal/config"
	"github.com/vovakirdan/precision-drop/internal/logging"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagStrict     bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drop",
	Short: "Precision Drop - fall through the gaps of a rotating tower",
	Long: `Precision Drop is a terminal game: a ball falls down a tower of rings,
you rotate the tower so it drops through the gaps. Solid segments bounce
the ball, red hazard segments end the run. Three clean passes in a row
smash the next ring for a bonus.

Available commands:
  play      - Play in the terminal
  simulate  - Run the auto-pilot without a terminal UI
  scores    - View the best runs
  rules     - List streak rules
  config    - Print or validate configuration

Examples:
  drop play
  drop play --difficulty hard
  drop simulate --runs 20 --seed 42
  drop scores
  drop config print > my-drop.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.precision-drop/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Panic on events for untracked obstacles")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.Preset(flagDifficulty)
		if !config.ValidPreset(preset) {
			return cfg, fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagStrict {
		cfg.Flow.Strict = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the root logger. Logs go to --log-file when set, else to
// fallback. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}
	logger, err := logging.New(w, logging.Options{
		Level:      flagLogLevel,
		Prefix:     "drop",
		Timestamps: true,
	})
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}
