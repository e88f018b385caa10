package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/precision-drop/internal/app"
	"github.com/vovakirdan/precision-drop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate configuration",
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after the search order and --difficulty are
applied. Search order: --config, ~/.precision-drop/configs/drop.yaml,
./configs/drop.yaml, then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a configuration file",
	Long:  `Validate a configuration file, including the weighted gap table sum.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cfg config.Config
			err error
		)
		if len(args) == 1 {
			cfg, err = config.LoadFile(args[0])
		} else {
			cfg, err = loadConfig()
		}
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := app.GapTable(cfg).Validate(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configValidateCmd)
}
