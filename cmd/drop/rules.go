package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/precision-drop/internal/registry"

	// Register streak rules.
	_ "github.com/vovakirdan/precision-drop/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List streak rules",
	Long:  `Shows the streak rules that flow.rule can select.`,
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, _ []string) {
	rules := registry.List()
	out := cmd.OutOrStdout()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, r := range rules {
		if len(r.ID) > maxIDLen {
			maxIDLen = len(r.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, r := range rules {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, r.ID, r.Title)
	}
}
