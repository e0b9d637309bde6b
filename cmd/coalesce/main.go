// Package main provides the coalesce demo CLI: it samples coalescent
// genealogies, renders them as interactive HTML charts, and compares
// Monte Carlo statistics against closed-form coalescent theory. The
// simulation library itself stays free of any rendering or aggregation;
// everything of that kind lives here.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coalesce",
		Short: "n-coalescent simulation demos",
		Long: `coalesce drives the coalescence simulation library.

Commands:
  genealogy   Sample one genealogy and render lineage/group-size charts
  stats       Compare Monte Carlo statistics against coalescent theory`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newGenealogyCmd(),
		newStatsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
