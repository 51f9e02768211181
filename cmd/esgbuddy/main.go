// Package main provides the esgbuddy CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "esgbuddy",
		Short: "ESG scoring for GRI sustainability disclosures",
		Long: `esgbuddy scores a company's GRI-style sustainability disclosure document:
per-topic scores, SDG scores, an overall score, the GRI content index and
report quality metrics.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newComputeCmd(),
		newSeedCmd(),
		newPopulateCmd(),
		newHistoryCmd(),
		newMCPCmd(),
	)
	return rootCmd
}
