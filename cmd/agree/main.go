// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agree",
	Short: "Scenario harness for the three-phase agreement engine",
	Long: `agree drives the Propose/Prepare/Commit/Decide engine against
hand-picked or swept configurations, checking Agreement, Validity,
Integrity, and NoPrematureDecision on every state it reaches.`,
}

func main() {
	rootCmd.AddCommand(runCmd(), sweepCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
