// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bftlab/agree/config"
	"github.com/bftlab/agree/driver"
	"github.com/bftlab/agree/internal/logging"
)

func sweepCmd() *cobra.Command {
	var (
		nodeCounts   string
		faultyCounts string
		modes        string
		dropBudgets  string
		maxPhase     int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the driver across num_nodes x faulty_count x network_kind x drop_budget",
		Long: `sweep expands --nodes, --faulty-counts, --networks, and --max-drops into
their full combination and runs the driver once per combination,
skipping any combination config.Validate rejects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := driver.Sweep(
				parseIntList(nodeCounts),
				parseIntList(faultyCounts),
				parseModeList(modes),
				parseIntList(dropBudgets),
				maxPhase,
				logging.Discard(),
			)
			printSweep(cmd, results)
			for _, r := range results {
				if r.Result.Violated {
					return fmt.Errorf("safety violation in case %s", r.Case)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&nodeCounts, "nodes", "4,5", "comma-separated n values to sweep")
	cmd.Flags().StringVar(&faultyCounts, "faulty-counts", "0,1,2", "comma-separated f values to sweep")
	cmd.Flags().StringVar(&modes, "networks", "reliable,lossy", "comma-separated network modes to sweep")
	cmd.Flags().StringVar(&dropBudgets, "max-drops", "0,1", "comma-separated drop budgets to sweep")
	cmd.Flags().IntVar(&maxPhase, "max-phase", 30, "maximum events (deliveries or drops) the search explores per path in each case")

	return cmd
}

func printSweep(cmd *cobra.Command, results []driver.SweepResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-40s %-10s %s\n", "case", "states", "outcome")
	for _, r := range results {
		outcome := "ok"
		switch {
		case r.Result.Violated:
			outcome = fmt.Sprintf("VIOLATION: %s", r.Result.Report.Violations[0])
		case r.Result.Wedged:
			outcome = fmt.Sprintf("wedged: %s", r.Result.WedgeReason)
		}
		fmt.Fprintf(out, "%-40s %-10d %s\n", r.Case, r.Result.StatesVisited, outcome)
	}
}

func parseModeList(s string) []config.Mode {
	parts := strings.Split(s, ",")
	modes := make([]config.Mode, 0, len(parts))
	for _, p := range parts {
		modes = append(modes, parseMode(strings.TrimSpace(p)))
	}
	return modes
}

