// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bftlab/agree/config"
	"github.com/bftlab/agree/driver"
	"github.com/bftlab/agree/internal/logging"
	"github.com/bftlab/agree/types"
)

func runCmd() *cobra.Command {
	var (
		nodes     int
		tolerance int
		faultyIDs string
		mode      string
		maxDrops  int
		proposer  int
		value     int
		maxPhase  int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Explore every state reachable from a single scenario",
		Long: `run builds one engine configuration from its flags, explores every
global state reachable from on_start up to --max-phase events (deliveries
or drops) deep,
and reports the first safety violation or liveness stall found, if any.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := config.Options{
				N:               nodes,
				F:               tolerance,
				FaultyIDs:       parseIntList(faultyIDs),
				NetworkMode:     parseMode(mode),
				MaxDrops:        maxDrops,
				InitialProposer: proposer,
				InitialValue:    types.Value(value),
				MaxPhase:        maxPhase,
			}
			if vr := config.Validate(o); !vr.Valid {
				for _, e := range vr.Errors {
					fmt.Fprintf(cmd.OutOrStderr(), "config: %s\n", e.Error())
				}
				return fmt.Errorf("invalid configuration: %d violation(s)", len(vr.Errors))
			}

			log := logging.Discard()
			if verbose {
				log = logging.New()
			}
			result := driver.Run(o, log)
			printResult(cmd, o, result)
			if result.Violated {
				return fmt.Errorf("safety violation: %s", result.Report.Violations[0])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&nodes, "nodes", 5, "total number of replicas (n)")
	cmd.Flags().IntVar(&tolerance, "f", 2, "byzantine tolerance; quorum is 2f+1")
	cmd.Flags().StringVar(&faultyIDs, "faulty-ids", "", "comma-separated replica ids marked faulty at birth")
	cmd.Flags().StringVar(&mode, "network", "reliable", "network mode: reliable or lossy")
	cmd.Flags().IntVar(&maxDrops, "max-drops", 0, "drop budget in lossy mode")
	cmd.Flags().IntVar(&proposer, "proposer", 0, "initial proposer replica id")
	cmd.Flags().IntVar(&value, "value", int(types.V1), "initial proposed value ordinal")
	cmd.Flags().IntVar(&maxPhase, "max-phase", 30, "maximum events (deliveries or drops) the search explores per path")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log every delivery and transition")

	return cmd
}

func printResult(cmd *cobra.Command, o config.Options, result *driver.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "n=%d f=%d quorum=%d mode=%s max_drops=%d\n", o.N, o.F, o.Quorum(), o.NetworkMode, o.MaxDrops)
	fmt.Fprintf(out, "states visited: %d, max depth: %d\n", result.StatesVisited, result.MaxDepth)
	switch {
	case result.Violated:
		fmt.Fprintf(out, "SAFETY VIOLATION: %s\n", result.Report.Violations[0])
		fmt.Fprintf(out, "trace: %s\n", result.Trace)
	case result.Wedged:
		fmt.Fprintf(out, "wedged: %s\n", result.WedgeReason)
		fmt.Fprintf(out, "trace: %s\n", result.Trace)
	default:
		fmt.Fprintln(out, "no violation or stall found within the search bound")
	}
}

func parseMode(s string) config.Mode {
	if strings.EqualFold(s, "lossy") {
		return config.LossyUnordered
	}
	return config.ReliableOrdered
}

func parseIntList(s string) []int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
