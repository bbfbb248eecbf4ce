// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package driver

import (
	"fmt"

	"github.com/bftlab/agree/config"
	"github.com/bftlab/agree/internal/logging"
	"github.com/bftlab/agree/types"
)

// SweepCase names one point in the combination space a sweep explores.
type SweepCase struct {
	N        int
	F        int
	Mode     config.Mode
	MaxDrops int
}

func (c SweepCase) String() string {
	return fmt.Sprintf("N=%d,F=%d,Mode=%s,MaxDrops=%d", c.N, c.F, c.Mode, c.MaxDrops)
}

// SweepResult pairs a case with the Run outcome it produced.
type SweepResult struct {
	Case   SweepCase
	Result *Result
}

// Sweep runs the driver once per combination of nodeCounts x
// faultyCounts x modes x dropBudgets, skipping any combination
// config.Validate rejects rather than failing the whole sweep. This is
// the "driver that sweeps across num_nodes x faulty_count x
// network_kind" spec.md scopes out of the core: it is additive over
// the core's own config.Options and driver.Result, consumed by
// cmd/agree rather than depended on by replica/quorum/network/safety.
func Sweep(nodeCounts, faultyCounts []int, modes []config.Mode, dropBudgets []int, maxPhase int, log logging.Logger) []SweepResult {
	var results []SweepResult
	for _, n := range nodeCounts {
		for _, f := range faultyCounts {
			for _, mode := range modes {
				for _, drops := range dropBudgets {
					o := config.Options{
						N:               n,
						F:               f,
						FaultyIDs:       trailingFaultyIDs(n, f),
						NetworkMode:     mode,
						MaxDrops:        drops,
						InitialProposer: 0,
						InitialValue:    types.V1,
						MaxPhase:        maxPhase,
					}
					if vr := config.Validate(o); !vr.Valid {
						continue
					}
					results = append(results, SweepResult{
						Case:   SweepCase{N: n, F: f, Mode: mode, MaxDrops: drops},
						Result: Run(o, log),
					})
				}
			}
		}
	}
	return results
}

// trailingFaultyIDs designates the last f node ids as faulty, leaving
// node 0 — the sweep's fixed InitialProposer — always honest.
func trailingFaultyIDs(n, f int) []int {
	ids := make([]int, 0, f)
	for id := n - f; id < n; id++ {
		if id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
