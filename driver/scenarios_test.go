// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bftlab/agree/config"
	"github.com/bftlab/agree/internal/logging"
	"github.com/bftlab/agree/types"
)

// requireAllHonestDecided asserts that every non-faulty replica ends
// Decided with value v in a deterministic run of o's scenario.
func requireAllHonestDecided(t *testing.T, result *Result, o config.Options, v types.Value) {
	t.Helper()
	// Run returns on the first violation, so reaching here with
	// Violated=false and Wedged=false means every frontier state it
	// stopped exploring was either beyond MaxPhase or fully decided.
	// Run's BFS frontier itself isn't re-exposed by Result, and a full
	// decision takes more than MaxPhase deliveries in these scenarios,
	// so the terminal content is confirmed by a direct, deterministic
	// simulation instead: deliver the first enabled event until nothing
	// is left in flight.
	log := logging.Discard()
	state := New(o, log)
	for {
		events := Enabled(state, o)
		if len(events) == 0 {
			break
		}
		state = Apply(state, events[0], o, log)
	}
	for _, r := range state.Records {
		if r.Faulty {
			continue
		}
		require.True(t, r.Decided, "replica %d did not decide", r.ID)
		require.Equal(t, types.Decided, r.Phase)
		accepted, _ := r.Accepted()
		require.Equal(t, v, accepted)
	}
}

func TestScenarioS1HappyPathReliableNoFaults(t *testing.T) {
	require := require.New(t)
	o := config.Options{
		N: 5, F: 2, NetworkMode: config.ReliableOrdered,
		InitialProposer: 0, InitialValue: types.V1, MaxPhase: 30,
	}
	result := Run(o, logging.Discard())
	require.False(result.Violated)
	require.False(result.Wedged)
	requireAllHonestDecided(t, result, o, types.V1)
}

func TestScenarioS2OneSilentByzantineNoSlack(t *testing.T) {
	require := require.New(t)
	o := config.Options{
		N: 5, F: 2, FaultyIDs: []int{4}, NetworkMode: config.ReliableOrdered,
		InitialProposer: 0, InitialValue: types.V1, MaxPhase: 30,
	}
	require.Equal(5, o.Quorum())

	result := Run(o, logging.Discard())
	require.False(result.Violated)
	require.True(result.Wedged)
	require.Equal(QuorumUnreachable, result.WedgeReason)
}

func TestScenarioS3SmallerQuorumSweetSpot(t *testing.T) {
	require := require.New(t)
	o := config.Options{
		N: 4, F: 1, FaultyIDs: []int{3}, NetworkMode: config.ReliableOrdered,
		InitialProposer: 0, InitialValue: types.V1, MaxPhase: 30,
	}
	require.Equal(3, o.Quorum())

	result := Run(o, logging.Discard())
	require.False(result.Violated)
	require.False(result.Wedged)
	requireAllHonestDecided(t, result, o, types.V1)
}

func TestScenarioS4ProposerIsNotNodeZero(t *testing.T) {
	require := require.New(t)
	o := config.Options{
		N: 4, F: 1, NetworkMode: config.ReliableOrdered,
		InitialProposer: 2, InitialValue: types.V2, MaxPhase: 30,
	}
	result := Run(o, logging.Discard())
	require.False(result.Violated)
	require.False(result.Wedged)
	requireAllHonestDecided(t, result, o, types.V2)
}

func TestScenarioS5LossyOneDrop(t *testing.T) {
	require := require.New(t)
	o := config.Options{
		N: 4, F: 1, NetworkMode: config.LossyUnordered, MaxDrops: 1,
		InitialProposer: 0, InitialValue: types.V1, MaxPhase: 30,
	}
	require.Equal(3, o.Quorum())

	result := Run(o, logging.Discard())
	// Every reachable schedule satisfies all four safety invariants,
	// whether or not the single permitted drop prevents a decision.
	require.False(result.Violated)
}

func TestScenarioS6LossyWithFaulty(t *testing.T) {
	require := require.New(t)
	o := config.Options{
		N: 5, F: 2, FaultyIDs: []int{4}, NetworkMode: config.LossyUnordered, MaxDrops: 1,
		InitialProposer: 0, InitialValue: types.V1, MaxPhase: 30,
	}
	require.Equal(5, o.Quorum())

	result := Run(o, logging.Discard())
	require.False(result.Violated)
	require.True(result.Wedged)
}
