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

func TestNewBroadcastsInitialProposeToEveryNode(t *testing.T) {
	require := require.New(t)
	o := config.Options{N: 3, F: 1, InitialProposer: 0, InitialValue: types.V1, MaxPhase: 10}
	state := New(o, logging.Discard())

	require.Len(state.Net.InFlight(), 3) // Propose addressed to every node, proposer included
	for _, m := range state.Net.InFlight() {
		require.Equal(types.Propose, m.Kind)
		require.Equal(types.NodeID(0), m.Src)
		require.Equal(o.InitialValue, m.Value)
	}
	// Nobody has accepted yet: the Propose is in flight, not yet delivered.
	_, have := state.Records[0].Accepted()
	require.False(have)
}

func TestEnabledOffersDropsOnlyWhenLossyAndBudgetRemains(t *testing.T) {
	require := require.New(t)
	reliable := config.Options{N: 3, F: 1, NetworkMode: config.ReliableOrdered, InitialValue: types.V1, MaxPhase: 10}
	state := New(reliable, logging.Discard())
	for _, e := range Enabled(state, reliable) {
		require.False(e.Dropped)
	}

	lossy := config.Options{N: 3, F: 1, NetworkMode: config.LossyUnordered, MaxDrops: 1, InitialValue: types.V1, MaxPhase: 10}
	state = New(lossy, logging.Discard())
	events := Enabled(state, lossy)
	var sawDrop bool
	for _, e := range events {
		if e.Dropped {
			sawDrop = true
		}
	}
	require.True(sawDrop)
}

func TestApplyDoesNotMutateInputState(t *testing.T) {
	require := require.New(t)
	o := config.Options{N: 3, F: 1, NetworkMode: config.ReliableOrdered, InitialValue: types.V1, MaxPhase: 10}
	state := New(o, logging.Discard())
	before := len(state.Net.InFlight())

	events := Enabled(state, o)
	_ = Apply(state, events[0], o, logging.Discard())

	require.Equal(before, len(state.Net.InFlight()))
	require.Equal(types.Init, state.Records[1].Phase)
}

func TestClassifyWedgeProposerFaulty(t *testing.T) {
	require := require.New(t)
	o := config.Options{N: 3, F: 1, FaultyIDs: []int{0}, InitialProposer: 0, InitialValue: types.V1, MaxPhase: 10}
	state := New(o, logging.Discard())
	require.Equal(ProposerFaulty, classifyWedge(state, o))
}

func TestClassifyWedgeDropsExhausted(t *testing.T) {
	require := require.New(t)
	o := config.Options{N: 4, F: 1, NetworkMode: config.LossyUnordered, MaxDrops: 1, InitialValue: types.V1, MaxPhase: 10}
	state := New(o, logging.Discard())
	events := Enabled(state, o)
	var dropEvent Event
	for _, e := range events {
		if e.Dropped {
			dropEvent = e
			break
		}
	}
	state = Apply(state, dropEvent, o, logging.Discard())
	require.Equal(DropsExhausted, classifyWedge(state, o))
}

func TestStateKeyIsStableUnderRederivation(t *testing.T) {
	require := require.New(t)
	o := config.Options{N: 3, F: 1, NetworkMode: config.ReliableOrdered, InitialValue: types.V1, MaxPhase: 10}
	a := New(o, logging.Discard())
	b := New(o, logging.Discard())
	require.Equal(stateKey(a), stateKey(b))
}
