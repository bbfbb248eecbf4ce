// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package safety

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bftlab/agree/internal/logging"
	"github.com/bftlab/agree/replica"
	"github.com/bftlab/agree/types"
)

func decidedReplica(id types.NodeID, f int, v types.Value) *replica.Record {
	r := replica.New(id, f, false)
	peers := make([]types.NodeID, 2*f+1)
	for i := range peers {
		peers[i] = types.NodeID(i)
	}
	replica.Handle(r, types.Message{Kind: types.Propose, Src: id, Dst: id, Value: v}, peers, logging.Discard())
	// Every peer votes, id's own self-addressed copy of its broadcast
	// included: a replica's own vote is tallied by delivery, not seeded.
	for _, src := range peers {
		if r.Phase == types.Init {
			replica.Handle(r, types.Message{Kind: types.Prepare, Src: src, Dst: id, Value: v}, peers, logging.Discard())
		}
	}
	for _, src := range peers {
		if r.Phase == types.Prepared {
			replica.Handle(r, types.Message{Kind: types.Commit, Src: src, Dst: id, Value: v}, peers, logging.Discard())
		}
	}
	replica.Handle(r, types.Message{Kind: types.Decide, Src: id, Dst: id, Value: v}, peers, logging.Discard())
	return r
}

func TestCheckPassesOnAgreeingDecidedReplicas(t *testing.T) {
	require := require.New(t)

	r0 := decidedReplica(0, 1, types.V1)
	r1 := decidedReplica(1, 1, types.V1)
	report := Check([]*replica.Record{r0, r1}, 3)
	require.True(report.OK)
	require.Empty(report.Violations)
}

func TestCheckCatchesAgreementViolation(t *testing.T) {
	require := require.New(t)

	r0 := decidedReplica(0, 1, types.V1)
	r1 := decidedReplica(1, 1, types.V2)
	report := Check([]*replica.Record{r0, r1}, 3)
	require.False(report.OK)
	require.Len(report.Violations, 1)
	require.Equal("Agreement", report.Violations[0].Invariant)
}

func TestCheckCatchesIntegrityViolation(t *testing.T) {
	require := require.New(t)

	r := replica.New(0, 1, false)
	r.Decided = true // forced inconsistency: decided without phase=Decided
	report := Check([]*replica.Record{r}, 3)
	require.False(report.OK)
	found := false
	for _, v := range report.Violations {
		if v.Invariant == "Integrity" {
			found = true
		}
	}
	require.True(found)
}

func TestCheckCatchesNoPrematureDecision(t *testing.T) {
	require := require.New(t)

	r := replica.New(0, 1, false)
	peers := []types.NodeID{0, 1, 2}
	replica.Handle(r, types.Message{Kind: types.Propose, Src: 0, Dst: 0, Value: types.V1}, peers, logging.Discard())
	// Force Decided without ever reaching commit quorum.
	r.Phase = types.Decided
	r.Decided = true

	report := Check([]*replica.Record{r}, 3)
	require.False(report.OK)
	found := false
	for _, v := range report.Violations {
		if v.Invariant == "NoPrematureDecision" {
			found = true
		}
	}
	require.True(found)
}
