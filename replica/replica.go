// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package replica implements the per-node replica record and the pure
// state machine that advances it on message delivery.
package replica

import (
	"github.com/bftlab/agree/quorum"
	"github.com/bftlab/agree/types"
)

// Record is one node's view of the agreement instance. It is mutated
// only by its own handler on delivery of a message addressed to it,
// and owned exclusively by the driver for the duration of each
// handler call.
type Record struct {
	ID      types.NodeID
	Phase   types.Phase
	Faulty  bool
	F       int
	Decided bool

	// accepted holds the value this replica accepted from a Propose.
	// The zero value (types.NoValue) means empty.
	accepted types.Value

	// prepareTally and commitTally are indexed by Value ordinal
	// rather than keyed by a hashed map: the value domain is small
	// and enumerable, so an array sidesteps hashing the record
	// entirely. Entries only ever grow.
	prepareTally [types.NumValues]int
	commitTally  [types.NumValues]int
}

// New constructs a replica record. Faulty replicas start in the
// absorbing Failed phase and never leave it; this is the only point
// at which Faulty is set.
func New(id types.NodeID, f int, faulty bool) *Record {
	r := &Record{ID: id, F: f, Faulty: faulty}
	if faulty {
		r.Phase = types.Failed
	} else {
		r.Phase = types.Init
	}
	return r
}

// Clone returns an independent copy of r: the driver's state-space
// search branches on every enabled transition and each branch must
// mutate its own replica vector without aliasing the others.
func (r *Record) Clone() *Record {
	clone := *r
	return &clone
}

// Quorum returns 2F+1 for this replica.
func (r *Record) Quorum() int {
	return quorum.Threshold(r.F)
}

// Accepted returns the value this replica has accepted, and whether
// one has been accepted at all (the empty case is types.NoValue,
// false).
func (r *Record) Accepted() (types.Value, bool) {
	return r.accepted, r.accepted != types.NoValue
}

// PrepareTally returns the current Prepare tally for v.
func (r *Record) PrepareTally(v types.Value) int {
	return r.prepareTally[v]
}

// CommitTally returns the current Commit tally for v.
func (r *Record) CommitTally(v types.Value) int {
	return r.commitTally[v]
}

// Snapshot is an immutable copy of a Record's externally observable
// fields, safe to hand to the safety checker or to a trace without
// aliasing driver-owned state.
type Snapshot struct {
	ID       types.NodeID
	Phase    types.Phase
	Accepted types.Value
	Decided  bool
	Faulty   bool
	Commit   int // commit tally for Accepted, or 0 if Accepted is empty
}

// Snapshot captures the record's current state.
func (r *Record) Snapshot() Snapshot {
	v, _ := r.Accepted()
	commit := 0
	if v != types.NoValue {
		commit = r.CommitTally(v)
	}
	return Snapshot{
		ID:       r.ID,
		Phase:    r.Phase,
		Accepted: v,
		Decided:  r.Decided,
		Faulty:   r.Faulty,
		Commit:   commit,
	}
}
