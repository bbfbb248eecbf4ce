// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package adversary implements the fault injector the scenario driver
// uses at construction: the silent Byzantine adversary this engine's
// safety invariants must hold against.
//
// A richer adversary (equivocation, lying) is an explicit future
// extension, not modeled here — see spec.md 4.4.
package adversary

import (
	"github.com/bftlab/agree/config"
	"github.com/bftlab/agree/replica"
	"github.com/bftlab/agree/types"
)

// Injector designates a subset of replicas as silently faulty at
// construction and never again; it holds no further behavior, since a
// silent Byzantine replica is defined entirely by what it never does
// (see replica.Handle's short-circuit for Faulty records).
type Injector struct {
	faulty map[types.NodeID]bool
}

// New records o.FaultyIDs as the designated faulty set and returns an
// Injector that can build a faulty-aware replica vector. It does not
// validate the ids against f or n: configuration errors per spec.md 7
// are the caller's responsibility via config.Validate, and this
// constructor assumes it has already been called.
func New(o config.Options) *Injector {
	faulty := make(map[types.NodeID]bool, len(o.FaultyIDs))
	for _, id := range o.FaultyIDs {
		faulty[types.NodeID(id)] = true
	}
	return &Injector{faulty: faulty}
}

// IsFaulty reports whether id was designated faulty at construction.
func (inj *Injector) IsFaulty(id types.NodeID) bool {
	return inj.faulty[id]
}

// BuildReplicas constructs the dense replica vector for n nodes,
// marking each id in the designated faulty set Failed at birth. The
// driver owns the returned slice for the remainder of the run.
func (inj *Injector) BuildReplicas(n, f int) []*replica.Record {
	records := make([]*replica.Record, n)
	for i := 0; i < n; i++ {
		id := types.NodeID(i)
		records[i] = replica.New(id, f, inj.IsFaulty(id))
	}
	return records
}

// Count returns the number of designated faulty replicas.
func (inj *Injector) Count() int {
	return len(inj.faulty)
}
