// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config defines the engine's construction options and the
// validation that must pass before those options ever reach the
// replica state machine.
package config

import "github.com/bftlab/agree/types"

// Mode selects the network abstraction a scenario runs against.
type Mode int

const (
	// ReliableOrdered delivers every sent message exactly once, in
	// send order, per (src, dst) link. No drops.
	ReliableOrdered Mode = iota
	// LossyUnordered delivers in arbitrary order with no duplication,
	// dropping up to MaxDrops in-flight messages.
	LossyUnordered
)

func (m Mode) String() string {
	switch m {
	case ReliableOrdered:
		return "ReliableOrdered"
	case LossyUnordered:
		return "LossyUnordered"
	default:
		return "UnknownMode"
	}
}

// Options is the full set of recognized engine construction options.
type Options struct {
	// N is the number of replicas. Must satisfy N >= 2F+1.
	N int
	// F is the Byzantine tolerance; sets quorum = 2F+1.
	F int
	// FaultyIDs is the subset of [0,N) marked Failed at birth. Must
	// satisfy len(FaultyIDs) <= F.
	FaultyIDs []int
	// NetworkMode selects ReliableOrdered or LossyUnordered delivery.
	NetworkMode Mode
	// MaxDrops bounds drops in LossyUnordered mode; unused otherwise.
	MaxDrops int
	// InitialProposer is the node whose on_start issues the initial
	// Propose broadcast.
	InitialProposer int
	// InitialValue is the value the proposer proposes.
	InitialValue types.Value
	// MaxPhase bounds the driver's state-space search depth. It is a
	// model-checking artifact, not a protocol field.
	MaxPhase int
}

// Quorum returns 2F+1 for these options.
func (o Options) Quorum() int {
	return 2*o.F + 1
}

// IsFaulty reports whether node id is in FaultyIDs.
func (o Options) IsFaulty(id int) bool {
	for _, f := range o.FaultyIDs {
		if f == id {
			return true
		}
	}
	return false
}
