// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package quorum implements the single voting-gate predicate the
// replica state machine consults at both the prepare and commit
// thresholds. It is deliberately the only place in the protocol where
// the Byzantine tolerance parameter f appears.
package quorum

// Threshold returns 2f+1, the minimum tally at which a voting gate
// fires. f is the maximum number of replicas the engine tolerates
// behaving adversarially.
func Threshold(f int) int {
	return 2*f + 1
}

// Has reports whether tally has reached the Byzantine quorum for f
// faults. This is the only gate the replica state machine may use to
// cross from Init to Prepared or from Prepared to Committed.
func Has(tally, f int) bool {
	return tally >= Threshold(f)
}

// SimpleMajority returns floor(n/2)+1, the ordinary majority
// threshold. It exists only to document, by contrast, why the replica
// state machine must never use it in place of Threshold: two simple
// majorities of n replicas may overlap in as few as one replica, and
// that replica may be faulty and vote on both sides, so a simple
// majority does not give Byzantine safety. Nothing
// in this engine calls SimpleMajority at a voting gate.
func SimpleMajority(n int) int {
	return n/2 + 1
}
