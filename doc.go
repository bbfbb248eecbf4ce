// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package agree implements a Byzantine fault tolerant agreement engine
derived from a simplified, single-instance, three-phase (Propose,
Prepare, Commit, Decide) protocol in the style of PBFT.

# Overview

A configured set of n replicas, up to f of which may be silently
Byzantine, agree on one value from a small enumerated domain. Replicas
advance through Init -> Prepared -> Committed -> Decided by exchanging
messages over one of two network abstractions:

  - ReliableOrdered: every message is delivered exactly once, in send
    order, per (src, dst) link.
  - LossyUnordered: messages may be delivered in any order or dropped,
    up to a fixed budget, never duplicated.

The only safety gate is a 2f+1 quorum: a replica only advances once it
has tallied 2f+1 matching votes for the same value.

# Exploring a scenario

	o := agree.Options{
		N: 5, F: 2,
		InitialProposer: 0, InitialValue: agree.V1,
		NetworkMode: agree.ReliableOrdered, MaxPhase: 30,
	}
	if vr := agree.Validate(o); !vr.Valid {
		log.Fatal(vr.Err())
	}
	result := agree.Run(o, agree.Discard())
	if result.Violated {
		log.Fatalf("safety violation: %s", result.Report.Violations[0])
	}

Run explores every global state reachable from on_start, breadth
first, so the first safety violation or liveness stall it reports is
reached by the shortest possible trace. See cmd/agree for a CLI built
on this same surface.

# Scope

This engine models a single agreement instance: no cryptography, no
view change, no persistence, no multi-round pipelining. See the
replica, quorum, network, adversary, driver, and safety packages for
the components this facade re-exports.
*/
package agree
