// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package replica

import (
	"github.com/bftlab/agree/internal/logging"
	"github.com/bftlab/agree/quorum"
	"github.com/bftlab/agree/types"
)

// Handle delivers msg to r, updating r in place, and returns the
// messages r emits in response. A delivery is the atomic unit of
// execution, and no handler observes or mutates another replica's
// state. Handle does not copy r: a caller that needs the record as it
// was before the delivery (the driver's search) clones it first. Pass
// logging.Discard() when no log output is wanted.
//
// Faulty replicas short-circuit to no effect and no output for every
// message kind: they never send, never advance, never decide.
func Handle(r *Record, msg types.Message, peers []types.NodeID, log logging.Logger) []types.Message {
	if r.Faulty {
		return nil
	}
	if msg.Dst != r.ID {
		// The driver is responsible for routing; a handler only ever
		// sees messages addressed to itself. Defensive no-op rather
		// than a panic, since a misrouted delivery is a driver bug,
		// not a protocol event.
		return nil
	}

	switch msg.Kind {
	case types.Propose:
		return handlePropose(r, msg, peers, log)
	case types.Prepare:
		return handlePrepare(r, msg, peers, log)
	case types.Commit:
		return handleCommit(r, msg, peers, log)
	case types.Decide:
		return handleDecide(r, msg, log)
	default:
		log.Warn("dropping message of unknown kind", "kind", msg.Kind, "replica", r.ID)
		return nil
	}
}

// handlePropose implements spec.md 4.1 "On Propose(v)": the replica's
// only path to setting accepted.
func handlePropose(r *Record, msg types.Message, peers []types.NodeID, log logging.Logger) []types.Message {
	if r.Phase != types.Init {
		log.Debug("discarding stale propose", "replica", r.ID, "phase", r.Phase)
		return nil
	}
	if _, have := r.Accepted(); have {
		log.Debug("discarding duplicate propose", "replica", r.ID)
		return nil
	}

	r.accepted = msg.Value
	log.Info("accepted proposal, broadcasting prepare", "replica", r.ID, "value", msg.Value)
	// The Prepare broadcast below is addressed to r.ID too (see
	// types.Broadcast); r's own vote is tallied when that self-addressed
	// Prepare is delivered back to it, the same as any peer's vote.
	return types.Broadcast(types.Prepare, r.ID, msg.Value, peers)
}

// handlePrepare implements spec.md 4.1 "On Prepare(v)".
func handlePrepare(r *Record, msg types.Message, peers []types.NodeID, log logging.Logger) []types.Message {
	accepted, have := r.Accepted()
	if !have || accepted != msg.Value {
		// Prepares for any other value, including proposals this
		// replica never saw, are dropped silently.
		return nil
	}

	r.prepareTally[msg.Value]++

	if r.Phase == types.Init && quorum.Has(r.prepareTally[msg.Value], r.F) {
		r.Phase = types.Prepared
		log.Info("reached prepare quorum, broadcasting commit", "replica", r.ID, "value", msg.Value)
		// As with Prepare above, r's own Commit vote is tallied when its
		// self-addressed copy of this broadcast is delivered back to it.
		return types.Broadcast(types.Commit, r.ID, msg.Value, peers)
	}
	// Quorum was already crossed in a prior delivery, or not yet
	// reached: either way the Commit broadcast fires at most once.
	return nil
}

// handleCommit implements spec.md 4.1 "On Commit(v)". Per the spec's
// adopted Open Question resolution (see DESIGN.md), commits are only
// tallied once the replica has entered Prepared; commits arriving
// earlier are discarded, a known liveness pessimism under reordering.
func handleCommit(r *Record, msg types.Message, peers []types.NodeID, log logging.Logger) []types.Message {
	accepted, have := r.Accepted()
	if !have || accepted != msg.Value || r.Phase != types.Prepared {
		return nil
	}

	r.commitTally[msg.Value]++

	if quorum.Has(r.commitTally[msg.Value], r.F) {
		r.Phase = types.Committed
		log.Info("reached commit quorum, broadcasting decide", "replica", r.ID, "value", msg.Value)
		return types.Broadcast(types.Decide, r.ID, msg.Value, peers)
	}
	return nil
}

// handleDecide implements spec.md 4.1 "On Decide(v)". It emits no
// outbound messages: deciding is a terminal, purely local transition.
// A replica may only decide from Committed, i.e. only after it has
// itself reached commit quorum: a Decide delivered early (e.g. under
// reordering, before this replica's own commit tally closes) is
// discarded rather than honored, since honoring it would let a
// replica decide without ever having reached quorum itself.
func handleDecide(r *Record, msg types.Message, log logging.Logger) []types.Message {
	accepted, have := r.Accepted()
	if !have || accepted != msg.Value || r.Decided || r.Phase != types.Committed {
		return nil
	}

	r.Decided = true
	r.Phase = types.Decided
	log.Info("decided", "replica", r.ID, "value", msg.Value)
	return nil
}
