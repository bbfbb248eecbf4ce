// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package driver owns the global state no replica or network value
// owns itself: the replica vector, the network's in-flight set, and
// the exhaustive search over every state reachable from on_start. It
// is the only package in this module that mutates more than one
// replica at a time.
package driver

import (
	"fmt"
	"strings"

	"github.com/bftlab/agree/adversary"
	"github.com/bftlab/agree/config"
	"github.com/bftlab/agree/internal/logging"
	"github.com/bftlab/agree/network"
	"github.com/bftlab/agree/replica"
	"github.com/bftlab/agree/safety"
	"github.com/bftlab/agree/types"
)

// WedgeReason names why a run halted without every honest replica
// deciding, mirroring choices.Status's small closed enum with a
// String() method rather than a bare error string.
type WedgeReason uint8

const (
	NotWedged WedgeReason = iota
	DropsExhausted
	ProposerFaulty
	QuorumUnreachable
	NoEnabledTransitions
)

func (w WedgeReason) String() string {
	switch w {
	case NotWedged:
		return "NotWedged"
	case DropsExhausted:
		return "DropsExhausted"
	case ProposerFaulty:
		return "ProposerFaulty"
	case QuorumUnreachable:
		return "QuorumUnreachable"
	case NoEnabledTransitions:
		return "NoEnabledTransitions"
	default:
		return fmt.Sprintf("WedgeReason(%d)", uint8(w))
	}
}

// GlobalState is every replica's record plus the network's in-flight
// set at one point in a run. The driver is its sole owner; replicas
// and the network never see more of it than one delivery at a time.
type GlobalState struct {
	Records []*replica.Record
	Net     network.Network
}

// clone returns an independent copy so one branch of the search can
// diverge from another without aliasing shared state.
func (s GlobalState) clone() GlobalState {
	records := make([]*replica.Record, len(s.Records))
	for i, r := range s.Records {
		records[i] = r.Clone()
	}
	return GlobalState{Records: records, Net: s.Net.Clone()}
}

func (s GlobalState) allDecided() bool {
	for _, r := range s.Records {
		if !r.Faulty && !r.Decided {
			return false
		}
	}
	return true
}

func peerIDs(n int) []types.NodeID {
	peers := make([]types.NodeID, n)
	for i := range peers {
		peers[i] = types.NodeID(i)
	}
	return peers
}

// New builds the initial global state for o: every replica at birth,
// an empty network, and the on_start broadcast already in flight — the
// initial proposer's Propose is sent to every node, itself included, so
// every honest replica (not just the proposer) accepts the proposal and
// broadcasts its own Prepare once the search starts delivering.
func New(o config.Options, log logging.Logger) GlobalState {
	inj := adversary.New(o)
	records := inj.BuildReplicas(o.N, o.F)
	net := network.New(o.NetworkMode, o.MaxDrops)

	proposer := records[o.InitialProposer]
	net.Send(types.Broadcast(types.Propose, proposer.ID, o.InitialValue, peerIDs(o.N))...)
	return GlobalState{Records: records, Net: net}
}

// Event names one transition out of a state: delivering or dropping a
// specific in-flight message.
type Event struct {
	Message types.Message
	Dropped bool
}

func (e Event) String() string {
	if e.Dropped {
		return fmt.Sprintf("drop %s", e.Message)
	}
	return fmt.Sprintf("deliver %s", e.Message)
}

// Enabled returns every transition available from s: a delivery for
// every in-flight message, plus a drop for every in-flight message
// when the network is LossyUnordered and the drop budget is not yet
// exhausted.
func Enabled(s GlobalState, o config.Options) []Event {
	inFlight := s.Net.InFlight()
	events := make([]Event, 0, 2*len(inFlight))
	for _, m := range inFlight {
		events = append(events, Event{Message: m})
	}
	if s.Net.Mode() == config.LossyUnordered && s.Net.Drops() < o.MaxDrops {
		for _, m := range inFlight {
			events = append(events, Event{Message: m, Dropped: true})
		}
	}
	return events
}

// Apply returns the state that results from firing e in s. s itself
// is left untouched.
func Apply(s GlobalState, e Event, o config.Options, log logging.Logger) GlobalState {
	next := s.clone()
	if e.Dropped {
		_ = next.Net.Drop(e.Message)
		return next
	}
	_ = next.Net.Deliver(e.Message)
	r := next.Records[e.Message.Dst]
	out := replica.Handle(r, e.Message, peerIDs(o.N), log)
	next.Net.Send(out...)
	return next
}

// Result is the outcome of exploring every state reachable from
// on_start, up to o.MaxPhase events (deliveries or drops) deep.
type Result struct {
	StatesVisited int
	MaxDepth      int

	Violated bool
	Report   *safety.Report

	Wedged      bool
	WedgeReason WedgeReason

	// Trace is the shortest event sequence from on_start to the
	// reported state: to the first safety violation found, if
	// Violated, else to the first liveness stall found, if Wedged.
	Trace Trace
}

// Run explores every global state reachable from on_start for o,
// breadth-first so the first violation or stall reported is reached
// by the shortest possible trace. Exploration is bounded by o.MaxPhase
// events (deliveries or drops) per path and deduplicated against states already visited, so a
// network with no forward progress terminates rather than looping.
func Run(o config.Options, log logging.Logger) *Result {
	if log == nil {
		log = logging.Discard()
	}
	result := &Result{}
	quorum := o.Quorum()

	type frame struct {
		state GlobalState
		trace Trace
		depth int
	}

	initial := New(o, log)
	visited := map[string]bool{stateKey(initial): true}
	queue := []frame{{state: initial}}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		result.StatesVisited++
		if f.depth > result.MaxDepth {
			result.MaxDepth = f.depth
		}

		report := safety.Check(f.state.Records, quorum)
		if !report.OK {
			result.Violated = true
			result.Report = report
			result.Trace = f.trace
			return result
		}

		if f.depth >= o.MaxPhase {
			continue
		}

		events := Enabled(f.state, o)
		if len(events) == 0 {
			if !result.Wedged && !f.state.allDecided() {
				result.Wedged = true
				result.WedgeReason = classifyWedge(f.state, o)
				result.Trace = f.trace
			}
			continue
		}

		for _, e := range events {
			next := Apply(f.state, e, o, log)
			key := stateKey(next)
			if visited[key] {
				continue
			}
			visited[key] = true
			trace := make(Trace, len(f.trace), len(f.trace)+1)
			copy(trace, f.trace)
			trace = append(trace, e)
			queue = append(queue, frame{state: next, trace: trace, depth: f.depth + 1})
		}
	}

	return result
}

// classifyWedge attributes a terminal, not-fully-decided state to one
// of the four named causes spec.md 7 leaves open, in the order a
// human debugging a stalled run would check them.
func classifyWedge(s GlobalState, o config.Options) WedgeReason {
	if o.IsFaulty(o.InitialProposer) {
		return ProposerFaulty
	}
	if s.Net.Mode() == config.LossyUnordered && s.Net.Drops() > 0 && s.Net.Drops() >= o.MaxDrops {
		return DropsExhausted
	}
	honest := 0
	for _, r := range s.Records {
		if !r.Faulty {
			honest++
		}
	}
	if honest < o.Quorum() {
		return QuorumUnreachable
	}
	return NoEnabledTransitions
}

// stateKey canonicalizes a global state for the visited set: two
// states with identical replica snapshots and prepare tallies, the
// same drop count, and identical in-flight messages are the same state
// for search purposes, regardless of how they were reached.
func stateKey(s GlobalState) string {
	var b strings.Builder
	for _, r := range s.Records {
		snap := r.Snapshot()
		fmt.Fprintf(&b, "%d:%s:%s:%d:%d:%v|", snap.ID, snap.Phase, snap.Accepted, r.PrepareTally(snap.Accepted), snap.Commit, snap.Decided)
	}
	fmt.Fprintf(&b, "#%d#", s.Net.Drops())
	for _, m := range s.Net.InFlight() {
		fmt.Fprintf(&b, "%s;", m)
	}
	return b.String()
}
