// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package network implements the two delivery abstractions the driver
// drives scenarios against: a reliable FIFO-per-link network with no
// drops, and a lossy, unordered, non-duplicating network bounded by a
// drop budget. Both forbid duplication: a message is delivered at
// most once, or dropped, never both.
package network

import (
	"fmt"

	"github.com/bftlab/agree/config"
	"github.com/bftlab/agree/types"
)

// Network is the interface the driver mutates. The driver is the sole
// mutator; replicas never see it directly.
type Network interface {
	// Send enqueues msgs as newly in-flight messages.
	Send(msgs ...types.Message)
	// InFlight returns the in-flight messages currently eligible for
	// delivery, in a stable order (insertion order) so a scenario
	// driver's exploration is reproducible given a deterministic choice
	// function. In ReliableOrdered mode that is only the head of each
	// (src, dst) link's queue; in LossyUnordered mode it is every
	// in-flight message.
	InFlight() []types.Message
	// Deliver removes m from the in-flight set. The caller (the
	// driver) is responsible for handing m to its destination
	// replica; Deliver only retires the message from the network.
	Deliver(m types.Message) error
	// Drop removes m from the in-flight set and counts it against the
	// drop budget. Returns an error if dropping would exceed the
	// budget (fail-closed) or if the mode forbids drops.
	Drop(m types.Message) error
	// Drops returns the number of messages dropped so far.
	Drops() int
	// Mode reports which delivery mode this network implements.
	Mode() config.Mode
	// Clone returns an independent copy, so the driver can branch a
	// state-space search over this network's in-flight set without one
	// branch's deliveries or drops affecting another's.
	Clone() Network
}

// New constructs a Network for the given mode. maxDrops is only
// consulted in LossyUnordered mode.
func New(mode config.Mode, maxDrops int) Network {
	switch mode {
	case config.ReliableOrdered:
		return newReliable()
	case config.LossyUnordered:
		return newLossy(maxDrops)
	default:
		panic(fmt.Sprintf("network: unknown mode %v", mode))
	}
}

// link identifies a FIFO queue between an ordered pair of nodes.
type link struct {
	src, dst types.NodeID
}

// reliable is FIFO per (src, dst) link; nothing is ever dropped.
type reliable struct {
	queues map[link][]types.Message
	order  []types.Message // stable enumeration order across all queues
}

func newReliable() *reliable {
	return &reliable{queues: make(map[link][]types.Message)}
}

func (r *reliable) Send(msgs ...types.Message) {
	for _, m := range msgs {
		l := link{m.Src, m.Dst}
		r.queues[l] = append(r.queues[l], m)
		r.order = append(r.order, m)
	}
}

// InFlight returns only the message at the head of each link's queue:
// FIFO ordering means a later message on the same link is not yet
// eligible for delivery.
func (r *reliable) InFlight() []types.Message {
	heads := make([]types.Message, 0, len(r.queues))
	for _, m := range r.order {
		l := link{m.Src, m.Dst}
		q := r.queues[l]
		if len(q) > 0 && q[0] == m {
			heads = append(heads, m)
		}
	}
	return heads
}

func (r *reliable) Deliver(m types.Message) error {
	return r.pop(m)
}

func (r *reliable) Drop(m types.Message) error {
	return errNoDropsInReliableMode
}

func (r *reliable) Drops() int { return 0 }

func (r *reliable) Mode() config.Mode { return config.ReliableOrdered }

func (r *reliable) Clone() Network {
	queues := make(map[link][]types.Message, len(r.queues))
	for l, q := range r.queues {
		cp := make([]types.Message, len(q))
		copy(cp, q)
		queues[l] = cp
	}
	order := make([]types.Message, len(r.order))
	copy(order, r.order)
	return &reliable{queues: queues, order: order}
}

func (r *reliable) pop(m types.Message) error {
	l := link{m.Src, m.Dst}
	q := r.queues[l]
	if len(q) == 0 || q[0] != m {
		return errNotAtHeadOfLink
	}
	r.queues[l] = q[1:]
	for i, o := range r.order {
		if o == m {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// lossy is bag semantics: any in-flight message may be delivered or
// dropped in any order, with no duplication. Drops are bounded by
// maxDrops and fail-closed once the budget is exhausted.
type lossy struct {
	inFlight []types.Message
	maxDrops int
	drops    int
}

func newLossy(maxDrops int) *lossy {
	return &lossy{maxDrops: maxDrops}
}

func (l *lossy) Send(msgs ...types.Message) {
	l.inFlight = append(l.inFlight, msgs...)
}

func (l *lossy) InFlight() []types.Message {
	out := make([]types.Message, len(l.inFlight))
	copy(out, l.inFlight)
	return out
}

func (l *lossy) Deliver(m types.Message) error {
	return l.remove(m)
}

func (l *lossy) Drop(m types.Message) error {
	if l.drops >= l.maxDrops {
		return errDropBudgetExhausted
	}
	if err := l.remove(m); err != nil {
		return err
	}
	l.drops++
	return nil
}

func (l *lossy) Drops() int { return l.drops }

func (l *lossy) Mode() config.Mode { return config.LossyUnordered }

func (l *lossy) Clone() Network {
	inFlight := make([]types.Message, len(l.inFlight))
	copy(inFlight, l.inFlight)
	return &lossy{inFlight: inFlight, maxDrops: l.maxDrops, drops: l.drops}
}

func (l *lossy) remove(m types.Message) error {
	for i, o := range l.inFlight {
		if o == m {
			l.inFlight = append(l.inFlight[:i], l.inFlight[i+1:]...)
			return nil
		}
	}
	return errNotInFlight
}
