// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types defines the wire-level vocabulary shared by every layer
// of the agreement engine: node identifiers, the small enumerated value
// domain replicas agree on, message kinds, and replica phases.
package types

import "fmt"

// NodeID is a dense small integer in [0, n) used both as a routing
// address and as an index into the driver's replica vector. It is
// deliberately not a cryptographic identifier: the protocol addresses
// replicas by position in an owned array, never by pointer or handle.
type NodeID int

// Value is an element of a finite enumerated domain. At least two
// distinct values are required to make agreement non-trivial.
type Value uint8

// NoValue is the sentinel meaning "no value accepted yet". It is never
// a legal decision.
const NoValue Value = 0

// Values usable as proposals. Extend this list (and NumValues) to grow
// the domain; the tally arrays size themselves from NumValues.
const (
	V1 Value = iota + 1
	V2
	V3
)

// NumValues bounds the Value ordinal space, including the NoValue
// sentinel at index 0. Tally arrays are sized to this constant instead
// of a hashed map, per the replica record's array-indexed tally design.
const NumValues = 4

// Valid reports whether v is a value a replica could legally accept
// (i.e. not the sentinel and within the declared domain).
func (v Value) Valid() bool {
	return v > NoValue && int(v) < NumValues
}

func (v Value) String() string {
	switch v {
	case NoValue:
		return "NoValue"
	case V1:
		return "V1"
	case V2:
		return "V2"
	case V3:
		return "V3"
	default:
		return fmt.Sprintf("Value(%d)", uint8(v))
	}
}

// Kind is the closed set of message kinds the protocol exchanges.
// Exhaustiveness over Kind must be a compile-time property of every
// handler switch; open dispatch over message kinds is rejected.
type Kind uint8

const (
	Propose Kind = iota
	Prepare
	Commit
	Decide
)

func (k Kind) String() string {
	switch k {
	case Propose:
		return "Propose"
	case Prepare:
		return "Prepare"
	case Commit:
		return "Commit"
	case Decide:
		return "Decide"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Message is a point-to-point protocol message. A broadcast is n
// Messages sharing Kind, Src and Value with distinct Dst values.
type Message struct {
	Kind  Kind
	Src   NodeID
	Dst   NodeID
	Value Value
}

func (m Message) String() string {
	return fmt.Sprintf("%s(%s) %d->%d", m.Kind, m.Value, m.Src, m.Dst)
}

// Broadcast returns one Message per recipient in dsts, sharing kind,
// src and value. Every protocol broadcast in this engine includes the
// sender itself in dsts (see replica.Handle); there is no separate
// self-delivery path.
func Broadcast(kind Kind, src NodeID, value Value, dsts []NodeID) []Message {
	msgs := make([]Message, len(dsts))
	for i, dst := range dsts {
		msgs[i] = Message{Kind: kind, Src: src, Dst: dst, Value: value}
	}
	return msgs
}

// Phase is the 5-element ordered enumeration a replica's lifecycle
// moves through. Transitions are monotone except that Failed is
// absorbing and is only ever set once, at construction.
type Phase uint8

const (
	Init Phase = iota
	Prepared
	Committed
	Decided
	Failed
)

func (p Phase) String() string {
	switch p {
	case Init:
		return "Init"
	case Prepared:
		return "Prepared"
	case Committed:
		return "Committed"
	case Decided:
		return "Decided"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Valid reports whether p is one of the five declared phases.
func (p Phase) Valid() bool {
	switch p {
	case Init, Prepared, Committed, Decided, Failed:
		return true
	default:
		return false
	}
}

var phaseRank = map[Phase]int{Init: 0, Prepared: 1, Committed: 2, Decided: 3}

// Before reports whether p strictly precedes q in the monotone order
// Init < Prepared < Committed < Decided. Failed is not ordered against
// the others: it is absorbing and set only at birth.
func (p Phase) Before(q Phase) bool {
	rp, okp := phaseRank[p]
	rq, okq := phaseRank[q]
	return okp && okq && rp < rq
}
