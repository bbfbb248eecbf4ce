// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package agree provides a clean, single-import interface to the
// three-phase agreement engine: configuration, the scenario driver,
// and the safety checker, without requiring callers to import
// replica/network/quorum/adversary directly.
package agree

import (
	"github.com/bftlab/agree/config"
	"github.com/bftlab/agree/driver"
	"github.com/bftlab/agree/internal/logging"
	"github.com/bftlab/agree/safety"
	"github.com/bftlab/agree/types"
)

// Logger is the logging contract every component in this module
// depends on. Use logging.Discard() via this package's Discard, or
// logging.New() via NewLogger, to obtain one.
type Logger = logging.Logger

// Type aliases for a single-import experience.
type (
	Options          = config.Options
	ValidationError  = config.ValidationError
	ValidationResult = config.ValidationResult
	NetworkMode      = config.Mode

	GlobalState = driver.GlobalState
	Event       = driver.Event
	Trace       = driver.Trace
	Result      = driver.Result
	WedgeReason = driver.WedgeReason
	SweepCase   = driver.SweepCase
	SweepResult = driver.SweepResult

	Report    = safety.Report
	Violation = safety.Violation

	NodeID  = types.NodeID
	Value   = types.Value
	Kind    = types.Kind
	Message = types.Message
	Phase   = types.Phase
)

// Network modes.
const (
	ReliableOrdered = config.ReliableOrdered
	LossyUnordered  = config.LossyUnordered
)

// Value domain.
const (
	NoValue = types.NoValue
	V1      = types.V1
	V2      = types.V2
	V3      = types.V3
)

// Message kinds.
const (
	Propose = types.Propose
	Prepare = types.Prepare
	Commit  = types.Commit
	Decide  = types.Decide
)

// Replica phases.
const (
	Init      = types.Init
	Prepared  = types.Prepared
	Committed = types.Committed
	Decided   = types.Decided
	Failed    = types.Failed
)

// Wedge reasons.
const (
	NotWedged            = driver.NotWedged
	DropsExhausted       = driver.DropsExhausted
	ProposerFaulty       = driver.ProposerFaulty
	QuorumUnreachable    = driver.QuorumUnreachable
	NoEnabledTransitions = driver.NoEnabledTransitions
)

// Validate re-exports config.Validate for callers that only imported
// this package.
func Validate(o Options) *ValidationResult {
	return config.Validate(o)
}

// Run re-exports driver.Run for callers that only imported this
// package.
func Run(o Options, log Logger) *Result {
	return driver.Run(o, log)
}

// Sweep re-exports driver.Sweep for callers that only imported this
// package.
func Sweep(nodeCounts, faultyCounts []int, modes []NetworkMode, dropBudgets []int, maxPhase int, log Logger) []SweepResult {
	return driver.Sweep(nodeCounts, faultyCounts, modes, dropBudgets, maxPhase, log)
}

// Discard returns a Logger that drops everything.
func Discard() Logger { return logging.Discard() }

// NewLogger returns the named production logger.
func NewLogger() Logger { return logging.New() }
