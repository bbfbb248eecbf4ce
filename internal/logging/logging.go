// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logging adapts the engine's structured-logging needs onto
// github.com/luxfi/log, the way the teacher repo's own log package
// wraps the same dependency for its no-op and production loggers.
package logging

import (
	extlog "github.com/luxfi/log"
)

// Logger is the subset of github.com/luxfi/log.Logger every component
// in this module depends on: geth-style leveled logging with
// variadic key-value context. Every concrete *extlog.Logger value
// already satisfies this interface; it exists so driver/replica/
// network code depends on a small, local contract instead of the
// full upstream interface surface.
type Logger interface {
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	With(ctx ...interface{}) extlog.Logger
}

// Discard returns a Logger that drops everything, for scenario runs
// and tests that don't want log output mixed into their assertions.
func Discard() Logger {
	return extlog.NewNoOpLogger()
}

// New returns the named production logger, for callers (chiefly
// cmd/agree's --verbose flag) that want replica and driver events
// written out as they happen.
func New() Logger {
	return extlog.NewLogger("agree")
}
