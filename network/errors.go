// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import "errors"

var (
	errNotInFlight           = errors.New("network: message not in flight")
	errNotAtHeadOfLink       = errors.New("network: message not at head of its link queue")
	errNoDropsInReliableMode = errors.New("network: reliable ordered mode never drops")
	errDropBudgetExhausted   = errors.New("network: drop budget exhausted")
)
