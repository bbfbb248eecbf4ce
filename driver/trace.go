// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package driver

import "strings"

// Trace is the ordered sequence of events that led from on_start to a
// reported state: the minimal reproduction recipe for a safety
// violation or a liveness stall.
type Trace []Event

func (t Trace) String() string {
	var b strings.Builder
	for i, e := range t {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(e.String())
	}
	return b.String()
}
