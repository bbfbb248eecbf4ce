// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import "sync"

// Counter is a thread-safe running total, for aggregating outcomes of
// scenarios run concurrently without going through the registry's
// prometheus.Counter values (which are write-only and awkward to read
// back for a terminal summary). cmd/agree's sweep subcommand runs its
// cases one after another and does not use it.
type Counter struct {
	mu    sync.Mutex
	value int64
}

// Inc increments the counter by 1.
func (c *Counter) Inc() {
	c.Add(1)
}

// Add adds delta to the counter.
func (c *Counter) Add(delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value += delta
}

// Read returns the current count.
func (c *Counter) Read() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Gauge is a thread-safe high-water mark that SetMax only ever raises,
// for aggregating a sweep's maxima (e.g. max states visited in
// any one case) across concurrent workers.
type Gauge struct {
	mu    sync.Mutex
	value float64
}

// SetMax raises the gauge to value if value is greater than the
// current one, else leaves it unchanged.
func (g *Gauge) SetMax(value float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if value > g.value {
		g.value = value
	}
}

// Read returns the current value.
func (g *Gauge) Read() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value
}
