// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics exposes scenario-run statistics as Prometheus
// collectors, the way the teacher's own metrics package wraps a
// prometheus.Registerer rather than relying on package-level globals.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the driver-level collectors a scenario run or sweep
// updates: states visited, violations found, decisions reached, and
// runs that ended wedged. Registry is exported for the reason the
// teacher's Metrics exports it: callers occasionally need to register
// an additional collector (e.g. network.Metrics) against the same
// registry.
type Metrics struct {
	Registry prometheus.Registerer

	StatesVisited prometheus.Counter
	Violations    prometheus.Counter
	Decisions     prometheus.Counter
	Wedges        prometheus.Counter
}

// NewMetrics registers and returns the driver-level counters under reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Registry: reg,
		StatesVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agree",
			Subsystem: "driver",
			Name:      "states_visited_total",
			Help:      "Total number of global states visited across all runs.",
		}),
		Violations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agree",
			Subsystem: "driver",
			Name:      "safety_violations_total",
			Help:      "Total number of runs that ended in a safety violation.",
		}),
		Decisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agree",
			Subsystem: "driver",
			Name:      "decisions_total",
			Help:      "Total number of honest replica decisions observed across all runs.",
		}),
		Wedges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agree",
			Subsystem: "driver",
			Name:      "wedged_runs_total",
			Help:      "Total number of runs that ended wedged (no decision reached).",
		}),
	}
	for _, c := range []prometheus.Collector{m.StatesVisited, m.Violations, m.Decisions, m.Wedges} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Register registers an additional collector against the same
// registry, for callers that want network.Metrics alongside this one.
func (m *Metrics) Register(collector prometheus.Collector) error {
	return m.Registry.Register(collector)
}

// Observe records the outcome of one completed driver.Result. It takes
// the raw counts it needs rather than a *driver.Result so this package
// never has to import driver.
func (m *Metrics) Observe(statesVisited int, violated, wedged bool, decisions int) {
	m.StatesVisited.Add(float64(statesVisited))
	if violated {
		m.Violations.Inc()
	}
	if wedged {
		m.Wedges.Inc()
	}
	m.Decisions.Add(float64(decisions))
}
