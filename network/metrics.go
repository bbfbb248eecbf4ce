// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes network-level scenario statistics as Prometheus
// gauges, following the teacher's pattern of a small wrapper struct
// around a prometheus.Registerer rather than package-level globals.
type Metrics struct {
	InFlight prometheus.Gauge
	Drops    prometheus.Gauge
}

// NewMetrics registers and returns the network gauges under reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agree",
			Subsystem: "network",
			Name:      "in_flight_messages",
			Help:      "Number of in-flight messages currently eligible for delivery.",
		}),
		Drops: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agree",
			Subsystem: "network",
			Name:      "drops_total",
			Help:      "Number of messages dropped so far in this scenario.",
		}),
	}
	for _, c := range []prometheus.Collector{m.InFlight, m.Drops} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe updates the gauges from the current state of net. InFlight
// counts what net.InFlight returns, which in ReliableOrdered mode is
// one message per non-empty link queue, not every queued message.
func (m *Metrics) Observe(net Network) {
	m.InFlight.Set(float64(len(net.InFlight())))
	m.Drops.Set(float64(net.Drops()))
}
