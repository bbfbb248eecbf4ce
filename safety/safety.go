// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package safety evaluates the four invariants spec.md 4.6 requires on
// every reachable global state: Agreement, Validity, Integrity, and
// NoPrematureDecision.
package safety

import (
	"fmt"

	"github.com/bftlab/agree/replica"
	"github.com/bftlab/agree/types"
)

// Violation names one broken invariant and the replicas/values
// involved, enough to reconstruct why the check failed without
// re-running the scenario.
type Violation struct {
	Invariant string
	Detail    string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Invariant, v.Detail)
}

// Report collects every violation found on a state, mirroring
// config.ValidationResult: a safety check should surface every broken
// invariant on a state, not just the first.
type Report struct {
	Violations []Violation
	OK         bool
}

func (r *Report) fail(invariant, detail string) {
	r.OK = false
	r.Violations = append(r.Violations, Violation{Invariant: invariant, Detail: detail})
}

// Check evaluates all four invariants over a snapshot of the global
// replica vector and the quorum threshold in force.
func Check(records []*replica.Record, quorum int) *Report {
	report := &Report{OK: true}
	snapshots := make([]replica.Snapshot, len(records))
	for i, r := range records {
		snapshots[i] = r.Snapshot()
	}

	checkAgreement(snapshots, report)
	checkValidity(snapshots, report)
	checkIntegrity(snapshots, report)
	checkNoPrematureDecision(snapshots, quorum, report)

	return report
}

// checkAgreement: for any two honest decided replicas, their accepted
// values are equal.
func checkAgreement(snaps []replica.Snapshot, report *Report) {
	var decided []replica.Snapshot
	for _, s := range snaps {
		if !s.Faulty && s.Decided {
			decided = append(decided, s)
		}
	}
	for i := 1; i < len(decided); i++ {
		if decided[i].Accepted != decided[0].Accepted {
			report.fail("Agreement", fmt.Sprintf(
				"replica %d decided %s but replica %d decided %s",
				decided[0].ID, decided[0].Accepted, decided[i].ID, decided[i].Accepted))
		}
	}
}

// checkValidity: a decided honest replica's accepted value is never
// the sentinel.
func checkValidity(snaps []replica.Snapshot, report *Report) {
	for _, s := range snaps {
		if !s.Faulty && s.Decided && s.Accepted == types.NoValue {
			report.fail("Validity", fmt.Sprintf("replica %d decided with no accepted value", s.ID))
		}
	}
}

// checkIntegrity: decided implies phase == Decided.
func checkIntegrity(snaps []replica.Snapshot, report *Report) {
	for _, s := range snaps {
		if s.Decided && s.Phase != types.Decided {
			report.fail("Integrity", fmt.Sprintf("replica %d has decided=true but phase=%s", s.ID, s.Phase))
		}
	}
}

// checkNoPrematureDecision: phase == Decided implies the commit tally
// for the accepted value met quorum.
func checkNoPrematureDecision(snaps []replica.Snapshot, quorum int, report *Report) {
	for _, s := range snaps {
		if s.Phase == types.Decided && s.Commit < quorum {
			report.fail("NoPrematureDecision", fmt.Sprintf(
				"replica %d is Decided but commit_tally[%s]=%d < quorum=%d", s.ID, s.Accepted, s.Commit, quorum))
		}
	}
}
