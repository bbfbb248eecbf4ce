// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package agree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFacadeRunsHappyPathWithoutViolationOrStall(t *testing.T) {
	require := require.New(t)

	o := Options{
		N: 5, F: 2,
		InitialProposer: 0, InitialValue: V1,
		NetworkMode: ReliableOrdered, MaxPhase: 30,
	}
	vr := Validate(o)
	require.True(vr.Valid)

	result := Run(o, Discard())
	require.False(result.Violated)
	require.False(result.Wedged)
}

func TestFacadeRejectsInvalidOptions(t *testing.T) {
	require := require.New(t)

	o := Options{N: 1, F: 2, MaxPhase: 1}
	vr := Validate(o)
	require.False(vr.Valid)
	require.NotEmpty(vr.Errors)
}

func TestFacadeSweepSkipsInvalidCombinations(t *testing.T) {
	require := require.New(t)

	results := Sweep([]int{4}, []int{0, 1, 2}, []NetworkMode{ReliableOrdered}, []int{0}, 20, Discard())
	require.NotEmpty(results)
	// f=2 needs n >= 5, so only the f=0 and f=1 cases run.
	require.Len(results, 2)
	for _, r := range results {
		require.False(r.Result.Violated)
	}
}
