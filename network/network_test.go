// Copyright (C) 2020-2026, BFT Lab Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bftlab/agree/config"
	"github.com/bftlab/agree/types"
)

func TestReliableFIFOPerLink(t *testing.T) {
	require := require.New(t)

	n := New(config.ReliableOrdered, 0)
	m1 := types.Message{Kind: types.Prepare, Src: 0, Dst: 1, Value: types.V1}
	m2 := types.Message{Kind: types.Commit, Src: 0, Dst: 1, Value: types.V1}
	n.Send(m1, m2)

	// m2 is behind m1 on the same link; only m1 is eligible.
	require.Equal([]types.Message{m1}, n.InFlight())

	require.NoError(n.Deliver(m1))
	require.Equal([]types.Message{m2}, n.InFlight())
	require.NoError(n.Deliver(m2))
	require.Empty(n.InFlight())
}

func TestReliableNeverDrops(t *testing.T) {
	require := require.New(t)

	n := New(config.ReliableOrdered, 0)
	m := types.Message{Kind: types.Prepare, Src: 0, Dst: 1, Value: types.V1}
	n.Send(m)
	require.Error(n.Drop(m))
	require.Equal(0, n.Drops())
}

func TestLossyDeliversAndDropsWithoutDuplication(t *testing.T) {
	require := require.New(t)

	n := New(config.LossyUnordered, 1)
	m1 := types.Message{Kind: types.Prepare, Src: 0, Dst: 1, Value: types.V1}
	m2 := types.Message{Kind: types.Prepare, Src: 0, Dst: 2, Value: types.V1}
	n.Send(m1, m2)
	require.Len(n.InFlight(), 2)

	require.NoError(n.Drop(m1))
	require.Equal(1, n.Drops())
	require.Len(n.InFlight(), 1)

	// Drop budget of 1 is exhausted.
	require.Error(n.Drop(m2))
	require.NoError(n.Deliver(m2))
	require.Empty(n.InFlight())
}

func TestLossyDeliverOfAbsentMessageErrors(t *testing.T) {
	require := require.New(t)

	n := New(config.LossyUnordered, 5)
	m := types.Message{Kind: types.Prepare, Src: 0, Dst: 1, Value: types.V1}
	require.Error(n.Deliver(m))
}
