package lfid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arizona-ndn-sim/lfid/lfid"
)

func newTestFib(t *testing.T) *lfid.AbsFib {
	t.Helper()
	return lfid.NewAbsFib(0, "r0", 2, 4)
}

func TestAbsFibInsertAndGet(t *testing.T) {
	fib := newTestFib(t)
	nh := lfid.NewFibNextHop(5, 1, 0, lfid.DW)
	fib.Insert(2, nh)

	nhs := fib.GetNhs(2)
	require.Len(t, nhs, 1)
	assert.True(t, nhs[0].Equal(nh))
	assert.Equal(t, 1, fib.NumEnabledNhPerDst(2))
	assert.Equal(t, 0, len(fib.GetUpwardNhs(2)))
}

func TestAbsFibUpwardProjection(t *testing.T) {
	fib := newTestFib(t)
	fib.Insert(2, lfid.NewFibNextHop(5, 1, 0, lfid.DW))
	fib.Insert(2, lfid.NewFibNextHop(9, 3, 4, lfid.Upward))

	assert.Equal(t, 2, fib.NumEnabledNhPerDst(2))
	uw := fib.GetUpwardNhs(2)
	require.Len(t, uw, 1)
	assert.Equal(t, lfid.NodeId(3), uw[0].NhId())
	assert.Equal(t, 1, fib.CountUwNexthops())
	assert.Equal(t, 2, fib.TotalNexthops())
}

func TestAbsFibInsertRejectsSelfNextHop(t *testing.T) {
	fib := newTestFib(t)
	assert.Panics(t, func() {
		fib.Insert(2, lfid.NewFibNextHop(5, 0, 0, lfid.DW))
	})
}

func TestAbsFibInsertRejectsDuplicateNhId(t *testing.T) {
	fib := newTestFib(t)
	fib.Insert(2, lfid.NewFibNextHop(5, 1, 0, lfid.DW))
	assert.Panics(t, func() {
		fib.Insert(2, lfid.NewFibNextHop(6, 1, 1, lfid.Upward))
	})
}

func TestAbsFibEraseRequiresUpward(t *testing.T) {
	fib := newTestFib(t)
	fib.Insert(2, lfid.NewFibNextHop(5, 1, 0, lfid.DW))
	assert.Panics(t, func() {
		fib.Erase(2, 1)
	}, "erasing a DW entry must be fatal")
}

func TestAbsFibEraseRemovesUpward(t *testing.T) {
	fib := newTestFib(t)
	fib.Insert(2, lfid.NewFibNextHop(5, 1, 0, lfid.DW))
	fib.Insert(2, lfid.NewFibNextHop(9, 3, 4, lfid.Upward))

	fib.Erase(2, 3)
	assert.Equal(t, 1, fib.NumEnabledNhPerDst(2))
	assert.Equal(t, 0, fib.CountUwNexthops())
}

func TestAbsFibCheckFibRequiresDownward(t *testing.T) {
	fib := newTestFib(t)
	fib.Insert(2, lfid.NewFibNextHop(9, 3, 4, lfid.Upward))
	assert.Panics(t, func() { fib.CheckFib() }, "a destination with only upward next hops violates invariant 1")
}

func TestAbsFibCheckFibPasses(t *testing.T) {
	fib := newTestFib(t)
	fib.Insert(1, lfid.NewFibNextHop(3, 1, 0, lfid.DW))
	fib.Insert(2, lfid.NewFibNextHop(5, 1, 0, lfid.DW))
	fib.Insert(2, lfid.NewFibNextHop(9, 3, 4, lfid.Upward))
	fib.Insert(3, lfid.NewFibNextHop(7, 1, 0, lfid.DW))

	assert.NotPanics(t, func() { fib.CheckFib() })
}
