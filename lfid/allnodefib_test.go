package lfid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arizona-ndn-sim/lfid/lfid"
	"github.com/arizona-ndn-sim/lfid/lfid/graph"
)

func ringTopology(n int, weight float64) *graph.Topology {
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	g := graph.New(names)
	for i := 0; i < n; i++ {
		g.SetEdge(i, (i+1)%n, weight)
	}
	return g
}

func meshTopology() *graph.Topology {
	g := graph.New([]string{"a", "b", "c", "d", "e"})
	g.SetEdge(0, 1, 2)
	g.SetEdge(1, 2, 2)
	g.SetEdge(2, 3, 1)
	g.SetEdge(3, 4, 3)
	g.SetEdge(0, 4, 10)
	g.SetEdge(1, 4, 6)
	g.SetEdge(0, 2, 5)
	g.SetEdge(1, 3, 4)
	return g
}

func TestComputeRoutesEveryReachableDestinationHasADownwardNextHop(t *testing.T) {
	for _, topo := range []*graph.Topology{ringTopology(4, 1), meshTopology()} {
		all := lfid.ComputeRoutes(topo)
		for _, fib := range all {
			for _, dst := range fib.Destinations() {
				nhs := fib.GetNhs(dst)
				require.NotEmpty(t, nhs, "destination %d on node %d has no next hops", dst, fib.NodeId())

				var hasDW bool
				for _, nh := range nhs {
					if nh.Type() == lfid.DW {
						hasDW = true
					}
				}
				assert.True(t, hasDW, "destination %d on node %d has no DW next hop", dst, fib.NodeId())
			}
		}
	}
}

func TestComputeRoutesNextHopsHaveValidCostsAndNeverTargetSelf(t *testing.T) {
	all := lfid.ComputeRoutes(meshTopology())
	for _, fib := range all {
		for _, dst := range fib.Destinations() {
			for _, nh := range fib.GetNhs(dst) {
				assert.Greater(t, int(nh.Cost()), 0)
				assert.Less(t, int(nh.Cost()), int(lfid.MaxCost))
				assert.GreaterOrEqual(t, int(nh.CostDelta()), 0)
				assert.NotEqual(t, fib.NodeId(), nh.NhId(), "a next hop cannot forward back to its own owner")
				assert.NotEqual(t, dst, fib.NodeId(), "a FIB must never carry an entry to itself")
			}
		}
	}
}

func TestComputeRoutesMeshPassesCheckFib(t *testing.T) {
	all := lfid.ComputeRoutes(meshTopology())
	assert.NotPanics(t, func() { all.CheckAll() })
}

func TestComputeRoutesIsDeterministic(t *testing.T) {
	// ComputeRoutes already runs loop and dead-end removal once; building
	// a second AllNodeFib for the same topology must produce the exact
	// same total next-hop count, since classification and pruning are
	// both deterministic.
	topo1 := meshTopology()
	topo2 := meshTopology()

	all1 := lfid.ComputeRoutes(topo1)
	all2 := lfid.ComputeRoutes(topo2)

	total := func(all lfid.AllNodeFib) int {
		sum := 0
		for _, fib := range all {
			sum += fib.TotalNexthops()
		}
		return sum
	}

	assert.Equal(t, total(all1), total(all2), "computing routes twice over the same topology must be deterministic")
}

func TestComputeRoutesCostNeverBeatsShortestPath(t *testing.T) {
	// The cheapest DW next hop's cost at the owning node is, by
	// construction, the owner's shortest-path cost to the destination;
	// no surviving next hop can ever cost less than that.
	topo := meshTopology()
	all := lfid.ComputeRoutes(topo)

	for _, fib := range all {
		for _, dst := range fib.Destinations() {
			var minCost lfid.Cost = lfid.MaxCost
			for _, nh := range fib.GetNhs(dst) {
				if nh.Type() == lfid.DW && nh.Cost() < minCost {
					minCost = nh.Cost()
				}
			}
			for _, nh := range fib.GetNhs(dst) {
				assert.GreaterOrEqual(t, int(nh.Cost()), int(minCost),
					"no next hop may undercut the shortest-path cost recorded by a DW entry")
			}
		}
	}
}

func TestComputeRoutesSingleNodeNeighborhoodIsPureDownward(t *testing.T) {
	// A 2-node topology leaves no room for any upward next hop at all.
	topo := ringTopology(2, 1)
	all := lfid.ComputeRoutes(topo)
	assert.Equal(t, 0, func() int {
		total := 0
		for _, fib := range all {
			total += fib.CountUwNexthops()
		}
		return total
	}())
}
