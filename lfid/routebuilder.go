package lfid

import (
	"github.com/arizona-ndn-sim/lfid/lfid/graph"
	"github.com/arizona-ndn-sim/lfid/lfid/log"
)

// RouteBuilder is the classification orchestrator: for every source
// node, it runs shortest-path from the source and from each direct
// neighbor (with the source-neighbor link masked), classifies every
// candidate next hop as downward or upward, and populates one AbsFib
// per node.
type RouteBuilder struct {
	topo  *graph.Topology
	names []string
}

// NewRouteBuilder constructs a RouteBuilder over topo.
func NewRouteBuilder(topo *graph.Topology) *RouteBuilder {
	names := make([]string, topo.NumNodes())
	for i := range names {
		names[i] = topo.Name(i)
	}
	return &RouteBuilder{topo: topo, names: names}
}

// String identifies this RouteBuilder for logging.
func (rb *RouteBuilder) String() string { return "lfid-routebuilder" }

// Build runs classification for every node in the topology that has at
// least one link and returns the resulting AllNodeFib; a node with no
// links gets no AbsFib. It does not prune loops or dead ends -- that is
// LoopAndDeadEndPruner's job, run separately by ComputeRoutes.
func (rb *RouteBuilder) Build() AllNodeFib {
	n := rb.topo.NumNodes()
	all := make(AllNodeFib, n)

	for s := 0; s < n; s++ {
		if len(rb.topo.Neighbors(s)) == 0 {
			continue
		}
		fib := rb.buildOne(NodeId(s))
		fib.CheckFib()
		all[NodeId(s)] = fib
	}

	return all
}

// buildOne runs classification for a single source node s.
func (rb *RouteBuilder) buildOne(s NodeId) *AbsFib {
	src := int(s)
	neighbors := rb.topo.Neighbors(src)

	fib := NewAbsFib(s, rb.names[src], len(neighbors), rb.topo.NumNodes())

	// 1. Full shortest path from s, over the unmodified graph.
	distFromSrc := rb.topo.ShortestPaths(src)

	// 2. Snapshot and mask every s-neighbor link, then compute shortest
	// paths from each neighbor in the masked graph, then restore.
	originalWeight := make(map[int]float64, len(neighbors))
	for _, nb := range neighbors {
		originalWeight[nb] = rb.topo.Weight(src, nb).Unwrap()
	}

	restore := rb.topo.MaskLinks(src, neighbors)
	distFromNeighbor := make(map[int]map[int]float64, len(neighbors))
	for _, nb := range neighbors {
		distFromNeighbor[nb] = rb.topo.ShortestPaths(nb)
	}
	restore()

	// 3. Classify candidates per destination.
	for d := 0; d < rb.topo.NumNodes(); d++ {
		if NodeId(d) == s {
			continue
		}

		spCost := Cost(distFromSrc[d])
		anyCandidate := false

		for _, nb := range neighbors {
			nbCost := distFromNeighbor[nb][d]
			totalCost := Cost(nbCost) + Cost(originalWeight[nb])

			if totalCost >= CostInf {
				// Would loop back through s; silently skipped.
				continue
			}
			if NodeId(nb) == NodeId(d) && totalCost != spCost {
				// The neighbor is the destination itself: its masked-link
				// distance to itself is trivially zero, which would
				// otherwise always read as "strictly closer than s" and
				// force a DW classification regardless of whether the
				// direct link actually is the shortest path. Keep this
				// candidate only when it genuinely realizes spCost;
				// otherwise the indirect candidates already cover it.
				continue
			}
			if totalCost < spCost {
				panicTopology(s, NodeId(d), "neighbor %d total cost %d is below shortest-path cost %d", nb, totalCost, spCost)
			}

			costDelta := totalCost - spCost
			typ := DW
			if nbCost >= float64(spCost) {
				typ = Upward
			}

			fib.Insert(NodeId(d), NewFibNextHop(totalCost, NodeId(nb), costDelta, typ))
			anyCandidate = true
		}

		if !anyCandidate {
			if spCost < CostInf {
				panicTopology(s, NodeId(d), "destination is reachable (cost %d) but no candidate next hop survived", spCost)
			}
			// Truly unreachable: leave this destination absent from
			// the FIB.
			delete(fib.perDst, NodeId(d))
			delete(fib.upwardPerDst, NodeId(d))
		}
	}

	log.Debug(rb, "classified node", "node", s, "name", rb.names[src], "degree", len(neighbors))
	return fib
}
