package lfid

import (
	"github.com/arizona-ndn-sim/lfid/lfid/graph"
	"github.com/arizona-ndn-sim/lfid/lfid/log"
)

// AllNodeFib maps every routable node to its AbsFib.
type AllNodeFib map[NodeId]*AbsFib

// CheckAll runs CheckFib on every node's table -- a convenience for
// tests and debug builds.
func (all AllNodeFib) CheckAll() {
	for _, fib := range all {
		fib.CheckFib()
	}
}

// ComputeRoutes is the core's single entry point: given a topology, it
// runs classification (RouteBuilder) followed by loop removal and
// dead-end removal (LoopAndDeadEndPruner), and returns the resulting
// AllNodeFib, which satisfies invariants 1-4 and 6. Each G_d is left
// with no cycle through three or more nodes, but a mutual pair of arcs
// u->v, v->u can remain: loop removal masks the reverse arc while it
// tests u->v. It is synchronous: the caller blocks until it returns.
func ComputeRoutes(topo *graph.Topology) AllNodeFib {
	log.Info(computeRoutesLogTag{}, "computing routes", "nodes", topo.NumNodes(), "topology", topo.Fingerprint())

	rb := NewRouteBuilder(topo)
	all := rb.Build()

	pruner := NewLoopAndDeadEndPruner(all)
	loopStats := pruner.RemoveLoops()
	deadEndStats := pruner.RemoveDeadEnds()

	log.Info(computeRoutesLogTag{}, "routes computed",
		"upwardFound", loopStats.UpwardFound,
		"loopsRemoved", loopStats.Removed,
		"deadEndsChecked", deadEndStats.Checked,
		"deadEndsRemoved", deadEndStats.Removed,
		"remainingUpward", all.totalUpward())

	return all
}

func (all AllNodeFib) totalUpward() int {
	total := 0
	for _, fib := range all {
		total += fib.CountUwNexthops()
	}
	return total
}

type computeRoutesLogTag struct{}

func (computeRoutesLogTag) String() string { return "lfid" }
