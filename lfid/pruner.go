package lfid

import (
	"github.com/arizona-ndn-sim/lfid/lfid/log"
	"github.com/arizona-ndn-sim/lfid/lfid/types/priority_queue"
)

// LoopAndDeadEndPruner runs the two global pruning passes over an
// AllNodeFib: loop removal, then dead-end removal, in that order.
// Dead-end removal works on the upward set that loop removal leaves
// behind.
type LoopAndDeadEndPruner struct {
	all AllNodeFib
}

// NewLoopAndDeadEndPruner constructs a pruner over all, which it
// mutates in place.
func NewLoopAndDeadEndPruner(all AllNodeFib) *LoopAndDeadEndPruner {
	return &LoopAndDeadEndPruner{all: all}
}

// String identifies this pruner for logging.
func (p *LoopAndDeadEndPruner) String() string { return "lfid-pruner" }

// LoopStats summarizes one RemoveLoops run: how many upward candidates
// were considered and how many were removed as loop-forming.
type LoopStats struct {
	UpwardFound int
	Removed     int
}

// nodePrioState is the loop-removal queue's mutable per-node entry: the
// node's current remaining next-hop count and its remaining upward
// candidates, highest-cost-delta last (nhSet's ascending order). A
// popped entry is mutated locally and, if still non-empty, reinserted
// as a fresh snapshot rather than updated in place.
type nodePrioState struct {
	nodeId      NodeId
	remainingNh int
	uwSet       nhSet
}

// highestCostUw returns (without removing) the upward candidate with
// the largest (costDelta, cost, nhId) -- nhSet's last element.
func (s *nodePrioState) highestCostUw() FibNextHop {
	return s.uwSet[len(s.uwSet)-1]
}

// popHighestCostUw removes and returns the highest-cost-delta upward
// candidate.
func (s *nodePrioState) popHighestCostUw() FibNextHop {
	top := s.highestCostUw()
	s.uwSet = s.uwSet[:len(s.uwSet)-1]
	return top
}

// packLoopPriority folds the lexicographic key (remainingNh,
// highestCostDelta, nodeId) into a single int64, negated, so the
// generic priority queue -- min-first over a single constraints.Ordered
// value -- pops the node with the most remaining next hops first,
// breaking ties toward the largest highestCostDelta and then the
// largest nodeId.
func packLoopPriority(remainingNh int, highestDelta Cost, nodeId NodeId) int64 {
	const nodeSpan = int64(NodeIDLimit) + 1
	const deltaSpan = int64(MaxCost) + 1
	return -(int64(remainingNh)*deltaSpan*nodeSpan + int64(highestDelta)*nodeSpan + int64(nodeId))
}

// RemoveLoops greedily removes, for every destination, the upward next
// hop that would close a cycle in G_d. Nodes are processed most-
// remaining-next-hops first (ties broken toward the largest
// highest-cost-delta candidate, then node id); once a node is picked,
// its own highest-cost-delta upward candidate is the one tested. The
// reverse arc v->u is masked during each test, so a mutual pair u->v,
// v->u is not treated as a cycle.
func (p *LoopAndDeadEndPruner) RemoveLoops() LoopStats {
	var stats LoopStats

	dsts := make([]NodeId, 0, len(p.all))
	for d := range p.all {
		dsts = append(dsts, d)
	}

	for _, dst := range dsts {
		p.removeLoopsForDst(dst, &stats)
	}

	log.Info(p, "loop removal complete", "upwardFound", stats.UpwardFound,
		"removed", stats.Removed, "remaining", stats.UpwardFound-stats.Removed)

	return stats
}

func (p *LoopAndDeadEndPruner) removeLoopsForDst(dst NodeId, stats *LoopStats) {
	g := buildArcGraph(p.all, dst)

	pq := priority_queue.New[*nodePrioState, int64]()
	for nodeId, fib := range p.all {
		if nodeId == dst {
			continue
		}
		uw := fib.GetUpwardNhs(dst)
		if len(uw) == 0 {
			continue
		}
		stats.UpwardFound += len(uw)

		state := &nodePrioState{
			nodeId:      nodeId,
			remainingNh: fib.NumEnabledNhPerDst(dst),
			uwSet:       nhSet(uw),
		}
		pq.Push(state, packLoopPriority(state.remainingNh, state.highestCostUw().CostDelta(), nodeId))
	}

	for pq.Len() > 0 {
		state := pq.Pop()
		u := state.nodeId
		nh := state.popHighestCostUw()
		v := nh.NhId()

		// Temporarily mask the reverse arc v->u.
		arcExisted := g.removeArc(v, u)

		// Would using u->v let traffic from v come back to u?
		willLoop := g.reachable(v, u)

		if willLoop {
			state.remainingNh--
			stats.Removed++
			p.all[u].Erase(dst, v)
			g.removeArc(u, v)
		}

		if arcExisted {
			g.addArc(v, u)
		}

		if len(state.uwSet) > 0 {
			pq.Push(state, packLoopPriority(state.remainingNh, state.highestCostUw().CostDelta(), u))
		}
	}
}
