package lfid

import (
	"fmt"

	"github.com/arizona-ndn-sim/lfid/lfid/log"
	"github.com/arizona-ndn-sim/lfid/lfid/types/priority_queue"
)

// DeadEndStats summarizes one RemoveDeadEnds run.
type DeadEndStats struct {
	Found   int
	Checked int
	Removed int
}

// deadEndCandidate is one upward next hop awaiting a dead-end check,
// together with the node that owns it.
type deadEndCandidate struct {
	nodeId NodeId
	nh     FibNextHop
}

// deadEndPriority orders dead-end candidates highest
// (costDelta, cost, nhId) first, with owner node id as the final
// tiebreaker so two structurally identical candidates at different
// nodes still pop in a deterministic order. The priority queue is
// min-first, so each field is stored as its distance below its bound,
// in fixed-width decimal: the smallest key is the largest tuple.
// See pruner_test.go's dead-end-chain test for the regression this
// ordering choice is checked against.
func deadEndPriority(nh FibNextHop, ownerId NodeId) string {
	return fmt.Sprintf("%07d%07d%04d%04d",
		MaxCost-nh.CostDelta(),
		MaxCost-nh.Cost(),
		NodeIDLimit-nh.NhId(),
		NodeIDLimit-ownerId)
}

// RemoveDeadEnds removes every upward next hop u->v where v's only way
// to reach the destination is back through u. Must run after
// RemoveLoops, since the surviving upward set it operates on may have
// shrunk.
func (p *LoopAndDeadEndPruner) RemoveDeadEnds() DeadEndStats {
	var stats DeadEndStats

	dsts := make([]NodeId, 0, len(p.all))
	for d := range p.all {
		dsts = append(dsts, d)
	}

	for _, dst := range dsts {
		p.removeDeadEndsForDst(dst, &stats)
	}

	log.Info(p, "dead-end removal complete", "found", stats.Found,
		"checked", stats.Checked, "removed", stats.Removed, "remaining", stats.Found-stats.Removed)

	return stats
}

func (p *LoopAndDeadEndPruner) removeDeadEndsForDst(dst NodeId, stats *DeadEndStats) {
	pq := priority_queue.New[deadEndCandidate, string]()

	for nodeId, fib := range p.all {
		if nodeId == dst {
			continue
		}
		for _, nh := range fib.GetUpwardNhs(dst) {
			stats.Found++
			pq.Push(deadEndCandidate{nodeId: nodeId, nh: nh}, deadEndPriority(nh, nodeId))
		}
	}

	for pq.Len() > 0 {
		cand := pq.Pop()
		stats.Checked++

		u := cand.nodeId
		v := cand.nh.NhId()

		if v == dst {
			continue // arrived at the destination: not a dead end.
		}

		reverseEntries := p.all[v].NumEnabledNhPerDst(dst)
		if reverseEntries < 1 {
			panicInvariant(v, dst, -1, "destination has zero next hops, violating invariant 1")
		}

		if reverseEntries != 1 {
			continue
		}

		// v's sole next hop toward dst is back through u: u->v is a
		// dead end.
		stats.Removed++
		fib := p.all[u]
		fib.Erase(dst, v)

		// Erasing u's arc may itself strand any neighbor w that uses u
		// as a downward next hop toward dst: re-check w's matching
		// upward entry back to u.
		for _, ownNh := range fib.GetNhs(dst) {
			if ownNh.Type() != DW || ownNh.NhId() == dst {
				continue
			}
			w := ownNh.NhId()
			upstream := p.all[w]
			for _, y := range upstream.GetNhs(dst) {
				if y.NhId() != u {
					continue
				}
				if y.Type() != Upward {
					panicInvariant(w, dst, u, "expected an UPWARD entry pointing back to %d, got %s", u, y.Type())
				}
				pq.Push(deadEndCandidate{nodeId: w, nh: y}, deadEndPriority(y, w))
				break
			}
		}
	}
}
