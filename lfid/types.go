// Package lfid implements the Loop-Free Inport-Dependent route
// computation core: given a weighted undirected topology, it builds a
// per-node, per-destination forwarding table that always contains one
// downward (shortest-path) next hop, plus any number of upward next
// hops that are proven loop-free and dead-end-free.
//
// The package is strictly synchronous: ComputeRoutes runs to completion
// and returns, with no concurrency, cancellation, or partial results.
package lfid

import "github.com/arizona-ndn-sim/lfid/config"

// NodeId identifies a node. Valid ids are dense in [0, numNodes).
type NodeId int

// Cost is an additive, strictly positive path cost. The reserved
// sentinel CostInf denotes "unreachable"; MaxCost bounds any finite,
// real cost.
type Cost int64

const (
	// MaxCost is the strict upper bound on any finite cost a FibNextHop
	// may carry.
	MaxCost Cost = config.MaxCost

	// CostInf is the sentinel cost meaning "unreachable". It is used
	// only transiently during classification (masked-link Dijkstra
	// runs) and is never stored in a FibNextHop.
	CostInf Cost = config.CostInf

	// NodeIDLimit bounds the dense node id space.
	NodeIDLimit = config.NodeIDLimit
)

// NextHopType classifies a FibNextHop relative to the owning node's
// shortest-path cost to the destination.
type NextHopType int

const (
	// DW marks a next hop that strictly decreases distance to the
	// destination: the neighbor is strictly closer to it than the owner.
	// A DW next hop need not lie on a shortest path (costDelta may be > 0).
	DW NextHopType = iota
	// Upward marks a next hop that does not strictly decrease distance;
	// retained only if loop-free and not a dead end.
	Upward
	// Disabled is only a valid construction default; it is never
	// stored in an AbsFib.
	Disabled
)

// String implements fmt.Stringer, and also the logging convention used
// throughout the core (components log themselves via String()).
func (t NextHopType) String() string {
	switch t {
	case DW:
		return "DW"
	case Upward:
		return "UPWARD"
	case Disabled:
		return "DISABLED"
	default:
		return "UNKNOWN"
	}
}
