package lfid

import "fmt"

// FibNextHop is one candidate next hop toward a destination: the
// neighbor to forward through, the total cost of the best path via
// that neighbor, how much that exceeds the shortest-path cost, and a
// classification tag. It is immutable value-semantic data: once
// constructed, a FibNextHop's fields never change and it is never
// aliased once inserted into an AbsFib.
type FibNextHop struct {
	nhId      NodeId
	cost      Cost
	costDelta Cost
	typ       NextHopType
}

// NewFibNextHop constructs a FibNextHop, panicking if cost is out of
// range or costDelta is negative -- construction-time invariant checks,
// not recoverable errors, since a caller passing bad data here is a bug
// in the classifier itself.
func NewFibNextHop(cost Cost, nhId NodeId, costDelta Cost, typ NextHopType) FibNextHop {
	if cost <= 0 || cost >= MaxCost {
		panic(fmt.Sprintf("fibnexthop: cost %d out of range (0, %d)", cost, MaxCost))
	}
	if nhId < 0 || nhId > NodeIDLimit {
		panic(fmt.Sprintf("fibnexthop: nhId %d out of range [0, %d]", nhId, NodeIDLimit))
	}
	if costDelta < 0 {
		panic(fmt.Sprintf("fibnexthop: costDelta %d must be >= 0", costDelta))
	}
	return FibNextHop{cost: cost, nhId: nhId, costDelta: costDelta, typ: typ}
}

// NhId returns the next-hop neighbor id.
func (nh FibNextHop) NhId() NodeId { return nh.nhId }

// Cost returns the total cost along this next hop's best path.
func (nh FibNextHop) Cost() Cost { return nh.cost }

// CostDelta returns cost minus the owner's shortest-path cost to the
// destination. A DW next hop is not required to have costDelta zero --
// classification depends on the neighbor's own distance to the
// destination, not on this node's total path cost through it.
func (nh FibNextHop) CostDelta() Cost { return nh.costDelta }

// Type returns the next hop's classification.
func (nh FibNextHop) Type() NextHopType { return nh.typ }

// Less orders FibNextHop values lexicographically by (costDelta, cost,
// nhId) ascending. Two entries that share an nhId must agree on cost
// and costDelta -- that is an AbsFib invariant, not something Less
// itself can check, since Less only ever sees one side at a time.
func (nh FibNextHop) Less(other FibNextHop) bool {
	if nh.costDelta != other.costDelta {
		return nh.costDelta < other.costDelta
	}
	if nh.cost != other.cost {
		return nh.cost < other.cost
	}
	return nh.nhId < other.nhId
}

// Equal reports whether two FibNextHop values share the same nhId. By
// invariant 2 in the data model, equal nhId within a single
// destination's set implies equal cost and costDelta; callers that
// violate this have already hit a fatal invariant elsewhere.
func (nh FibNextHop) Equal(other FibNextHop) bool {
	return nh.nhId == other.nhId
}

// String renders a FibNextHop as a short single-line representation,
// for logging.
func (nh FibNextHop) String() string {
	return fmt.Sprintf("nh=%d cost=%d delta=%d type=%s", nh.nhId, nh.cost, nh.costDelta, nh.typ)
}
