package lfid

import (
	"fmt"
	"slices"
)

// AbsFib is one node's abstract forwarding table: for every other
// routable node, a sorted set of FibNextHop. AbsFib instances are
// created empty by RouteBuilder, populated exactly once during
// classification, mutated only by erase() during pruning, and read-only
// thereafter.
type AbsFib struct {
	nodeId     NodeId
	nodeName   string
	nodeDegree int
	numNodes   int

	perDst       map[NodeId]nhSet
	upwardPerDst map[NodeId]nhSet
}

// NewAbsFib constructs an AbsFib for nodeId, pre-populating an empty
// destination entry for every other node in [0, numNodes).
func NewAbsFib(nodeId NodeId, nodeName string, nodeDegree, numNodes int) *AbsFib {
	if nodeDegree <= 0 {
		panic(fmt.Sprintf("absfib: node %d: nodeDegree must be > 0, got %d", nodeId, nodeDegree))
	}
	if numNodes <= 1 {
		panic(fmt.Sprintf("absfib: node %d: numNodes must be > 1, got %d", nodeId, numNodes))
	}

	fib := &AbsFib{
		nodeId:       nodeId,
		nodeName:     nodeName,
		nodeDegree:   nodeDegree,
		numNodes:     numNodes,
		perDst:       make(map[NodeId]nhSet, numNodes-1),
		upwardPerDst: make(map[NodeId]nhSet, numNodes-1),
	}

	for d := 0; d < numNodes; d++ {
		dst := NodeId(d)
		if dst == nodeId {
			continue
		}
		fib.perDst[dst] = nil
		fib.upwardPerDst[dst] = nil
	}

	return fib
}

// NodeId returns the owning node's id.
func (f *AbsFib) NodeId() NodeId { return f.nodeId }

// NodeName returns the owning node's human-readable name.
func (f *AbsFib) NodeName() string { return f.nodeName }

// NodeDegree returns the owning node's direct neighbor count.
func (f *AbsFib) NodeDegree() int { return f.nodeDegree }

// String identifies this AbsFib for logging with a short component
// identifier.
func (f *AbsFib) String() string {
	return fmt.Sprintf("absfib[%s/%d]", f.nodeName, f.nodeId)
}

// Contains reports whether dstId has any entry (possibly empty) in
// this FIB.
func (f *AbsFib) Contains(dstId NodeId) bool {
	_, ok := f.perDst[dstId]
	return ok
}

// Insert adds nh to perDst[dstId] (and to upwardPerDst[dstId] when
// nh.Type() == Upward). Any violation of AbsFib's invariants here is
// fatal: the classifier is the only caller and a violation means the
// classifier itself is broken.
func (f *AbsFib) Insert(dstId NodeId, nh FibNextHop) {
	if dstId == f.nodeId {
		panicInvariant(f.nodeId, dstId, nh.nhId, "cannot insert a route to self")
	}
	if nh.nhId == f.nodeId {
		panicInvariant(f.nodeId, dstId, nh.nhId, "next hop cannot be the owning node")
	}
	if nh.typ == Disabled {
		panicInvariant(f.nodeId, dstId, nh.nhId, "cannot insert a DISABLED next hop")
	}

	set := f.perDst[dstId]
	if !set.insert(nh) {
		panicInvariant(f.nodeId, dstId, nh.nhId, "duplicate next hop for this destination")
	}
	f.perDst[dstId] = set

	if nh.typ == Upward {
		uwSet := f.upwardPerDst[dstId]
		if !uwSet.insert(nh) {
			panicInvariant(f.nodeId, dstId, nh.nhId, "duplicate upward next hop for this destination")
		}
		f.upwardPerDst[dstId] = uwSet
	}
}

// Erase removes the next hop with the given nhId from perDst[dstId]
// and upwardPerDst[dstId]. The caller guarantees the entry exists and
// is UPWARD -- the pruner is the only caller and never erases a
// downward entry, per invariant 1.
func (f *AbsFib) Erase(dstId NodeId, nhId NodeId) {
	set, ok := f.perDst[dstId]
	if !ok {
		panicInvariant(f.nodeId, dstId, nhId, "no FIB entries for this destination")
	}
	idx, found := set.indexOf(nhId)
	if !found {
		panicInvariant(f.nodeId, dstId, nhId, "next hop not present")
	}
	if set[idx].typ != Upward {
		panicInvariant(f.nodeId, dstId, nhId, "erase is only permitted for UPWARD next hops, got %s", set[idx].typ)
	}

	set.erase(nhId)
	f.perDst[dstId] = set

	uwSet := f.upwardPerDst[dstId]
	if !uwSet.erase(nhId) {
		panicInvariant(f.nodeId, dstId, nhId, "upward next hop missing from upwardPerDst")
	}
	f.upwardPerDst[dstId] = uwSet
}

// GetNhs returns the next hops toward dstId in (costDelta, cost, nhId)
// ascending order. The returned slice is a fresh copy: callers must
// not assume it aliases AbsFib's internal state.
func (f *AbsFib) GetNhs(dstId NodeId) []FibNextHop {
	return append([]FibNextHop(nil), f.perDst[dstId]...)
}

// GetUpwardNhs returns the UPWARD next hops toward dstId, in the same
// order as GetNhs.
func (f *AbsFib) GetUpwardNhs(dstId NodeId) []FibNextHop {
	return append([]FibNextHop(nil), f.upwardPerDst[dstId]...)
}

// GetNhAtPos returns the next hop at position pos in the sorted set
// toward dstId; pos == 0 is always the shortest-path (DW, lowest cost)
// next hop.
func (f *AbsFib) GetNhAtPos(dstId NodeId, pos int) FibNextHop {
	set := f.perDst[dstId]
	if pos < 0 || pos >= len(set) {
		panicInvariant(f.nodeId, dstId, -1, "position %d out of range [0, %d)", pos, len(set))
	}
	return set[pos]
}

// NumEnabledNhPerDst returns the number of live next hops toward dstId.
func (f *AbsFib) NumEnabledNhPerDst(dstId NodeId) int {
	return len(f.perDst[dstId])
}

// TotalNexthops returns the total number of next hops across every
// destination. Derived on demand from perDst rather than tracked as a
// running counter, since it is never read on a hot path.
func (f *AbsFib) TotalNexthops() int {
	total := 0
	for _, set := range f.perDst {
		total += len(set)
	}
	return total
}

// CountUwNexthops returns the total number of UPWARD next hops across
// every destination.
func (f *AbsFib) CountUwNexthops() int {
	total := 0
	for _, set := range f.upwardPerDst {
		total += len(set)
	}
	return total
}

// Destinations returns every destination id this FIB has an entry for,
// in ascending order.
func (f *AbsFib) Destinations() []NodeId {
	dsts := make([]NodeId, 0, len(f.perDst))
	for d := range f.perDst {
		dsts = append(dsts, d)
	}
	slices.Sort(dsts)
	return dsts
}

// CheckFib validates invariants 1-4 for this node, panicking with an
// InvariantViolated on the first violation found. Intended to run
// after classification and in tests; it is not on any hot path.
func (f *AbsFib) CheckFib() {
	if len(f.perDst) == 0 {
		panicInvariant(f.nodeId, -1, -1, "FIB has no destinations at all")
	}

	for dstId, set := range f.perDst {
		if len(set) == 0 {
			panicInvariant(f.nodeId, dstId, -1, "destination has no next hops")
		}

		hasDownward := false
		seen := make(map[NodeId]bool, len(set))
		for _, nh := range set {
			if nh.cost <= 0 || nh.cost >= MaxCost {
				panicInvariant(f.nodeId, dstId, nh.nhId, "cost %d out of range (0, %d)", nh.cost, MaxCost)
			}
			if nh.costDelta < 0 {
				panicInvariant(f.nodeId, dstId, nh.nhId, "costDelta %d must be >= 0", nh.costDelta)
			}
			if nh.nhId == f.nodeId {
				panicInvariant(f.nodeId, dstId, nh.nhId, "next hop equals owning node")
			}
			if nh.typ == DW {
				hasDownward = true
			}
			if seen[nh.nhId] {
				panicInvariant(f.nodeId, dstId, nh.nhId, "duplicate next hop id")
			}
			seen[nh.nhId] = true
		}
		if !hasDownward {
			panicInvariant(f.nodeId, dstId, -1, "destination has no DW next hop")
		}

		uwSet := f.upwardPerDst[dstId]
		for _, nh := range uwSet {
			if nh.typ != Upward {
				panicInvariant(f.nodeId, dstId, nh.nhId, "upwardPerDst contains a non-UPWARD entry")
			}
			if _, ok := set.indexOf(nh.nhId); !ok {
				panicInvariant(f.nodeId, dstId, nh.nhId, "upwardPerDst entry missing from perDst")
			}
		}
		wantUw := 0
		for _, nh := range set {
			if nh.typ == Upward {
				wantUw++
			}
		}
		if wantUw != len(uwSet) {
			panicInvariant(f.nodeId, dstId, -1, "upwardPerDst size %d does not match perDst upward count %d", len(uwSet), wantUw)
		}
	}
}
