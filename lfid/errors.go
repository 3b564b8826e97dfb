package lfid

import "fmt"

// InvariantViolated reports a broken data-structure precondition: a
// duplicate next-hop id, a missing downward entry, a negative cost
// delta, a cost out of range, or erasing a non-existent or non-upward
// entry. These are programmer errors in the caller or in the core
// itself and are always fatal -- see panicInvariant.
type InvariantViolated struct {
	NodeId NodeId
	DstId  NodeId
	NhId   NodeId
	Reason string
}

func (e *InvariantViolated) Error() string {
	return fmt.Sprintf("invariant violated: node=%d dst=%d nh=%d: %s",
		e.NodeId, e.DstId, e.NhId, e.Reason)
}

// TopologyInconsistent reports a reachable-but-unroutable destination,
// or a classification candidate whose cost is below the shortest-path
// lower bound -- both indicate the supplied graph and the Dijkstra
// provider disagree, which is always fatal.
type TopologyInconsistent struct {
	NodeId NodeId
	DstId  NodeId
	Reason string
}

func (e *TopologyInconsistent) Error() string {
	return fmt.Sprintf("topology inconsistent: node=%d dst=%d: %s",
		e.NodeId, e.DstId, e.Reason)
}

// panicInvariant raises an InvariantViolated. The core has no recovery
// path for a broken invariant: Go has no assert(), so a typed panic
// stands in for one, and remains testable via recover().
func panicInvariant(nodeId, dstId, nhId NodeId, reason string, args ...any) {
	panic(&InvariantViolated{
		NodeId: nodeId,
		DstId:  dstId,
		NhId:   nhId,
		Reason: fmt.Sprintf(reason, args...),
	})
}

// panicTopology raises a TopologyInconsistent.
func panicTopology(nodeId, dstId NodeId, reason string, args ...any) {
	panic(&TopologyInconsistent{
		NodeId: nodeId,
		DstId:  dstId,
		Reason: fmt.Sprintf(reason, args...),
	})
}
