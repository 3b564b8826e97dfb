package lfid

import "testing"

func TestArcGraphAddRemoveArc(t *testing.T) {
	g := &arcGraph{out: make(map[NodeId]map[NodeId]struct{})}

	g.addArc(0, 1)
	g.addArc(1, 2)

	if !g.reachable(0, 2) {
		t.Fatalf("expected 0 to reach 2 via 0->1->2")
	}

	if existed := g.removeArc(1, 2); !existed {
		t.Fatalf("removeArc should report the arc existed")
	}
	if g.reachable(0, 2) {
		t.Fatalf("0 should no longer reach 2 once 1->2 is removed")
	}
	if existed := g.removeArc(1, 2); existed {
		t.Fatalf("removing an already-absent arc should report false")
	}
}

func TestArcGraphReachableIsReflexive(t *testing.T) {
	g := &arcGraph{out: make(map[NodeId]map[NodeId]struct{})}
	if !g.reachable(5, 5) {
		t.Fatalf("a node must be reachable from itself even with no arcs at all")
	}
}

func TestArcGraphReachableFollowsMultiplePaths(t *testing.T) {
	g := &arcGraph{out: make(map[NodeId]map[NodeId]struct{})}
	g.addArc(0, 1)
	g.addArc(0, 2)
	g.addArc(1, 3)
	g.addArc(2, 3)

	if !g.reachable(0, 3) {
		t.Fatalf("0 should reach 3 through either branch")
	}

	g.removeArc(1, 3)
	if !g.reachable(0, 3) {
		t.Fatalf("0 should still reach 3 through the surviving 0->2->3 branch")
	}

	g.removeArc(2, 3)
	if g.reachable(0, 3) {
		t.Fatalf("0 should no longer reach 3 once both branches are cut")
	}
}

func TestBuildArcGraphMirrorsFibEntries(t *testing.T) {
	fibA := NewAbsFib(0, "a", 1, 3)
	fibA.Insert(2, NewFibNextHop(2, 1, 0, DW))
	fibB := NewAbsFib(1, "b", 1, 3)
	fibB.Insert(2, NewFibNextHop(1, 2, 0, DW))
	fibC := NewAbsFib(2, "c", 1, 3)

	all := AllNodeFib{0: fibA, 1: fibB, 2: fibC}

	g := buildArcGraph(all, 2)
	if !g.reachable(0, 2) {
		t.Fatalf("built arc graph should reflect node 0's FIB entry toward destination 2")
	}
}
