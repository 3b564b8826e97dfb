package lfid

// arcGraph is the per-destination directed arc graph G_d: arcs are
// (u, nh.NhId()) for every live next hop nh in u's FIB toward the
// destination, regardless of classification. It is rebuilt from
// scratch per destination and mutated in place as the pruner removes
// arcs.
type arcGraph struct {
	out map[NodeId]map[NodeId]struct{}
}

// buildArcGraph constructs G_d for destination dst from the current
// (possibly already-pruned) state of all.
func buildArcGraph(all AllNodeFib, dst NodeId) *arcGraph {
	g := &arcGraph{out: make(map[NodeId]map[NodeId]struct{}, len(all))}
	for nodeId, fib := range all {
		if nodeId == dst {
			continue
		}
		for _, nh := range fib.GetNhs(dst) {
			g.addArc(nodeId, nh.NhId())
		}
	}
	return g
}

func (g *arcGraph) addArc(u, v NodeId) {
	m, ok := g.out[u]
	if !ok {
		m = make(map[NodeId]struct{})
		g.out[u] = m
	}
	m[v] = struct{}{}
}

// removeArc removes the arc u->v if present, reporting whether it was.
func (g *arcGraph) removeArc(u, v NodeId) bool {
	m, ok := g.out[u]
	if !ok {
		return false
	}
	if _, ok := m[v]; !ok {
		return false
	}
	delete(m, v)
	return true
}

// reachable reports whether target is reachable from src via BFS over
// the current arc set.
func (g *arcGraph) reachable(src, target NodeId) bool {
	if src == target {
		return true
	}
	visited := map[NodeId]struct{}{src: {}}
	queue := []NodeId{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range g.out[u] {
			if v == target {
				return true
			}
			if _, seen := visited[v]; !seen {
				visited[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}
	return false
}
