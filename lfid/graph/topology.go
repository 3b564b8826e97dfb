// Package graph wraps gonum's weighted-undirected graph and Dijkstra
// implementation into the two things the lfid core needs from a
// topology: an incidency list per node, and shortest-path distances
// under a temporary edge-weight override.
package graph

import (
	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/arizona-ndn-sim/lfid/config"
	"github.com/arizona-ndn-sim/lfid/lfid/types/optional"
)

// Topology is a dense, node-id-indexed weighted undirected graph.
// Node ids must be dense in [0, NumNodes()).
type Topology struct {
	g     *simple.WeightedUndirectedGraph
	names []string
}

// New creates an edgeless Topology with len(names) nodes, named
// names[i] for node i.
func New(names []string) *Topology {
	t := &Topology{
		g:     simple.NewWeightedUndirectedGraph(0, 0),
		names: append([]string(nil), names...),
	}
	for i := range names {
		t.g.AddNode(simple.Node(int64(i)))
	}
	return t
}

// NumNodes returns the number of nodes in the topology.
func (t *Topology) NumNodes() int { return len(t.names) }

// Name returns the human-readable name of node id.
func (t *Topology) Name(id int) string { return t.names[id] }

// SetEdge adds (or overwrites) the undirected link between u and v
// with the given positive weight.
func (t *Topology) SetEdge(u, v int, weight float64) {
	t.g.SetWeightedEdge(simple.WeightedEdge{
		F: simple.Node(int64(u)),
		T: simple.Node(int64(v)),
		W: weight,
	})
}

// Weight returns the current weight of the link between u and v, unset
// if no such link exists.
func (t *Topology) Weight(u, v int) optional.Optional[float64] {
	w, ok := t.g.Weight(simple.Node(int64(u)), simple.Node(int64(v)))
	if !ok {
		return optional.None[float64]()
	}
	return optional.Some(w)
}

// Neighbors returns the ids of every node directly connected to u.
func (t *Topology) Neighbors(u int) []int {
	from := t.g.From(simple.Node(int64(u)))
	out := make([]int, 0, len(from))
	for _, n := range from {
		out = append(out, int(n.ID()))
	}
	return out
}

// MaskLinks temporarily sets the weight of every link from u to each
// id in neighbors to config.CostInf, and returns a function that
// restores the original weights. Used by RouteBuilder to compute the
// per-neighbor shortest-path maps needed to classify each candidate
// next hop.
func (t *Topology) MaskLinks(u int, neighbors []int) (restore func()) {
	type saved struct {
		v int
		w float64
	}
	saves := make([]saved, 0, len(neighbors))
	for _, v := range neighbors {
		w, ok := t.Weight(u, v).Get()
		if !ok {
			continue
		}
		saves = append(saves, saved{v: v, w: w})
		t.SetEdge(u, v, float64(config.CostInf))
	}
	return func() {
		for _, s := range saves {
			t.SetEdge(u, s.v, s.w)
		}
	}
}

// ShortestPaths runs Dijkstra from src over the topology's current edge
// weights (which may be masked by a prior MaskLinks call) and returns
// the cost to every node, using config.CostInf for unreachable nodes.
func (t *Topology) ShortestPaths(src int) map[int]float64 {
	tree := path.DijkstraFrom(simple.Node(int64(src)), t.g)

	dist := make(map[int]float64, t.NumNodes())
	for id := 0; id < t.NumNodes(); id++ {
		w := tree.WeightTo(int64(id))
		if w >= float64(config.CostInf) {
			w = float64(config.CostInf)
		}
		dist[id] = w
	}
	return dist
}

// Fingerprint returns a stable hash of the topology's node count and
// edge set, used only to tag log lines so multiple simulator runs over
// different topologies can be told apart at a glance.
func (t *Topology) Fingerprint() uint64 {
	h := xxhash.New()
	n := t.NumNodes()
	h.Write([]byte{byte(n), byte(n >> 8)})
	for u := 0; u < t.NumNodes(); u++ {
		for _, v := range t.Neighbors(u) {
			if v < u {
				continue
			}
			w := t.Weight(u, v).GetOr(0)
			h.Write([]byte{
				byte(u), byte(u >> 8),
				byte(v), byte(v >> 8),
				byte(int64(w)), byte(int64(w) >> 8), byte(int64(w) >> 16), byte(int64(w) >> 24),
			})
		}
	}
	return h.Sum64()
}
