package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arizona-ndn-sim/lfid/config"
	"github.com/arizona-ndn-sim/lfid/lfid/graph"
)

func TestTopologyWeightReportsMissingLinks(t *testing.T) {
	topo := graph.New([]string{"a", "b", "c"})
	topo.SetEdge(0, 1, 4)

	w := topo.Weight(0, 1)
	require.True(t, w.IsSet())
	assert.Equal(t, 4.0, w.Unwrap())

	absent := topo.Weight(0, 2)
	assert.False(t, absent.IsSet())
	assert.Equal(t, -1.0, absent.GetOr(-1))
}

func TestTopologyMaskLinksRestoresWeights(t *testing.T) {
	topo := graph.New([]string{"a", "b", "c"})
	topo.SetEdge(0, 1, 2)
	topo.SetEdge(0, 2, 3)

	restore := topo.MaskLinks(0, []int{1, 2})
	assert.Equal(t, float64(config.CostInf), topo.Weight(0, 1).Unwrap())
	assert.Equal(t, float64(config.CostInf), topo.Weight(0, 2).Unwrap())

	restore()
	assert.Equal(t, 2.0, topo.Weight(0, 1).Unwrap())
	assert.Equal(t, 3.0, topo.Weight(0, 2).Unwrap())
}
