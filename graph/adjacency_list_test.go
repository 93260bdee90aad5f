package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcsp/graph"
)

func TestAddEdgeAndArcs(t *testing.T) {
	g := graph.NewGraph(3, 2, 0, 2)
	require.NoError(t, g.AddEdge(0, 1, -1, []float64{1, 2}))
	require.NoError(t, g.AddEdge(1, 2, -1, []float64{1, 0.3}))

	out := g.OutArcs(0)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Head)
	assert.Equal(t, -1.0, out[0].Weight)

	in := g.InArcs(2)
	require.Len(t, in, 1)
	assert.Equal(t, 1, in[0].Tail)
}

func TestAddEdgeValidation(t *testing.T) {
	g := graph.NewGraph(2, 2, 0, 1)
	assert.ErrorIs(t, g.AddEdge(0, 5, 1, []float64{0, 0}), graph.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 1, 1, []float64{0}), graph.ErrResourceLength)
}

func TestAnyNegativeWeightAndResources(t *testing.T) {
	g := graph.NewGraph(2, 1, 0, 1)
	require.NoError(t, g.AddEdge(0, 1, 2, []float64{-1}))
	assert.False(t, g.AnyNegativeWeight())
	assert.False(t, g.AllResourcesNonNegative())

	g2 := graph.NewGraph(2, 1, 0, 1)
	require.NoError(t, g2.AddEdge(0, 1, -2, []float64{1}))
	assert.True(t, g2.AnyNegativeWeight())
	assert.True(t, g2.AllResourcesNonNegative())
}

func TestIDRoundTrip(t *testing.T) {
	g := graph.NewGraph(2, 0, 0, 1)
	require.NoError(t, g.SetID(0, "depot"))
	assert.Equal(t, "depot", g.ID(0))
	idx, ok := g.IndexForID("depot")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestStats(t *testing.T) {
	g := graph.NewGraph(3, 2, 0, 2)
	require.NoError(t, g.AddEdge(0, 1, 1, []float64{1, 1}))
	require.NoError(t, g.AddEdge(1, 2, 1, []float64{1, 1}))

	st := g.Stats()
	assert.Equal(t, 3, st.NumVertices)
	assert.Equal(t, 2, st.NumEdges)
	assert.Equal(t, 2, st.ResourceDim)
	assert.False(t, st.AnyNegativeWeight)
	assert.True(t, st.AllResourcesNonNegative)
}
