package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcsp/graph"
)

func TestHasNegativeCycleFalseOnDAG(t *testing.T) {
	g := graph.NewGraph(3, 1, 0, 2)
	require.NoError(t, g.AddEdge(0, 1, -5, []float64{1}))
	require.NoError(t, g.AddEdge(1, 2, -5, []float64{1}))
	assert.False(t, g.HasNegativeCycle())
}

func TestHasNegativeCycleTrue(t *testing.T) {
	g := graph.NewGraph(3, 1, 0, 2)
	require.NoError(t, g.AddEdge(0, 1, -1, []float64{1}))
	require.NoError(t, g.AddEdge(1, 0, -1, []float64{1}))
	require.NoError(t, g.AddEdge(1, 2, 1, []float64{1}))
	assert.True(t, g.HasNegativeCycle())
}

func TestHasNegativeCycleMemoized(t *testing.T) {
	g := graph.NewGraph(2, 1, 0, 1)
	require.NoError(t, g.AddEdge(0, 1, 1, []float64{1}))
	assert.False(t, g.HasNegativeCycle())
	// Calling again hits the memoized path; result must be stable.
	assert.False(t, g.HasNegativeCycle())
}
