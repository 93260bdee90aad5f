package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcsp/graph"
	"github.com/katalvlaran/rcsp/label"
	"github.com/katalvlaran/rcsp/ref"
	"github.com/katalvlaran/rcsp/search"
)

// chainGraph: 0 -(1,[1])-> 1 -(1,[1])-> 2 -(1,[1])-> 3, source=0 sink=3.
func chainGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph(4, 1, 0, 3)
	require.NoError(t, g.AddEdge(0, 1, 1, []float64{1}))
	require.NoError(t, g.AddEdge(1, 2, 1, []float64{1}))
	require.NoError(t, g.AddEdge(2, 3, 1, []float64{1}))

	return g
}

func TestForwardStepRunsToSink(t *testing.T) {
	g := chainGraph(t)
	maxRes := []float64{10}
	minRes := []float64{0}
	st := search.NewState(g, ref.Default{Critical: 0}, label.Forward, 0, false, maxRes, minRes, nil)
	st.Seed()

	for !st.Stopped {
		search.Step(st, search.NewHalfway(minRes[0], maxRes[0]), nil, false)
	}

	require.NotNil(t, st.Intermediate)
	assert.Equal(t, 3.0, st.Intermediate.Weight)
	assert.Equal(t, []int{0, 1, 2, 3}, st.Intermediate.Path)
}

func TestBackwardStepRunsToSource(t *testing.T) {
	g := chainGraph(t)
	maxRes := []float64{10}
	minRes := []float64{0}
	st := search.NewState(g, ref.Default{Critical: 0}, label.Backward, 0, false, maxRes, minRes, nil)
	st.Seed()

	for !st.Stopped {
		search.Step(st, search.NewHalfway(minRes[0], maxRes[0]), nil, false)
	}

	require.NotNil(t, st.Intermediate)
	assert.Equal(t, 3.0, st.Intermediate.Weight)
}

func TestHalfwayViolationStopsDirection(t *testing.T) {
	g := chainGraph(t)
	maxRes := []float64{10}
	minRes := []float64{0}
	st := search.NewState(g, ref.Default{Critical: 0}, label.Forward, 0, false, maxRes, minRes, nil)
	st.Seed()

	hw := search.NewHalfway(0, 0) // split locked at 0: any forward move past res[c]=0 violates.
	advanced := search.Step(st, hw, nil, true)
	assert.True(t, advanced) // the seed label itself sits at res[c]=0, not yet violating.
	for !st.Stopped {
		search.Step(st, hw, nil, true)
	}
	assert.True(t, st.Stopped)
}

func TestBoundsPruningDropsOverBudgetCandidates(t *testing.T) {
	g := chainGraph(t)
	maxRes := []float64{10}
	minRes := []float64{0}
	lb := make([]float64, g.NumVertices())
	for i := range lb {
		lb[i] = 0
	}
	st := search.NewState(g, ref.Default{Critical: 0}, label.Forward, 0, false, maxRes, minRes, lb)
	st.Seed()
	ub := 0.5 // tighter than any real path (weight 1 per edge); everything should be pruned.

	for !st.Stopped {
		search.Step(st, search.NewHalfway(minRes[0], maxRes[0]), &ub, false)
	}

	assert.Nil(t, st.Intermediate)
	assert.False(t, st.Store.Visited(3))
}

func TestCountersTrackProcessedAndGenerated(t *testing.T) {
	g := chainGraph(t)
	maxRes := []float64{10}
	minRes := []float64{0}
	st := search.NewState(g, ref.Default{Critical: 0}, label.Forward, 0, false, maxRes, minRes, nil)
	st.Seed()
	c0 := st.Counters()
	assert.Equal(t, 1, c0.Generated)
	assert.Equal(t, 1, c0.Unprocessed)

	search.Step(st, search.NewHalfway(minRes[0], maxRes[0]), nil, false)
	c1 := st.Counters()
	assert.Equal(t, 1, c1.Processed)
	assert.True(t, c1.Generated >= 1)
}
