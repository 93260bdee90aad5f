package search_test

import (
	"fmt"

	"github.com/katalvlaran/rcsp/graph"
	"github.com/katalvlaran/rcsp/label"
	"github.com/katalvlaran/rcsp/ref"
	"github.com/katalvlaran/rcsp/search"
)

func Example() {
	g := graph.NewGraph(3, 1, 0, 2)
	_ = g.AddEdge(0, 1, 2, []float64{1})
	_ = g.AddEdge(1, 2, 3, []float64{1})

	maxRes := []float64{10}
	minRes := []float64{0}
	st := search.NewState(g, ref.Default{Critical: 0}, label.Forward, 0, false, maxRes, minRes, nil)
	st.Seed()

	for !st.Stopped {
		search.Step(st, search.NewHalfway(minRes[0], maxRes[0]), nil, false)
	}

	fmt.Println(st.Intermediate.Weight, st.Intermediate.Path)
	// Output: 5 [0 1 2]
}
