package graph_test

import (
	"fmt"

	"github.com/katalvlaran/rcsp/graph"
)

func Example() {
	g := graph.NewGraph(3, 2, 0, 2)
	_ = g.AddEdge(0, 1, -1, []float64{1, 2})
	_ = g.AddEdge(1, 2, -1, []float64{1, 3})

	stats := g.Stats()
	fmt.Println(stats.NumVertices, stats.NumEdges, g.AnyNegativeWeight())
	// Output: 3 2 true
}
