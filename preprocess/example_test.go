package preprocess_test

import (
	"fmt"

	"github.com/katalvlaran/rcsp/graph"
	"github.com/katalvlaran/rcsp/preprocess"
)

func Example() {
	g := graph.NewGraph(3, 1, 0, 2)
	_ = g.AddEdge(0, 1, -1, []float64{1})
	_ = g.AddEdge(1, 2, -1, []float64{1})

	res := preprocess.Run(g, preprocess.Config{
		BoundsPruning: true,
		MinRes:        []float64{0},
		MaxRes:        []float64{4},
	})

	fmt.Println(res.LowerBoundBwd)
	// Output: [-2 -1 0]
}
