package rcsp_test

import (
	"fmt"

	"github.com/katalvlaran/rcsp"
)

func Example() {
	s, err := rcsp.New(3, 0, 2, []float64{4, 20}, []float64{0, 0})
	if err != nil {
		panic(err)
	}
	_ = s.AddEdge(0, 1, 0, []float64{1, 2})
	_ = s.AddEdge(1, 2, 0, []float64{1, 10})

	if err := s.Run(); err != nil {
		panic(err)
	}

	fmt.Println(s.Path(), s.TotalCost(), s.ConsumedResources())
	// Output: [0 1 2] 0 [2 12]
}
