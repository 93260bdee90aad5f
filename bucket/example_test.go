package bucket_test

import (
	"fmt"

	"github.com/katalvlaran/rcsp/bucket"
	"github.com/katalvlaran/rcsp/label"
)

func Example() {
	s := bucket.NewStore(3, 0, false)

	cheap := &label.Label{Weight: 1, Vertex: 1, Res: []float64{1}}
	costly := &label.Label{Weight: 5, Vertex: 1, Res: []float64{1}}

	s.Insert(cheap)
	accepted, dominated := s.Insert(costly)

	fmt.Println(accepted, dominated, s.Best(1).Weight)
	// Output: false true 1
}
