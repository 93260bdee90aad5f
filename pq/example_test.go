package pq_test

import (
	"fmt"

	"github.com/katalvlaran/rcsp/label"
	"github.com/katalvlaran/rcsp/pq"
)

func Example() {
	q := pq.NewQueue(0, false)
	q.Enqueue(&label.Label{Res: []float64{3}})
	q.Enqueue(&label.Label{Res: []float64{1}})
	q.Enqueue(&label.Label{Res: []float64{2}})

	for q.Len() > 0 {
		fmt.Println(q.Dequeue().Res[0])
	}
	// Output:
	// 1
	// 2
	// 3
}
