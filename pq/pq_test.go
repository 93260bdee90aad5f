package pq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rcsp/label"
	"github.com/katalvlaran/rcsp/pq"
)

func mk(c float64) *label.Label {
	return &label.Label{Res: []float64{c}}
}

func TestForwardIsMinHeap(t *testing.T) {
	q := pq.NewQueue(0, false)
	q.Enqueue(mk(5))
	q.Enqueue(mk(1))
	q.Enqueue(mk(3))

	assert.Equal(t, 1.0, q.Dequeue().Res[0])
	assert.Equal(t, 3.0, q.Dequeue().Res[0])
	assert.Equal(t, 5.0, q.Dequeue().Res[0])
	assert.Nil(t, q.Dequeue())
}

func TestBackwardIsMaxHeap(t *testing.T) {
	q := pq.NewQueue(0, true)
	q.Enqueue(mk(5))
	q.Enqueue(mk(1))
	q.Enqueue(mk(3))

	assert.Equal(t, 5.0, q.Dequeue().Res[0])
	assert.Equal(t, 3.0, q.Dequeue().Res[0])
	assert.Equal(t, 1.0, q.Dequeue().Res[0])
}

func TestLenTracksSize(t *testing.T) {
	q := pq.NewQueue(0, false)
	assert.Equal(t, 0, q.Len())
	q.Enqueue(mk(1))
	assert.Equal(t, 1, q.Len())
	q.Dequeue()
	assert.Equal(t, 0, q.Len())
}
