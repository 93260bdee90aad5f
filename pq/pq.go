// Package pq implements the direction-specific priority queue (component
// C5): a heap over unprocessed labels keyed on the critical-resource
// component, min-ordered for the forward direction and max-ordered for
// the backward direction.
//
// Grounded on dijkstra's nodePQ (container/heap.Interface over a slice of
// small item structs), generalized here with a sign flag instead of a
// second type, per the spec's "single comparator with a sign flag"
// design note.
package pq

import (
	"container/heap"

	"github.com/katalvlaran/rcsp/label"
)

// Queue is a heap of *label.Label ordered by the critical-resource
// component: ascending (min-heap) for forward, descending (max-heap) for
// backward. Queue implements container/heap.Interface directly; use
// Enqueue/Dequeue rather than the heap.Interface methods.
type Queue struct {
	items    []*label.Label
	critical int
	backward bool
}

// NewQueue allocates an empty Queue for the given critical-resource index
// and direction (backward=true orders by descending critical resource).
func NewQueue(critical int, backward bool) *Queue {
	q := &Queue{critical: critical, backward: backward}
	heap.Init(q)

	return q
}

// Enqueue adds L to the queue.
//
// Complexity: O(log n).
func (q *Queue) Enqueue(L *label.Label) {
	heap.Push(q, L)
}

// Dequeue removes and returns the head of the queue (least
// critical-resource value forward, greatest backward), or nil if empty.
//
// Complexity: O(log n).
func (q *Queue) Dequeue() *label.Label {
	if q.Len() == 0 {
		return nil
	}

	return heap.Pop(q).(*label.Label)
}

// Len reports the number of queued labels.
func (q *Queue) Len() int { return len(q.items) }

// Less orders by the critical-resource component: ascending for forward
// (backward=false), descending for backward.
func (q *Queue) Less(i, j int) bool {
	a, b := q.items[i].Res[q.critical], q.items[j].Res[q.critical]
	if q.backward {
		return a > b
	}

	return a < b
}

// Swap exchanges elements i and j.
func (q *Queue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push implements container/heap.Interface's mutator. Use Enqueue to add
// a label; this method exists to satisfy the interface.
func (q *Queue) Push(x interface{}) {
	q.items = append(q.items, x.(*label.Label))
}

// Pop implements container/heap.Interface's mutator. Use Dequeue to
// remove a label; this method exists to satisfy the interface.
func (q *Queue) Pop() interface{} {
	old := q.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]

	return it
}
