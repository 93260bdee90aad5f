// Package search implements the bidirectional search driver (component
// C7): per-direction one-step advance, the dynamic halfway split shared
// between directions, and the best-so-far intermediate s-t label.
//
// Grounded on dijkstra's runner loop (pop-from-heap, relax-neighbours,
// push-candidates), generalized from a single shortest-path relaxation to
// Pareto-bucket label extension plus halfway-aware early termination.
package search

import (
	"github.com/katalvlaran/rcsp/bucket"
	"github.com/katalvlaran/rcsp/graph"
	"github.com/katalvlaran/rcsp/label"
	"github.com/katalvlaran/rcsp/pq"
	"github.com/katalvlaran/rcsp/ref"
)

// Counters exposes a direction's processed/generated/unprocessed label
// counts, used by the orchestrator's direction-selection policy (spec.md
// §4.7.1) and for diagnostics.
type Counters struct {
	Processed   int
	Generated   int
	Unprocessed int
}

// State is one direction's search state: its graph view, REF, bounds,
// bucket store, unprocessed heap, and running counters. A State is
// private to its direction; the only state shared across directions is
// the Halfway split and the primal bound, both passed into Step
// explicitly by the orchestrator.
type State struct {
	Graph      *graph.Graph
	Ext        ref.Extender
	Dir        label.Direction
	Critical   int
	Elementary bool

	// MaxRes/MinRes are the run's original, immutable resource bounds.
	MaxRes, MinRes []float64

	// LowerBound[v], when non-nil, is the weight-only shortest-path bound
	// used for bounds pruning: for a Forward state this is the bound from
	// v to sink; for a Backward state, from source to v.
	LowerBound []float64

	Store *bucket.Store
	Queue *pq.Queue

	// Stopped is set once this direction's heap empties or the halfway
	// split is violated.
	Stopped bool

	// Intermediate is the best-so-far complete, globally feasible s-t
	// label discovered by this direction, or nil.
	Intermediate *label.Label

	Processed int
	Generated int
}

// NewState allocates an empty per-direction search state. Call Seed to
// insert the initial label before stepping.
func NewState(g *graph.Graph, ext ref.Extender, dir label.Direction, critical int, elementary bool, maxRes, minRes, lowerBound []float64) *State {
	return &State{
		Graph:      g,
		Ext:        ext,
		Dir:        dir,
		Critical:   critical,
		Elementary: elementary,
		MaxRes:     maxRes,
		MinRes:     minRes,
		LowerBound: lowerBound,
		Store:      bucket.NewStore(g.NumVertices(), critical, elementary),
		Queue:      pq.NewQueue(critical, dir == label.Backward),
	}
}

// startVertex is source for Forward, sink for Backward.
func (st *State) startVertex() int {
	if st.Dir == label.Forward {
		return st.Graph.Source()
	}

	return st.Graph.Sink()
}

// oppositeTerminal is sink for Forward, source for Backward: the vertex
// at which a label of this direction constitutes a complete s-t path.
func (st *State) oppositeTerminal() int {
	if st.Dir == label.Forward {
		return st.Graph.Sink()
	}

	return st.Graph.Source()
}

// Seed creates the initial label at this direction's start vertex,
// inserts it into the bucket store, and enqueues it.
func (st *State) Seed() {
	init := label.NewInitial(st.startVertex(), st.Dir, st.Graph.R, st.MaxRes, st.Critical, st.Graph.NumVertices(), st.Elementary)
	st.Store.Insert(init)
	st.Queue.Enqueue(init)
	st.Generated++
}

// Counters snapshots this direction's running counts.
func (st *State) Counters() Counters {
	return Counters{Processed: st.Processed, Generated: st.Generated, Unprocessed: st.Queue.Len()}
}
