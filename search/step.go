package search

import (
	"math"

	"github.com/katalvlaran/rcsp/graph"
	"github.com/katalvlaran/rcsp/label"
)

// Step advances st by one move (spec.md §4.5):
//
//  1. pop the head of the heap;
//  2. if bidirectional, update the shared halfway split and stop this
//     direction if the popped label has already overshot it;
//  3. extend across every edge incident to the popped label's vertex,
//     inserting accepted candidates into the bucket store and heap,
//     pruning against the primal bound when a lower-bound vector is set;
//  4. if the popped label is a complete, globally feasible s-t path,
//     record it as the new intermediate and tighten ub.
//
// ub is the orchestrator's shared primal bound; pass nil to disable
// bounds pruning regardless of whether st.LowerBound is set. Returns
// false (and sets st.Stopped) once the heap empties or the halfway split
// is violated; Step is then a no-op until Reset via a new State.
func Step(st *State, hw *Halfway, ub *float64, bidirectional bool) bool {
	if st.Stopped {
		return false
	}

	cur := st.Queue.Dequeue()
	if cur == nil {
		st.Stopped = true

		return false
	}

	if bidirectional && len(cur.Res) > 0 {
		c := cur.Res[st.Critical]
		if st.Dir == label.Forward {
			hw.UpdateForward(c)
			if hw.ViolatedForward(c) {
				st.Stopped = true

				return false
			}
		} else {
			hw.UpdateBackward(c)
			if hw.ViolatedBackward(c) {
				st.Stopped = true

				return false
			}
		}
	}

	st.Processed++

	var arcs []graph.Arc
	if st.Dir == label.Forward {
		arcs = st.Graph.OutArcs(cur.Vertex)
	} else {
		arcs = st.Graph.InArcs(cur.Vertex)
	}

	work := cur.Unreachable
	for _, a := range arcs {
		newVertex := a.Head
		if st.Dir == label.Backward {
			newVertex = a.Tail
		}

		child, ok := label.Extend(cur, a, st.Ext, st.MaxRes, st.MinRes, st.Critical, st.Elementary, work)
		if !ok {
			if st.Elementary {
				work = work.WithSet(newVertex)
			}
			continue
		}

		if st.LowerBound != nil && ub != nil && !math.IsInf(*ub, 1) {
			if child.Weight+st.LowerBound[child.Vertex] > *ub {
				continue
			}
		}

		accepted, _ := st.Store.Insert(child)
		if accepted {
			st.Queue.Enqueue(child)
			st.Generated++
		}
	}

	if cur.Vertex == st.oppositeTerminal() && cur.GloballyFeasible(st.MinRes, st.MaxRes) {
		if st.Intermediate == nil || cur.FullDominates(st.Intermediate, st.Critical, st.Elementary) || cur.Weight < st.Intermediate.Weight {
			st.Intermediate = cur
			if ub != nil && cur.Weight < *ub {
				*ub = cur.Weight
			}
		}
	}

	return true
}
