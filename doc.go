// Package rcsp solves the Resource Constrained Shortest Path problem: the
// minimum-weight path from a source to a sink vertex in a directed graph
// whose cumulative per-edge resource consumption stays within a box
// [min_res, max_res].
//
// The core is a bidirectional dynamic-programming labelling algorithm:
// a forward search rooted at source and a backward search rooted at
// sink each maintain, per vertex, a Pareto bucket of mutually
// non-dominated partial-path labels. The two searches are interleaved
// one step at a time and meet at a dynamically tightening halfway point
// on a chosen critical resource; a join step then pairs surviving
// forward and backward labels across a connecting edge to produce
// complete source→sink candidates, or join is skipped entirely when a
// threshold causes early termination.
//
// Subpackages:
//
//	graph/      — directed graph with per-edge weight and resource vector
//	ref/        — pluggable Resource Extension Function (REF) contract
//	label/      — label extension, feasibility, and Pareto dominance
//	bucket/     — per-vertex Pareto bucket store
//	pq/         — direction-specific priority queue over unprocessed labels
//	preprocess/ — lower-bound weights, critical-resource selection, elementary relaxation
//	search/     — per-direction one-step advance and the halfway split
//	join/       — forward/backward label reconciliation into an s-t path
//
// Usage:
//
//	s, err := rcsp.New(5, 0, 4, []float64{4, 20}, []float64{0, 0})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = s.AddEdge(0, 1, -1, []float64{1, 2})
//	// ... more edges ...
//	if err := s.Run(); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(s.Path(), s.TotalCost(), s.ConsumedResources())
//
// Run never fails on infeasibility: an exhausted search reports an empty
// Path and TotalCost() == +Inf. Configuration-level problems (mismatched
// resource-vector lengths, inverted bounds, an out-of-range or repeated
// source/sink, an out-of-range critical resource) are reported by New's
// error return; Run's error return is always nil.
package rcsp
