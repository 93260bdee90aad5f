// Package preprocess implements the RCSP preprocessor (component C6):
// negative-cycle-gated relaxation of the elementary flag, optional
// shortest-path lower-bound weights for bounds pruning, and optional
// critical-resource selection.
//
// Grounded on dijkstra's runner/relax structuring, adapted to
// Bellman-Ford since edge weights may be negative (spec.md §8 scenarios 1
// and 3 both have negative-weight edges, which rules out Dijkstra's
// own non-negative-weight precondition).
package preprocess

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/rcsp/graph"
)

// Result holds everything the preprocessor computes for one run.
type Result struct {
	// Elementary is the (possibly relaxed) elementary flag to use for the
	// run. It is relaxed from true to false only when AllowRelaxElementary
	// requested it and doing so is provably safe (see ResolveElementary).
	Elementary bool
	// ElementaryRelaxed records whether Elementary was flipped from the
	// caller's requested true to false.
	ElementaryRelaxed bool

	// CriticalRes is the selected (or passed-through) critical-resource
	// index.
	CriticalRes int

	// LowerBoundFwd[v] is the weight-only shortest-path distance from
	// source to v (+Inf if unreachable); nil if bounds pruning was not
	// requested.
	LowerBoundFwd []float64
	// LowerBoundBwd[v] is the weight-only shortest-path distance from v
	// to sink (+Inf if unreachable); nil if bounds pruning was not
	// requested.
	LowerBoundBwd []float64
}

// ResolveElementary implements spec.md §4.6's relaxation rule: when the
// caller requested elementary=true but the graph has no negative cycle,
// all resources are non-negative, no custom REF is registered, and every
// min_res[i] == 0, there is no reason to enforce simple paths, so the
// flag may be safely relaxed to false. Every other combination leaves the
// caller's request untouched.
//
// logger receives a warning when the flag is relaxed, per spec.md §9's
// note that this optimisation "silently alters user intent and should be
// logged or made opt-in" — here it is opt-in (callers must pass
// allowRelax=true) and, when taken, logged.
func ResolveElementary(g *graph.Graph, minRes []float64, hasCustomRef bool, requested bool, allowRelax bool, logger *slog.Logger) (elementary bool, relaxed bool) {
	if !requested || !allowRelax {
		return requested, false
	}
	if g.HasNegativeCycle() {
		return true, false
	}
	if !g.AllResourcesNonNegative() {
		return true, false
	}
	if hasCustomRef {
		return true, false
	}
	for _, m := range minRes {
		if m != 0 {
			return true, false
		}
	}

	if logger != nil {
		logger.Warn("preprocess: relaxing elementary=true to false; no negative cycle, " +
			"all resources non-negative, default REF, all min_res == 0")
	}

	return false, true
}

// LowerBoundWeights computes weight-only Bellman-Ford shortest-path
// distances from source (forward) and to sink (backward, via the
// reverse graph), for use by bounds pruning (spec.md §4.5's "Bounds
// pruning (optional)").
//
// Complexity: O(V*E) each direction.
func LowerBoundWeights(g *graph.Graph) (fwd, bwd []float64) {
	n := g.NumVertices()
	fwd = bellmanFord(n, g.Source(), func(v int) []graph.Arc { return g.OutArcs(v) }, func(a graph.Arc) int { return a.Head })
	bwd = bellmanFord(n, g.Sink(), func(v int) []graph.Arc { return g.InArcs(v) }, func(a graph.Arc) int { return a.Tail })

	return fwd, bwd
}

// bellmanFord computes single-source shortest weight-only distances from
// start, relaxing via arcs(v) and stepping to neighbor(arc) each time.
// Unreachable vertices hold +Inf. Assumes no negative cycle reachable
// from start (callers are expected to have checked HasNegativeCycle
// first; an unchecked negative cycle simply stops improving after V-1
// passes, same as any Bellman-Ford).
func bellmanFord(n, start int, arcs func(int) []graph.Arc, neighbor func(graph.Arc) int) []float64 {
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	if n == 0 {
		return dist
	}
	dist[start] = 0

	for i := 0; i < n-1; i++ {
		changed := false
		for u := 0; u < n; u++ {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, a := range arcs(u) {
				v := neighbor(a)
				if nd := dist[u] + a.Weight; nd < dist[v] {
					dist[v] = nd
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// SelectCriticalResource implements spec.md §4.6's critical-resource
// selection: for each resource index r, solve shortest paths with edge
// weights replaced by res[r], compute dist(source, sink), and return
// argmax_r(|dist| - maxRes[r]) — the resource whose tightness is
// highest. Exposed standalone (not only invoked from Run) so it can be
// independently tested, grounded on how tsp's bound_onetree.go exposes
// its lower-bound computation as a standalone function rather than
// inlining it into the solve loop.
//
// Returns 0 if r == 0 (nothing to choose among).
func SelectCriticalResource(g *graph.Graph, maxRes []float64) int {
	r := g.R
	if r <= 1 {
		return 0
	}

	n := g.NumVertices()
	best := 0
	bestScore := math.Inf(-1)

	for res := 0; res < r; res++ {
		dist := make([]float64, n)
		for i := range dist {
			dist[i] = math.Inf(1)
		}
		dist[g.Source()] = 0
		for i := 0; i < n-1; i++ {
			changed := false
			for u := 0; u < n; u++ {
				if math.IsInf(dist[u], 1) {
					continue
				}
				for _, a := range g.OutArcs(u) {
					if nd := dist[u] + a.Res[res]; nd < dist[a.Head] {
						dist[a.Head] = nd
						changed = true
					}
				}
			}
			if !changed {
				break
			}
		}

		d := dist[g.Sink()]
		if math.IsInf(d, 1) {
			continue
		}
		score := math.Abs(d) - maxRes[res]
		if score > bestScore {
			bestScore = score
			best = res
		}
	}

	return best
}

// Config bundles the preprocessor's inputs.
type Config struct {
	ElementaryRequested  bool
	AllowRelaxElementary bool
	HasCustomRef         bool
	BoundsPruning        bool
	FindCriticalRes      bool
	CriticalRes          int
	MinRes, MaxRes       []float64
	Logger               *slog.Logger
}

// Run executes the full preprocessing pass described in spec.md §4.6:
// elementary relaxation, optional lower-bound weights, optional
// critical-resource selection.
func Run(g *graph.Graph, cfg Config) Result {
	elementary, relaxed := ResolveElementary(g, cfg.MinRes, cfg.HasCustomRef, cfg.ElementaryRequested, cfg.AllowRelaxElementary, cfg.Logger)

	res := Result{
		Elementary:        elementary,
		ElementaryRelaxed: relaxed,
		CriticalRes:       cfg.CriticalRes,
	}

	if cfg.FindCriticalRes {
		res.CriticalRes = SelectCriticalResource(g, cfg.MaxRes)
	}

	if cfg.BoundsPruning {
		res.LowerBoundFwd, res.LowerBoundBwd = LowerBoundWeights(g)
	}

	return res
}
