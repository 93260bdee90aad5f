// Package join implements the merge step (component C8): pairing
// forward and backward labels across a connecting edge, the halfway and
// primal-bound prunes that keep the pairing cheap, and the resource
// combination that produces a single forward-oriented source→sink
// label.
//
// Grounded on flow's augmenting-path reconciliation (pairing two partial
// structures across a single connecting arc and checking a combined
// bound before accepting), adapted here to Pareto buckets instead of a
// residual graph.
package join

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/rcsp/bucket"
	"github.com/katalvlaran/rcsp/graph"
	"github.com/katalvlaran/rcsp/label"
	"github.com/katalvlaran/rcsp/ref"
)

const epsilon = 1e-9

// Config bundles the run-level parameters join needs but does not own.
type Config struct {
	Ext        ref.Extender
	Critical   int
	Elementary bool
	MaxRes     []float64
	MinRes     []float64
}

// Run executes spec.md §4.8 over the forward and backward bucket stores,
// returning the best merged, globally feasible source→sink label, or nil
// if none exists. ub is the primal bound; it is tightened in place as
// better merges are found, mirroring search.Step's convention.
func Run(g *graph.Graph, fwdStore, bwdStore *bucket.Store, hf float64, ub *float64, cfg Config) *label.Label {
	source := g.Source()

	bwdMin := boundExcluding(bwdStore, source)

	var best *label.Label
	bestPhi := make(map[string]float64)

	for _, n := range fwdStore.VisitedVertices() {
		bf := fwdStore.Best(n)
		if bf == nil || bf.Weight+bwdMin > *ub {
			continue
		}

		for _, F := range fwdStore.Bucket(n) {
			if F.Res[cfg.Critical] > hf || F.Weight+bwdMin > *ub {
				continue
			}

			for _, edge := range g.OutArcs(n) {
				m := edge.Head
				if m == source || !bwdStore.Visited(m) {
					continue
				}
				bestM := bwdStore.Best(m)
				if bestM == nil || F.Weight+edge.Weight+bestM.Weight > *ub {
					continue
				}

				for _, B := range bwdStore.Bucket(m) {
					if B.Res[cfg.Critical] < hf {
						continue
					}
					if F.Weight+edge.Weight+B.Weight > *ub+epsilon {
						continue
					}
					if !mergePreCheck(F, B, cfg.Elementary) {
						continue
					}

					M := merge(F, B, edge, cfg)
					if !M.GloballyFeasible(cfg.MinRes, cfg.MaxRes) {
						continue
					}
					if !halfwayCheck(bestPhi, M) {
						continue
					}

					if best == nil || best.Weight > M.Weight || M.FullDominates(best, cfg.Critical, cfg.Elementary) {
						best = M
						if M.Weight < *ub {
							*ub = M.Weight
						}
					}
				}
			}
		}
	}

	return best
}

// boundExcluding returns the minimum Best(v).Weight over every vertex in
// store's visited set other than exclude, or +Inf if none qualify.
func boundExcluding(store *bucket.Store, exclude int) float64 {
	min := math.Inf(1)
	for _, v := range store.VisitedVertices() {
		if v == exclude {
			continue
		}
		if b := store.Best(v); b != nil && b.Weight < min {
			min = b.Weight
		}
	}

	return min
}

// mergePreCheck requires both labels present and, in elementary mode,
// vertex-disjoint partial paths (spec.md §4.8 step 5b).
func mergePreCheck(F, B *label.Label, elementary bool) bool {
	if F == nil || B == nil {
		return false
	}
	if !elementary {
		return true
	}

	seen := make(map[int]struct{}, len(F.Path))
	for _, v := range F.Path {
		seen[v] = struct{}{}
	}
	for _, v := range B.Path {
		if _, ok := seen[v]; ok {
			return false
		}
	}

	return true
}

// merge concatenates F's path with B's reversed path, combines weight
// and resources, and attaches phi (spec.md §4.8 step 5c).
func merge(F, B *label.Label, edge graph.Arc, cfg Config) *label.Label {
	path := make([]int, 0, len(F.Path)+len(B.Path))
	path = append(path, F.Path...)
	for i := len(B.Path) - 1; i >= 0; i-- {
		path = append(path, B.Path[i])
	}

	phi := math.Abs(F.Res[cfg.Critical] - (cfg.MaxRes[cfg.Critical] - B.Res[cfg.Critical]))

	return &label.Label{
		Weight: F.Weight + edge.Weight + B.Weight,
		Vertex: path[len(path)-1],
		Res:    mergeResources(F, B, edge, cfg),
		Path:   path,
		Phi:    phi,
		Dir:    label.Forward,
	}
}

// mergeResources implements spec.md §4.8's "Default resource combination
// at merge" for the built-in additive REF, and the documented
// correction fallback for a caller-supplied ref.Join.
func mergeResources(F, B *label.Label, edge graph.Arc, cfg Config) []float64 {
	if _, ok := cfg.Ext.(ref.Default); ok {
		return processBackward(F, B, edge, cfg.MaxRes, cfg.Critical)
	}

	raw := cfg.Ext.Join(F.Res, B.Res, edge.Tail, edge.Head, edge.Res)
	expected := F.Res[cfg.Critical] + edge.Res[cfg.Critical] + (cfg.MaxRes[cfg.Critical] - B.Res[cfg.Critical])
	if cfg.Critical < len(raw) && math.Abs(raw[cfg.Critical]-expected) > epsilon {
		raw[cfg.Critical] = expected
	}

	return raw
}

// processBackward returns a forward-compatible resource vector: every
// non-critical component is B's value plus F's and the edge's additive
// contribution; the critical component is the backward label's budget
// inverted against MaxRes (the backward part's consumption) plus F's and
// the edge's contribution.
func processBackward(F, B *label.Label, edge graph.Arc, maxRes []float64, critical int) []float64 {
	cum := make([]float64, len(F.Res))
	for i := range cum {
		cum[i] = F.Res[i] + edge.Res[i]
	}

	out := make([]float64, len(B.Res))
	for i := range out {
		if i == critical {
			out[i] = maxRes[critical] - B.Res[critical] + cum[i]
		} else {
			out[i] = B.Res[i] + cum[i]
		}
	}

	return out
}

// halfwayCheck implements spec.md §4.8 step 5e: among merged labels
// already seen for the same path, M survives only if none has a
// strictly smaller phi. bestPhi is updated with the running minimum.
func halfwayCheck(bestPhi map[string]float64, M *label.Label) bool {
	key := pathKey(M.Path)
	if prev, ok := bestPhi[key]; ok {
		if prev < M.Phi-epsilon {
			return false
		}
		if M.Phi < prev {
			bestPhi[key] = M.Phi
		}

		return true
	}

	bestPhi[key] = M.Phi

	return true
}

// pathKey renders a path as a full-sequence-equality key, per spec.md
// §9's note that halfwayCheck must compare whole sequences, not a
// prefix of one path's length against another.
func pathKey(path []int) string {
	var b strings.Builder
	for _, v := range path {
		fmt.Fprintf(&b, "%d,", v)
	}

	return b.String()
}
