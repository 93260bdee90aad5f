// Package label implements the RCSP labelling state machine (component
// C3): an immutable partial-path record, its feasibility check under
// extension, and the Pareto dominance relation used to prune a vertex's
// bucket.
package label

import (
	"github.com/katalvlaran/rcsp/graph"
	"github.com/katalvlaran/rcsp/ref"
)

// Direction distinguishes a forward (source-rooted) label from a backward
// (sink-rooted) one; the critical-resource comparison in Dominates and the
// REF entry point in Extend both flip on Direction.
type Direction int

const (
	// Forward labels grow from source; their critical resource increases.
	Forward Direction = iota
	// Backward labels grow from sink; their critical resource decreases.
	Backward
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}

	return Forward
}

// Label is an immutable partial-path record produced either as an initial
// label at source/sink or by Extend. Path is owned by this Label and must
// never be mutated by callers; Extend always allocates a fresh slice.
type Label struct {
	// Weight is the cumulative cost along Path.
	Weight float64
	// Vertex is the current endpoint (the last element of Path).
	Vertex int
	// Res is the cumulative resource vector along Path, length R.
	Res []float64
	// Path is the ordered sequence of vertex indices; in Backward
	// direction the sequence runs in reverse traversal order (ending at
	// sink, per spec.md §3).
	Path []int
	// Unreachable is non-nil only in elementary mode; it records
	// vertices this label must not revisit.
	Unreachable *BitSet
	// Phi is the halfway distance of a merged label; zero on labels that
	// were not produced by the join step.
	Phi float64
	// Dir is this label's direction.
	Dir Direction
}

// NewInitial creates the seed label at source (Forward, Res all zero
// except the critical component is fixed at 0) or at sink (Backward,
// critical component fixed at maxRes[critical]). numVertices sizes the
// elementary-mode unreachable bitset; non-elementary callers pay nothing
// extra since the bitset stays nil.
func NewInitial(vertex int, dir Direction, r int, maxRes []float64, critical int, numVertices int, elementary bool) *Label {
	res := make([]float64, r)
	if dir == Backward && r > 0 {
		res[critical] = maxRes[critical]
	}

	var unreachable *BitSet
	if elementary {
		unreachable = NewBitSet(numVertices).WithSet(vertex)
	}

	return &Label{
		Vertex:      vertex,
		Res:         res,
		Path:        []int{vertex},
		Unreachable: unreachable,
		Dir:         dir,
	}
}

// Extend attempts to extend L across arc (in L.Dir's sense: for Forward,
// arc.Tail == L.Vertex and the new endpoint is arc.Head; for Backward,
// arc.Head == L.Vertex and the new endpoint is arc.Tail). effUnreachable
// is the unreachable set to honor for this attempt (normally L.Unreachable,
// but see search's one-step advance, which threads a refined copy across
// the arcs of a single move so earlier infeasible heads are skipped for
// later arcs of the same label).
//
// Returns the extended label and true on success; (nil, false) when the
// extension is infeasible or elementary-mode forbids it.
func Extend(
	L *Label,
	arc graph.Arc,
	ext ref.Extender,
	maxRes, minRes []float64,
	critical int,
	elementary bool,
	effUnreachable *BitSet,
) (*Label, bool) {
	var newVertex int
	if L.Dir == Forward {
		newVertex = arc.Head
	} else {
		newVertex = arc.Tail
	}

	// §4.3 point 3: elementary mode refuses revisiting a marked vertex.
	if elementary && effUnreachable.Has(newVertex) {
		return nil, false
	}

	var resOut []float64
	if L.Dir == Forward {
		resOut = ext.Fwd(L.Res, arc.Tail, arc.Head, arc.Res, L.Path, L.Weight)
	} else {
		resOut = ext.Bwd(L.Res, arc.Tail, arc.Head, arc.Res, L.Path, L.Weight)
	}

	// §4.3 point 2 / §7: max_res enforced component-wise; min_res enforced
	// (hard, not soft) only for the critical component during extension.
	for i, v := range resOut {
		if v > maxRes[i] {
			return nil, false
		}
	}
	if len(resOut) > 0 && resOut[critical] < minRes[critical] {
		return nil, false
	}

	path := make([]int, len(L.Path)+1)
	copy(path, L.Path)
	path[len(L.Path)] = newVertex

	var unreachable *BitSet
	if elementary {
		unreachable = L.Unreachable.WithSet(newVertex)
	}

	return &Label{
		Weight:      L.Weight + arc.Weight,
		Vertex:      newVertex,
		Res:         resOut,
		Path:        path,
		Unreachable: unreachable,
		Dir:         L.Dir,
	}, true
}

// GloballyFeasible reports whether L.Res lies within [minRes, maxRes]
// component-wise, the absolute check applied at the final s-t feasibility
// test (spec.md §7) regardless of direction.
func (L *Label) GloballyFeasible(minRes, maxRes []float64) bool {
	for i, v := range L.Res {
		if v < minRes[i] || v > maxRes[i] {
			return false
		}
	}

	return true
}

// Dominates reports whether L dominates other at their shared vertex,
// per spec.md §4.3: L.Weight <= other.Weight; component-wise resource
// domination (inverted on the critical component in Backward direction);
// L.Unreachable subset of other.Unreachable in elementary mode; and at
// least one strict inequality among weight, resources, and (in elementary
// mode) the unreachable sets.
func (L *Label) Dominates(other *Label, critical int, elementary bool) bool {
	if L.Weight > other.Weight {
		return false
	}

	strict := L.Weight < other.Weight
	for i := range L.Res {
		if i == critical && L.Dir == Backward {
			if L.Res[i] < other.Res[i] {
				return false
			}
			if L.Res[i] > other.Res[i] {
				strict = true
			}
			continue
		}
		if L.Res[i] > other.Res[i] {
			return false
		}
		if L.Res[i] < other.Res[i] {
			strict = true
		}
	}

	if elementary {
		if !L.Unreachable.SubsetOf(other.Unreachable) {
			return false
		}
		if !other.Unreachable.SubsetOf(L.Unreachable) {
			strict = true
		}
	}

	return strict
}

// FullDominates implements spec.md §4.3's "full dominance" used at join:
// L full-dominates other if L dominates other in L's own direction, or —
// when neither dominates the other in that direction — L dominates other
// in the opposite direction, or L has strictly smaller weight.
func (L *Label) FullDominates(other *Label, critical int, elementary bool) bool {
	if L.Dominates(other, critical, elementary) {
		return true
	}
	if other.Dominates(L, critical, elementary) {
		return false
	}

	// Neither dominates in L's direction; fall back to the canonical axis.
	flipped := *L
	flipped.Dir = L.Dir.Opposite()
	if flipped.Dominates(other, critical, elementary) {
		return true
	}

	return L.Weight < other.Weight
}
