// Package bucket implements the per-vertex Pareto bucket store (component
// C4): for each vertex, the set of mutually non-dominated labels produced
// during a single direction's search, plus an incrementally maintained
// pointer to the least-weight member.
//
// Grounded on core's adjacency-list-of-maps storage pattern (per-vertex
// slices guarded by a single mutex), simplified here to a single
// goroutine's worth of locking since a Store is private to one search
// direction (spec.md §5: no shared mutable state across directions).
package bucket

import (
	"github.com/katalvlaran/rcsp/label"
)

// Store holds, per vertex, the Pareto bucket of labels retained by one
// search direction.
type Store struct {
	critical   int
	elementary bool

	labels []([]*label.Label) // labels[v] is vertex v's Pareto bucket
	best   []*label.Label     // best[v] is the least-weight member of labels[v], or nil
}

// NewStore allocates a Store over numVertices vertices.
func NewStore(numVertices, critical int, elementary bool) *Store {
	return &Store{
		critical:   critical,
		elementary: elementary,
		labels:     make([][]*label.Label, numVertices),
		best:       make([]*label.Label, numVertices),
	}
}

// Insert scans bucket[v] (v = L.Vertex). If some existing member
// dominates L, L is dropped (dominated=true, accepted=false). Otherwise
// every bucket member L dominates is removed, L is pushed, and best[v] is
// updated incrementally.
//
// Complexity: O(|bucket[v]|).
func (s *Store) Insert(L *label.Label) (accepted bool, dominated bool) {
	v := L.Vertex
	bucket := s.labels[v]

	for _, existing := range bucket {
		if existing.Dominates(L, s.critical, s.elementary) {
			return false, true
		}
	}

	kept := bucket[:0]
	for _, existing := range bucket {
		if !L.Dominates(existing, s.critical, s.elementary) {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, L)
	s.labels[v] = kept

	if s.best[v] == nil || L.Weight < s.best[v].Weight {
		s.best[v] = L
	} else if s.best[v] != nil {
		// The previous best might have just been pruned by L's insertion;
		// recompute if so.
		if !contains(kept, s.best[v]) {
			s.recomputeBest(v)
		}
	}

	return true, false
}

func contains(bucket []*label.Label, L *label.Label) bool {
	for _, x := range bucket {
		if x == L {
			return true
		}
	}

	return false
}

func (s *Store) recomputeBest(v int) {
	var best *label.Label
	for _, L := range s.labels[v] {
		if best == nil || L.Weight < best.Weight {
			best = L
		}
	}
	s.best[v] = best
}

// Bucket returns vertex v's current Pareto bucket. Callers must treat it
// as read-only.
func (s *Store) Bucket(v int) []*label.Label {
	return s.labels[v]
}

// Best returns the least-weight label in vertex v's bucket, or nil if the
// bucket is empty.
func (s *Store) Best(v int) *label.Label {
	return s.best[v]
}

// Visited reports whether vertex v's bucket is non-empty.
func (s *Store) Visited(v int) bool {
	return len(s.labels[v]) > 0
}

// VisitedVertices returns every vertex index with a non-empty bucket, in
// ascending order. Used by join to enumerate the forward/backward
// frontier.
//
// Complexity: O(V).
func (s *Store) VisitedVertices() []int {
	out := make([]int, 0, len(s.labels))
	for v, b := range s.labels {
		if len(b) > 0 {
			out = append(out, v)
		}
	}

	return out
}
