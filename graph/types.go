// Package graph implements the RCSP core's directed graph representation
// (component C1): a dense-indexed directed graph carrying, per edge, a
// weight and a fixed-length resource-consumption vector.
//
// The graph is built once via NewGraph/AddEdge and is immutable from the
// moment a search begins: forward and reverse adjacency are plain slices
// indexed by dense vertex index, so both directions iterate in O(deg(v))
// with no map lookups on the hot path.
//
// Concurrency: construction (AddEdge) is safe to call from a
// single goroutine only; once built, read-only operations (OutArcs,
// InArcs, HasNegativeCycle, Stats) are safe for concurrent readers, mirroring
// core.Graph's read/write split but simplified to a single mutex since the
// write phase and the read phase never overlap in an RCSP run.
package graph

import "sync"

// Vertex is a dense-indexed node. ID is an optional user-facing label;
// Index is the dense index pre-allocated by NewGraph and is what every other
// RCSP component (label, bucket, pq, preprocess, search, join) addresses.
type Vertex struct {
	// Index is the dense index in [0, NumVertices()).
	Index int

	// ID is an optional user-facing identifier. Empty if the caller never
	// supplied one; never used internally for lookups.
	ID string
}

// Arc is an adjacent-vertex record: a directed edge as seen from one of
// its endpoints. When stored in forward adjacency, Head is the far
// endpoint; when stored in reverse adjacency, Tail is the far endpoint.
type Arc struct {
	// Tail is the edge's source vertex index.
	Tail int
	// Head is the edge's destination vertex index.
	Head int
	// Weight is the edge's cost; may be negative.
	Weight float64
	// Res is the edge's resource-consumption vector, length R. Shared
	// (not copied) between the forward and reverse adjacency entries for
	// the same edge; callers must never mutate it in place.
	Res []float64
}

// Graph is an immutable-after-construction directed graph with per-edge
// resource vectors of fixed dimension R.
//
// mu guards the construction phase (AddEdge), the memoized negative-cycle
// flag, and every read accessor (OutArcs/InArcs take the read lock). The
// returned adjacency slices are not copied, so search must not mutate the
// graph concurrently with a run.
type Graph struct {
	mu sync.RWMutex

	// R is the resource dimension, fixed at NewGraph time.
	R int

	// source and sink are dense indices.
	source int
	sink   int

	// ids maps a dense index back to its optional user-facing ID.
	ids []string
	// idIndex maps a user-supplied ID back to its dense index, for callers
	// that build the graph from named vertices.
	idIndex map[string]int

	// fwd[v] lists every arc with Tail == v; rev[v] lists every arc with
	// Head == v. Built incrementally by AddEdge.
	fwd [][]Arc
	rev [][]Arc

	// anyNegativeWeight is true iff some edge has Weight < 0.
	anyNegativeWeight bool
	// allResourcesNonNegative is true iff every edge's Res components are >= 0.
	allResourcesNonNegative bool

	// negCycleComputed/negCycleResult memoize HasNegativeCycle.
	negCycleComputed bool
	negCycleResult   bool
}

// NewGraph allocates a Graph for n vertices and a resource dimension of r.
// Vertices are pre-allocated with dense indices [0, n); edges are added
// afterwards with AddEdge. source and sink are dense indices into [0, n)
// and must differ.
//
// Complexity: O(n).
func NewGraph(n, r int, source, sink int) *Graph {
	if n < 0 {
		panic("graph: n must be >= 0")
	}
	if r < 0 {
		panic("graph: r must be >= 0")
	}
	if source < 0 || source >= n || sink < 0 || sink >= n {
		panic("graph: source/sink out of range")
	}
	if source == sink {
		panic("graph: source and sink must differ")
	}

	return &Graph{
		R:                       r,
		source:                  source,
		sink:                    sink,
		ids:                     make([]string, n),
		idIndex:                 make(map[string]int, n),
		fwd:                     make([][]Arc, n),
		rev:                     make([][]Arc, n),
		allResourcesNonNegative: true,
	}
}
