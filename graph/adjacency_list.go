// SPDX-License-Identifier: MIT
package graph

import "fmt"

// ErrIndexOutOfRange is returned when a vertex index falls outside [0, N).
var ErrIndexOutOfRange = fmt.Errorf("graph: vertex index out of range")

// ErrResourceLength is returned when an edge's resource vector does not
// have exactly R components.
var ErrResourceLength = fmt.Errorf("graph: resource vector has wrong length")

// SetID attaches a user-facing identifier to the dense index v. Optional;
// nothing internal depends on it. Complexity: O(1).
func (g *Graph) SetID(v int, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if v < 0 || v >= len(g.ids) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, v)
	}
	g.ids[v] = id
	g.idIndex[id] = v

	return nil
}

// ID returns the user-facing identifier for dense index v, or "" if none
// was set.
func (g *Graph) ID(v int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.ids) {
		return ""
	}

	return g.ids[v]
}

// IndexForID returns the dense index registered for id via SetID, and
// whether it was found.
func (g *Graph) IndexForID(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.idIndex[id]

	return v, ok
}

// AddEdge appends a directed edge tail->head with the given weight and
// resource vector to both forward and reverse adjacency. res is not
// copied; callers must not mutate it afterwards.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(tail, head int, weight float64, res []float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if tail < 0 || tail >= len(g.fwd) || head < 0 || head >= len(g.fwd) {
		return fmt.Errorf("%w: tail=%d head=%d", ErrIndexOutOfRange, tail, head)
	}
	if len(res) != g.R {
		return fmt.Errorf("%w: got %d want %d", ErrResourceLength, len(res), g.R)
	}

	if weight < 0 {
		g.anyNegativeWeight = true
	}
	for _, c := range res {
		if c < 0 {
			g.allResourcesNonNegative = false
			break
		}
	}

	g.fwd[tail] = append(g.fwd[tail], Arc{Tail: tail, Head: head, Weight: weight, Res: res})
	g.rev[head] = append(g.rev[head], Arc{Tail: tail, Head: head, Weight: weight, Res: res})

	// Adding an edge invalidates any memoized negative-cycle result.
	g.negCycleComputed = false

	return nil
}

// NumVertices returns the dense vertex count n.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.fwd)
}

// Source returns the source vertex's dense index.
func (g *Graph) Source() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.source
}

// Sink returns the sink vertex's dense index.
func (g *Graph) Sink() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sink
}

// OutArcs returns the forward adjacency (out-arcs) of vertex v, for
// forward-direction extension. The returned slice must not be mutated.
//
// Complexity: O(1) to obtain; O(deg+(v)) to iterate.
func (g *Graph) OutArcs(v int) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.fwd) {
		return nil
	}

	return g.fwd[v]
}

// InArcs returns the reverse adjacency (in-arcs) of vertex v, for
// backward-direction extension. The returned slice must not be mutated.
//
// Complexity: O(1) to obtain; O(deg-(v)) to iterate.
func (g *Graph) InArcs(v int) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.rev) {
		return nil
	}

	return g.rev[v]
}

// AnyNegativeWeight reports whether any edge added so far has Weight < 0.
func (g *Graph) AnyNegativeWeight() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.anyNegativeWeight
}

// AllResourcesNonNegative reports whether every edge's resource vector
// added so far is component-wise non-negative.
func (g *Graph) AllResourcesNonNegative() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allResourcesNonNegative
}

// GraphStats is an O(V+E) read-only snapshot of the graph's size and
// weight/resource posture, grounded on core.Graph.Stats(): useful for a
// solver's pre-run sanity checks and for test assertions.
type GraphStats struct {
	NumVertices             int
	NumEdges                int
	ResourceDim             int
	AnyNegativeWeight       bool
	AllResourcesNonNegative bool
}

// Stats produces a GraphStats snapshot.
//
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := 0
	for _, arcs := range g.fwd {
		edges += len(arcs)
	}

	return GraphStats{
		NumVertices:             len(g.fwd),
		NumEdges:                edges,
		ResourceDim:             g.R,
		AnyNegativeWeight:       g.anyNegativeWeight,
		AllResourcesNonNegative: g.allResourcesNonNegative,
	}
}
