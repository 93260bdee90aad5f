// Package ref defines the Resource Extension Function (REF) contract
// (component C2): a small capability interface, analogous to builder's
// IDFn/WeightFn, through which a caller may plug in custom per-direction
// resource arithmetic. A default additive implementation is provided and
// used whenever the caller registers none.
//
// The core never inspects the semantics of an extended resource vector
// beyond comparing it against min/max bounds and storing it; a panic or
// unexpected value from a caller-supplied REF is the caller's concern, not
// this package's.
package ref

// Extender is the pluggable REF contract. Implementations must be
// side-effect free: Fwd/Bwd/Join are called from the single-threaded
// search loop but must not retain or mutate the slices they receive.
type Extender interface {
	// Fwd computes the resource vector after extending a forward label
	// along tail->head via edgeRes, given the label's current resources
	// resIn, its partial path so far (vertex indices, not including head),
	// and its accumulated weight. Returns the new resource vector.
	Fwd(resIn []float64, tail, head int, edgeRes []float64, path []int, weightSoFar float64) []float64

	// Bwd is Fwd's backward-direction counterpart: extending a backward
	// label from head back across tail->head.
	Bwd(resIn []float64, tail, head int, edgeRes []float64, path []int, weightSoFar float64) []float64

	// Join computes the resource vector of a merged label spanning a
	// forward label's resources resFwd, a backward label's resources
	// resBwd, and the connecting edge tail->head with resource edgeRes.
	Join(resFwd, resBwd []float64, tail, head int, edgeRes []float64) []float64
}

// Default is the additive REF used when a Solver has no custom Extender:
// forward extension adds edgeRes component-wise; backward extension adds
// edgeRes component-wise to every resource except the critical one, which
// decreases by edgeRes[c] (or by 1 if edgeRes[c] == 0, modelling a
// monotone "steps" resource when the caller supplied none); Join performs
// the same addition Fwd would, ignoring the backward resources (the
// orchestrator's merge step is responsible for combining forward and
// backward resources — see the join package's mergeResources).
type Default struct {
	// Critical is the critical-resource index c used by Bwd's inversion.
	Critical int
}

var _ Extender = Default{}

// Fwd adds edgeRes to resIn component-wise.
func (d Default) Fwd(resIn []float64, _, _ int, edgeRes []float64, _ []int, _ float64) []float64 {
	out := make([]float64, len(resIn))
	for i := range resIn {
		out[i] = resIn[i] + edgeRes[i]
	}

	return out
}

// Bwd adds edgeRes component-wise, except the critical component which
// decreases (by edgeRes[c], or by 1 if that is zero).
func (d Default) Bwd(resIn []float64, _, _ int, edgeRes []float64, _ []int, _ float64) []float64 {
	out := make([]float64, len(resIn))
	for i := range resIn {
		if i == d.Critical {
			step := edgeRes[i]
			if step == 0 {
				step = 1
			}
			out[i] = resIn[i] - step
		} else {
			out[i] = resIn[i] + edgeRes[i]
		}
	}

	return out
}

// Join reproduces Fwd(resFwd, ..., edgeRes); the backward resources are
// combined separately by the join package, which knows how to invert the
// critical component (it needs max_res[c], which this interface does not
// receive).
func (d Default) Join(resFwd, _ []float64, tail, head int, edgeRes []float64) []float64 {
	return d.Fwd(resFwd, tail, head, edgeRes, nil, 0)
}
