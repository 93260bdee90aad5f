package search

import "math"

// Halfway holds the dynamic split point on the critical resource, shared
// by both directions (spec.md §4.5/§9): min and max tighten monotonically
// from both sides until they meet, at which point further progress in
// either direction is provably useless beyond the split.
type Halfway struct {
	// Min is min_res_curr[c], tightened upward by the forward direction.
	Min float64
	// Max is max_res_curr[c], tightened downward by the backward direction.
	Max float64
}

// NewHalfway seeds the split at the original bounds for the critical
// component.
func NewHalfway(minResC, maxResC float64) *Halfway {
	return &Halfway{Min: minResC, Max: maxResC}
}

// UpdateForward tightens Min given the current forward label's
// critical-resource value: min_res_curr[c] <- max(min_res_curr[c],
// min(currResC, max_res_curr[c])).
func (h *Halfway) UpdateForward(currResC float64) {
	h.Min = math.Max(h.Min, math.Min(currResC, h.Max))
}

// UpdateBackward tightens Max given the current backward label's
// critical-resource value: max_res_curr[c] <- min(max_res_curr[c],
// max(currResC, min_res_curr[c])).
func (h *Halfway) UpdateBackward(currResC float64) {
	h.Max = math.Min(h.Max, math.Max(currResC, h.Min))
}

// ViolatedForward reports whether a forward label's critical-resource
// value has overshot the current split.
func (h *Halfway) ViolatedForward(currResC float64) bool {
	return currResC > h.Max
}

// ViolatedBackward reports whether a backward label's critical-resource
// value has undershot the current split.
func (h *Halfway) ViolatedBackward(currResC float64) bool {
	return currResC < h.Min
}

// HF returns the halfway value locked in for the join step: HF =
// min(max_res_curr[c], min_res_curr[c]).
func (h *Halfway) HF() float64 {
	return math.Min(h.Max, h.Min)
}
