package rcsp

import "errors"

// Sentinel configuration errors returned by New. Run-time infeasibility
// is never reported through these — see Path/TotalCost.
var (
	// ErrResourceLength indicates min_res and max_res have different
	// lengths.
	ErrResourceLength = errors.New("rcsp: min_res/max_res length mismatch")

	// ErrBoundsInverted indicates min_res[i] > max_res[i] for some i.
	ErrBoundsInverted = errors.New("rcsp: min_res[i] > max_res[i]")

	// ErrVertexOutOfRange indicates source or sink falls outside [0, n).
	ErrVertexOutOfRange = errors.New("rcsp: source/sink vertex index out of range")

	// ErrSameSourceSink indicates source and sink are equal.
	ErrSameSourceSink = errors.New("rcsp: source and sink must differ")

	// ErrBadCriticalRes indicates critical_res falls outside [0, R).
	ErrBadCriticalRes = errors.New("rcsp: critical_res index out of range")
)
