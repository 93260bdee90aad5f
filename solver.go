package rcsp

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/rcsp/graph"
	"github.com/katalvlaran/rcsp/join"
	"github.com/katalvlaran/rcsp/label"
	"github.com/katalvlaran/rcsp/preprocess"
	"github.com/katalvlaran/rcsp/ref"
	"github.com/katalvlaran/rcsp/search"
)

// Solver runs one configured RCSP instance.
type Solver struct {
	g              *graph.Graph
	maxRes, minRes []float64
	cfg            Config
	logger         *slog.Logger

	ran      bool
	path     []int
	cost     float64
	consumed []float64
}

// New allocates a Solver over n vertices, the given source/sink, and
// resource bounds [min_res, max_res] (both length R, the problem's
// resource dimension). Edges are added afterwards via AddEdge.
func New(n, source, sink int, maxRes, minRes []float64, opts ...Option) (*Solver, error) {
	if len(maxRes) != len(minRes) {
		return nil, ErrResourceLength
	}
	for i := range maxRes {
		if minRes[i] > maxRes[i] {
			return nil, fmt.Errorf("%w: index %d", ErrBoundsInverted, i)
		}
	}
	if source < 0 || source >= n || sink < 0 || sink >= n {
		return nil, ErrVertexOutOfRange
	}
	if source == sink {
		return nil, ErrSameSourceSink
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(maxRes) == 0 {
		if cfg.CriticalRes != 0 {
			return nil, ErrBadCriticalRes
		}
	} else if cfg.CriticalRes < 0 || cfg.CriticalRes >= len(maxRes) {
		return nil, ErrBadCriticalRes
	}
	if cfg.Ext == nil {
		cfg.Ext = ref.Default{Critical: cfg.CriticalRes}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger()
	}

	return &Solver{
		g:      graph.NewGraph(n, len(maxRes), source, sink),
		maxRes: maxRes,
		minRes: minRes,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// AddEdge populates the underlying graph; see graph.Graph.AddEdge.
func (s *Solver) AddEdge(tail, head int, weight float64, res []float64) error {
	return s.g.AddEdge(tail, head, weight, res)
}

// SetLogger installs l as the Solver's diagnostic logger, overriding
// whatever WithLogger set (or the discard default). Passing nil reverts
// to the discard default.
func (s *Solver) SetLogger(l *slog.Logger) {
	if l == nil {
		s.logger = discardLogger()

		return
	}
	s.logger = l
}

// Reset clears the previous run's mutable result state so the Solver
// can Run again, e.g. after a configuration change. The graph and
// resource bounds are untouched.
func (s *Solver) Reset() {
	s.ran = false
	s.path = nil
	s.cost = 0
	s.consumed = nil
}

// Run executes the algorithm once (spec.md §4.7). Configuration-level
// failures are reported by New, so Run's error result is always nil;
// run-time infeasibility is reported through Path/TotalCost (empty path,
// cost = +Inf), never as an error.
func (s *Solver) Run() error {
	_, isDefault := s.cfg.Ext.(ref.Default)
	hasCustomRef := !isDefault

	pre := preprocess.Run(s.g, preprocess.Config{
		ElementaryRequested:  s.cfg.Elementary,
		AllowRelaxElementary: s.cfg.AllowElementaryRelax,
		HasCustomRef:         hasCustomRef,
		BoundsPruning:        s.cfg.BoundsPruning,
		FindCriticalRes:      s.cfg.FindCriticalRes,
		CriticalRes:          s.cfg.CriticalRes,
		MinRes:               s.minRes,
		MaxRes:               s.maxRes,
		Logger:               s.logger,
	})

	// FindCriticalRes may have resolved a critical index different from
	// cfg.CriticalRes; the default REF's Bwd inversion is keyed on the
	// critical index, so it must be rebuilt against the resolved one (a
	// caller-supplied custom Extender is left untouched — it is the
	// caller's responsibility to honor pre.CriticalRes itself).
	ext := s.cfg.Ext
	if isDefault {
		ext = ref.Default{Critical: pre.CriticalRes}
	}

	bidirectional := s.cfg.Direction == DirBoth

	var fwd, bwd *search.State
	if s.cfg.Direction != DirBackward {
		fwd = search.NewState(s.g, ext, label.Forward, pre.CriticalRes, pre.Elementary, s.maxRes, s.minRes, pre.LowerBoundBwd)
		fwd.Seed()
	}
	if s.cfg.Direction != DirForward {
		bwd = search.NewState(s.g, ext, label.Backward, pre.CriticalRes, pre.Elementary, s.maxRes, s.minRes, pre.LowerBoundFwd)
		bwd.Seed()
	}

	var critMin, critMax float64
	if len(s.maxRes) > 0 {
		critMin, critMax = s.minRes[pre.CriticalRes], s.maxRes[pre.CriticalRes]
	}
	hw := search.NewHalfway(critMin, critMax)

	ub := math.Inf(1)
	hasDeadline := s.cfg.TimeLimit > 0
	var deadline time.Time
	if hasDeadline {
		deadline = time.Now().Add(s.cfg.TimeLimit)
	}

	var thresholdWinner *label.Label
	var thresholdBackward bool

stepLoop:
	for {
		if hasDeadline && time.Now().After(deadline) {
			break
		}

		fwdActive := fwd != nil && !fwd.Stopped
		bwdActive := bwd != nil && !bwd.Stopped
		if !fwdActive && !bwdActive {
			break
		}

		dir := label.Forward
		switch {
		case fwdActive && bwdActive:
			dir = chooseDirection(s.cfg.Method, fwd, bwd)
		case bwdActive:
			dir = label.Backward
		}

		st := fwd
		if dir == label.Backward {
			st = bwd
		}
		search.Step(st, hw, &ub, bidirectional)

		if s.cfg.Threshold != nil && st.Intermediate != nil && st.Intermediate.Weight <= *s.cfg.Threshold {
			thresholdWinner = st.Intermediate
			thresholdBackward = dir == label.Backward
			break stepLoop
		}
	}

	type candidate struct {
		L        *label.Label
		backward bool
	}
	var cands []candidate

	if thresholdWinner != nil {
		cands = append(cands, candidate{thresholdWinner, thresholdBackward})
	} else {
		if bidirectional {
			merged := join.Run(s.g, fwd.Store, bwd.Store, hw.HF(), &ub, join.Config{
				Ext:        ext,
				Critical:   pre.CriticalRes,
				Elementary: pre.Elementary,
				MaxRes:     s.maxRes,
				MinRes:     s.minRes,
			})
			if merged != nil {
				cands = append(cands, candidate{merged, false})
			}
		}
		if fwd != nil && fwd.Intermediate != nil {
			cands = append(cands, candidate{fwd.Intermediate, false})
		}
		if bwd != nil && bwd.Intermediate != nil {
			cands = append(cands, candidate{bwd.Intermediate, true})
		}
	}

	var best *candidate
	for i := range cands {
		if best == nil || cands[i].L.Weight < best.L.Weight {
			best = &cands[i]
		}
	}

	s.ran = true
	if best == nil {
		s.path, s.cost, s.consumed = nil, math.Inf(1), nil

		return nil
	}

	path := best.L.Path
	consumed := best.L.Res
	if best.backward {
		path = reversePath(path)
		consumed = orientForward(consumed, pre.CriticalRes, s.maxRes)
	}
	s.path = path
	s.cost = best.L.Weight
	s.consumed = consumed

	return nil
}

// Path returns the winning path's vertex sequence, or nil if the last
// Run found no feasible path.
func (s *Solver) Path() []int { return s.path }

// TotalCost returns the winning path's cumulative weight, or +Inf if the
// last Run found no feasible path.
func (s *Solver) TotalCost() float64 { return s.cost }

// ConsumedResources returns the winning path's cumulative resource
// vector, or nil if the last Run found no feasible path.
func (s *Solver) ConsumedResources() []float64 { return s.consumed }

// chooseDirection implements spec.md §4.7.1: pick the direction with the
// smaller counter for the configured Method, breaking ties toward
// forward.
func chooseDirection(m Method, fwd, bwd *search.State) label.Direction {
	cf, cb := fwd.Counters(), bwd.Counters()

	var vf, vb int
	switch m {
	case MethodProcessed:
		vf, vb = cf.Processed, cb.Processed
	case MethodGenerated:
		vf, vb = cf.Generated, cb.Generated
	default:
		vf, vb = cf.Unprocessed, cb.Unprocessed
	}

	if vf <= vb {
		return label.Forward
	}

	return label.Backward
}

// orientForward converts a backward label's resource vector into forward
// orientation (spec.md §4.8): every component except the critical one
// already counts cumulative consumption identically to a forward label;
// the critical component is held as a remaining budget (max_res[c] −
// consumed) and must be inverted back to consumed.
func orientForward(res []float64, critical int, maxRes []float64) []float64 {
	if len(res) == 0 {
		return res
	}

	out := make([]float64, len(res))
	copy(out, res)
	out[critical] = maxRes[critical] - out[critical]

	return out
}

func reversePath(p []int) []int {
	out := make([]int, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}

	return out
}
