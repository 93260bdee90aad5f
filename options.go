package rcsp

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/rcsp/ref"
)

// Direction selects which side(s) of the bidirectional search run.
type Direction int

const (
	// DirForward runs only the source-rooted search.
	DirForward Direction = iota
	// DirBackward runs only the sink-rooted search.
	DirBackward
	// DirBoth runs both and reconciles them via join (default).
	DirBoth
)

// Method selects the direction-selection policy used when both
// directions are active (spec.md §4.7.1).
type Method int

const (
	// MethodUnprocessed picks the direction with the smaller unprocessed
	// heap (default).
	MethodUnprocessed Method = iota
	// MethodProcessed picks the direction with the fewer processed labels.
	MethodProcessed
	// MethodGenerated picks the direction with the fewer generated labels.
	MethodGenerated
)

// Config holds a Solver's run configuration, built via New's variadic
// Option arguments.
type Config struct {
	Direction Direction
	Method    Method

	Elementary           bool
	AllowElementaryRelax bool

	BoundsPruning   bool
	FindCriticalRes bool
	CriticalRes     int

	TimeLimit time.Duration
	Threshold *float64

	Ext ref.Extender

	Logger *slog.Logger
}

// Option configures a Solver at construction time.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Direction:   DirBoth,
		Method:      MethodUnprocessed,
		CriticalRes: 0,
	}
}

// WithDirection sets which side(s) of the search run. Default DirBoth.
func WithDirection(d Direction) Option {
	return func(c *Config) { c.Direction = d }
}

// WithMethod sets the direction-selection policy. Default
// MethodUnprocessed.
func WithMethod(m Method) Option {
	return func(c *Config) { c.Method = m }
}

// WithElementary requires the returned path to be simple (no repeated
// vertex). Default false.
func WithElementary(b bool) Option {
	return func(c *Config) { c.Elementary = b }
}

// WithAllowElementaryRelax opts into the preprocessor's automatic
// elementary=true -> false relaxation when it is provably safe (spec.md
// §4.6, §9). Default false: an explicit WithElementary(true) is honored
// as requested unless the caller opts in here.
func WithAllowElementaryRelax(b bool) Option {
	return func(c *Config) { c.AllowElementaryRelax = b }
}

// WithBoundsPruning enables lower-bound-weight pruning of candidates
// against the primal bound. Default false. Never changes the returned
// cost (spec.md §8).
func WithBoundsPruning(b bool) Option {
	return func(c *Config) { c.BoundsPruning = b }
}

// WithFindCriticalRes enables automatic critical-resource selection
// (spec.md §4.6). Default false (critical resource stays at
// WithCriticalRes, or 0). Never changes the returned cost.
func WithFindCriticalRes(b bool) Option {
	return func(c *Config) { c.FindCriticalRes = b }
}

// WithCriticalRes fixes the critical-resource index explicitly. Panics
// if negative; New validates it against R.
func WithCriticalRes(idx int) Option {
	return func(c *Config) {
		if idx < 0 {
			panic("rcsp: critical_res must be non-negative")
		}
		c.CriticalRes = idx
	}
}

// WithTimeLimit bounds wall-clock search time; the step loop checks it
// at each iteration boundary (spec.md §5). Panics if negative. Zero
// (the default) means no limit.
func WithTimeLimit(d time.Duration) Option {
	return func(c *Config) {
		if d < 0 {
			panic("rcsp: time_limit must be non-negative")
		}
		c.TimeLimit = d
	}
}

// WithThreshold enables early termination: the first source→sink label
// found (in either active direction) at or under w is returned
// immediately, skipping join (spec.md §4.5, §7).
func WithThreshold(w float64) Option {
	return func(c *Config) { c.Threshold = &w }
}

// WithRefExtender installs a custom Resource Extension Function. Panics
// if ext is nil. Default is ref.Default{Critical: critical_res}.
func WithRefExtender(ext ref.Extender) Option {
	return func(c *Config) {
		if ext == nil {
			panic("rcsp: ref extender must not be nil")
		}
		c.Ext = ext
	}
}

// WithLogger installs a logger the Solver uses for the narrow set of
// diagnostic events spec.md §9 flags (currently: the elementary-relax
// anomaly). Panics if l is nil; use SetLogger(nil) to silence logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l == nil {
			panic("rcsp: logger must not be nil")
		}
		c.Logger = l
	}
}
