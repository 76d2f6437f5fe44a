package search

import (
	"errors"
	"io"

	"github.com/singlecross/tilecert/profile"
)

// Sentinel errors for enumeration options.
var (
	// ErrCandidateRange indicates a candidate count outside [1, 10].
	ErrCandidateRange = errors.New("search: candidate count must be in [1, 10]")
	// ErrHypothesis indicates an unknown Hypothesis value in Options.
	ErrHypothesis = errors.New("search: unknown hypothesis")
)

// Hypothesis selects the structural property checked at complete profiles.
type Hypothesis int

const (
	// Sliceable (H1): every optimal k-tiling is sliceable. A complete
	// profile is a counterexample iff its dominance-box tiling admits no
	// split line and the profile is not monodominated.
	Sliceable Hypothesis = iota
	// BoundaryTouch (H2): every rectangle of an optimal k-tiling touches a
	// side of the grid. A complete profile is a counterexample iff some
	// dominance box is strictly interior.
	BoundaryTouch
)

// Options governs one enumeration run.
type Options struct {
	// Hypothesis is the property tested at every complete profile.
	Hypothesis Hypothesis

	// NoFastCross additionally prunes partial grids containing two adjacent
	// assigned voters more than one transposition apart. This restriction
	// shrinks the search space enough to reach larger shapes (the original
	// experiment confirmed H1 up to 6×6 with 6 candidates under it).
	NoFastCross bool

	// CollectAll keeps enumerating after a witness instead of stopping at
	// the first one.
	CollectAll bool

	// Progress receives the diagnostic count lines; nil disables reporting.
	Progress io.Writer

	// ProgressEvery is the leaf interval between diagnostic lines.
	ProgressEvery int
}

// DefaultOptions returns the configuration of the published experiment:
// hypothesis H1, no fast-cross restriction, stop on first witness, progress
// every 100 complete profiles (to the writer the caller installs).
func DefaultOptions() Options {
	return Options{
		Hypothesis:    Sliceable,
		ProgressEvery: 100,
	}
}

func (o Options) validate() error {
	if o.Hypothesis != Sliceable && o.Hypothesis != BoundaryTouch {
		return ErrHypothesis
	}

	return nil
}

// Witness is a complete single-crossing profile violating the tested
// hypothesis, together with its 1-based position in leaf order.
type Witness struct {
	Grid *profile.Grid
	Leaf int
}

// Result summarises an enumeration run.
type Result struct {
	// Witnesses holds the counterexamples found: at most one unless
	// Options.CollectAll was set. Empty means the hypothesis held on every
	// enumerated profile.
	Witnesses []Witness

	// Leaves counts the complete single-crossing profiles enumerated.
	Leaves int
}
