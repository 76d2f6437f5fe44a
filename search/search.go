package search

import (
	"fmt"

	"github.com/singlecross/tilecert/prefs"
	"github.com/singlecross/tilecert/profile"
)

// Violates reports whether the complete profile g is a counterexample to h
// with c candidates. Exposed so known fixtures can be checked against a
// hypothesis without enumerating.
func Violates(g *profile.Grid, c int, h Hypothesis) bool {
	switch h {
	case Sliceable:
		// The disjunction is kept exactly as in the underlying lemma: a
		// monodominated grid has no split line yet is trivially sliceable.
		return !g.AdmitsSplitLine(c) && !g.IsMonodominated()
	case BoundaryTouch:
		return g.HasIsolated(c)
	default:
		return false
	}
}

// Run enumerates all grid single-crossing preference profiles of shape n×m
// over c candidates and checks opts.Hypothesis at every complete one. Cell
// (0, 0) is pinned to the identity ordering; all other cells range over the
// c! preference lists in lexicographic order. Partial grids failing
// profile.Valid (or containing a fast cross, when opts.NoFastCross) are
// pruned; monotonicity of both predicates guarantees no valid completion is
// lost.
//
// Returns the witnesses found and the number of complete profiles visited.
// An empty witness list certifies the hypothesis on the whole shape.
func Run(n, m, c int, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if c < 1 || c > 10 {
		return Result{}, ErrCandidateRange
	}
	g, err := profile.New(n, m)
	if err != nil {
		return Result{}, err
	}

	e := &engine{grid: g, c: c, opts: opts}
	e.step(0, 0)

	return Result{Witnesses: e.witnesses, Leaves: e.leaves}, nil
}

// engine holds the search state: the single mutable grid plus counters.
// A dedicated struct (rather than closures over Run locals) keeps the
// recursion hot path free of captured-variable indirection.
type engine struct {
	grid *profile.Grid
	c    int
	opts Options

	leaves    int
	witnesses []Witness
	stopped   bool
}

// step processes the recursion frame owning cell (r, col): prune, detect
// completion, wrap to the next row, or assign the cell and recurse. The
// frame restores its cell to unassigned before returning, so the grid is
// all-unassigned again once the root frame exits.
func (e *engine) step(r, col int) {
	if e.opts.NoFastCross && e.grid.HasFastCross(e.c) {
		return
	}
	if !e.grid.Valid(e.c) {
		return
	}

	switch {
	case r == e.grid.Rows():
		e.leaf()
	case col == e.grid.Cols():
		e.step(r+1, 0)
	default:
		perm := prefs.Identity(e.c)
		for {
			e.grid.Set(r, col, perm)
			e.step(r, col+1)
			if e.stopped {
				break
			}
			// Voter (0, 0) keeps the identity ordering.
			if r == 0 && col == 0 {
				break
			}
			if !prefs.NextPerm(perm) {
				break
			}
		}
		e.grid.Clear(r, col)
	}
}

// leaf handles one complete single-crossing profile: progress accounting and
// the hypothesis check.
func (e *engine) leaf() {
	e.leaves++
	if e.opts.Progress != nil && e.opts.ProgressEvery > 0 && e.leaves%e.opts.ProgressEvery == 0 {
		fmt.Fprintf(e.opts.Progress, "Processed %d grid profiles.\n", e.leaves)
	}

	if Violates(e.grid, e.c, e.opts.Hypothesis) {
		e.witnesses = append(e.witnesses, Witness{Grid: e.grid.Clone(), Leaf: e.leaves})
		if !e.opts.CollectAll {
			e.stopped = true
		}
	}
}
