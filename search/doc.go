// Package search implements the backtracking enumerator of Experiment G: an
// exhaustive depth-first walk over grid single-crossing preference profiles
// of a fixed shape, testing one structural hypothesis at every complete
// profile.
//
// What:
//
//   - Run(n, m, c, opts) assigns one cell per recursion level in row-major
//     order, streaming all c! preference lists per cell lexicographically
//     (cell (0, 0) is pinned to the identity ordering, without loss of
//     generality).
//   - After every assignment the partial grid is pruned with profile.Valid —
//     and, when Options.NoFastCross is set, with profile.HasFastCross. Both
//     predicates are monotone (a false/true verdict survives every
//     extension), so pruning never misses a valid completion.
//   - At each complete profile the active hypothesis is checked; a violating
//     grid becomes a Witness. By default the first witness stops the search
//     (proof by exhibition); Options.CollectAll gathers every witness.
//   - Every Options.ProgressEvery completed profiles a diagnostic line
//     "Processed <count> grid profiles." goes to Options.Progress.
//
// Hypotheses:
//
//   - Sliceable (H1): a complete profile violates iff its dominance-box
//     tiling admits no split line and the profile is not monodominated.
//   - BoundaryTouch (H2): a complete profile violates iff some candidate's
//     dominance box is strictly interior to the grid.
//
// Complexity: the tree has at most (c!)^(n·m-1) leaves; validity pruning
// collapses it to the single-crossing profiles. Each node costs one
// profile.Valid call, O(c³·n·m).
//
// Errors:
//
//   - ErrCandidateRange: candidate count outside [1, 10] (the printed grid
//     format spends one decimal digit per candidate).
//   - ErrHypothesis: Options names an unknown hypothesis.
//   - profile.ErrEmptyGrid: non-positive shape.
package search
