// Package tilecert holds two computational certificates accompanying a result
// about single-crossing preference profiles on a two-dimensional grid and
// their optimal k-tilings by rectangular dominance boxes.
//
// Experiment G (cmd/gridtrial) exhaustively enumerates grid single-crossing
// profiles of a fixed shape and tests two structural hypotheses:
//
//	H1: every optimal k-tiling is sliceable.
//	H2: every rectangle in an optimal k-tiling touches the boundary of the grid.
//
// Experiment L (cmd/lpproof) builds, for each of the 151 single-crossing
// triples over four candidates and each of four pivot values, a real-valued
// linear system and certifies its infeasibility through the Z3 theorem prover.
//
// Packages:
//
//	prefs/   — preference lists: ranking lookups, crossing counts, permutation streams
//	rect/    — inclusive 2-D bounding boxes with grid-line crossing tests
//	profile/ — grid preference profiles and their structural predicates
//	search/  — backtracking enumerator with monotone pruning and leaf checks
//	lp/      — single-crossing triples and the linear feasibility systems
//	lpz3/    — Z3-backed decision driver for lp systems
//
// Both experiments follow proof-by-exhibition semantics: silent completion
// with exit status 0 means the tested property held on every instance; the
// first counterexample is printed and terminates the process with status 1.
package tilecert
