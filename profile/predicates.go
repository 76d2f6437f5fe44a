package profile

import "github.com/singlecross/tilecert/prefs"

// Valid returns false only when g is certainly not single-crossing: for some
// ordered pair of distinct candidates the "prefers c0 over c1" and "prefers
// c1 over c0" bounding boxes intersect. A true single-crossing profile keeps
// the two regions contiguous and disjoint on the grid, so their bounding
// boxes cannot overlap.
//
// Monotone: both boxes only grow when further cells are assigned, so once
// Valid is false it stays false on every extension of g. This is the
// property that makes it sound as a pruning test on partial grids.
func (g *Grid) Valid(c int) bool {
	for c0 := 0; c0 < c; c0++ {
		for c1 := c0 + 1; c1 < c; c1++ {
			if g.PrefBox(c0, c1).Intersects(g.PrefBox(c1, c0)) {
				return false
			}
		}
	}

	return true
}

// IsMonodominated reports whether DomBox(0) covers the whole grid. On the
// grids the enumerator reaches — single-crossing, with voter (0, 0) pinned
// to the identity ordering — this coincides with every assigned voter having
// candidate 0 as top choice: a monodominated grid is dominated by candidate
// 0 specifically, and candidate 0's voters form a contiguous region. On
// arbitrary grids the bounding box may cover cells topped by other
// candidates.
func (g *Grid) IsMonodominated() bool {
	box := g.DomBox(0)

	return box.R0 == 0 && box.C0 == 0 &&
		box.R1 == g.rows-1 && box.C1 == g.cols-1
}

// AdmitsSplitLine reports whether some horizontal or vertical grid line is
// crossed by no candidate's dominance box — the first cut of a sliceable
// decomposition of the dominance-box tiling. Short-circuits on the first
// admissible line.
func (g *Grid) AdmitsSplitLine(c int) bool {
	for i := 0; i+1 < g.rows; i++ {
		ok := true
		for cand := 0; cand < c && ok; cand++ {
			if g.DomBox(cand).CrossesHorizontal(i) {
				ok = false
			}
		}
		if ok {
			return true
		}
	}
	for j := 0; j+1 < g.cols; j++ {
		ok := true
		for cand := 0; cand < c && ok; cand++ {
			if g.DomBox(cand).CrossesVertical(j) {
				ok = false
			}
		}
		if ok {
			return true
		}
	}

	return false
}

// HasIsolated reports whether some candidate's dominance box is strictly
// interior — none of its four sides touches the grid boundary. Candidates
// that dominate no voter are skipped.
func (g *Grid) HasIsolated(c int) bool {
	for cand := 0; cand < c; cand++ {
		box := g.DomBox(cand)
		if box.IsEmpty() {
			continue
		}
		if box.R0 > 0 && box.R1 < g.rows-1 && box.C0 > 0 && box.C1 < g.cols-1 {
			return true
		}
	}

	return false
}

// HasFastCross reports whether some pair of grid-adjacent assigned voters
// differ in more than one candidate pair (crossing count > 1). Pairs with an
// unassigned member are skipped, so the predicate is monotone on partial
// grids: a fast cross between assigned neighbours never goes away.
func (g *Grid) HasFastCross(c int) bool {
	for i := 0; i+1 < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			a, b := g.cells[i][j], g.cells[i+1][j]
			if a.Assigned && b.Assigned && prefs.CountCrosses(a.Pref, b.Pref, c) > 1 {
				return true
			}
		}
	}
	for i := 0; i < g.rows; i++ {
		for j := 0; j+1 < g.cols; j++ {
			a, b := g.cells[i][j], g.cells[i][j+1]
			if a.Assigned && b.Assigned && prefs.CountCrosses(a.Pref, b.Pref, c) > 1 {
				return true
			}
		}
	}

	return false
}
