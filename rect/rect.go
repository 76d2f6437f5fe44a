package rect

import "math"

// Rect is an inclusive 2-D bounding box over grid cells: row range [R0, R1]
// and column range [C0, C1]. The zero-area box over a single cell has
// R0 == R1 and C0 == C1. Rect is a pure value; Add returns a new box.
type Rect struct {
	R0, R1 int
	C0, C1 int
}

// Empty returns the distinguished empty box. Its lower bounds sit at +∞ and
// its upper bounds at -∞, so the first Add collapses it onto that point and
// Intersects is trivially false against any box.
func Empty() Rect {
	return Rect{R0: math.MaxInt, R1: math.MinInt, C0: math.MaxInt, C1: math.MinInt}
}

// IsEmpty reports whether r is the empty box.
func (r Rect) IsEmpty() bool {
	return r.R0 > r.R1
}

// Add returns the smallest box covering both r and the cell (row, col).
func (r Rect) Add(row, col int) Rect {
	return Rect{
		R0: min(r.R0, row),
		R1: max(r.R1, row),
		C0: min(r.C0, col),
		C1: max(r.C1, col),
	}
}

// Contains reports whether the cell (row, col) lies inside r.
func (r Rect) Contains(row, col int) bool {
	return r.R0 <= row && row <= r.R1 && r.C0 <= col && col <= r.C1
}

// Intersects reports whether r and o share at least one cell. Inclusive
// separating-axis test: the boxes are disjoint iff one lies strictly above,
// below, left or right of the other.
func (r Rect) Intersects(o Rect) bool {
	if r.R0 > o.R1 || o.R0 > r.R1 {
		return false
	}
	if r.C0 > o.C1 || o.C0 > r.C1 {
		return false
	}

	return true
}

// CrossesHorizontal reports whether r spans the horizontal line between rows
// i and i+1. Strict on the far endpoint: a box confined to row i does not
// cross either adjacent line.
func (r Rect) CrossesHorizontal(i int) bool {
	return r.R0 <= i && i < r.R1
}

// CrossesVertical reports whether r spans the vertical line between columns
// j and j+1.
func (r Rect) CrossesVertical(j int) bool {
	return r.C0 <= j && j < r.C1
}
