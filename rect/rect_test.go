package rect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/singlecross/tilecert/rect"
)

// TestEmptyAndAdd verifies the empty sentinel and single-point collapse.
func TestEmptyAndAdd(t *testing.T) {
	e := rect.Empty()
	require.True(t, e.IsEmpty())

	r := e.Add(2, 3)
	require.False(t, r.IsEmpty())
	require.Equal(t, rect.Rect{R0: 2, R1: 2, C0: 3, C1: 3}, r)
	require.True(t, r.Contains(2, 3))
	require.False(t, r.Contains(2, 4))
}

// TestAdd_MonotoneAndCommutative checks that Add only grows the box and that
// insertion order is irrelevant.
func TestAdd_MonotoneAndCommutative(t *testing.T) {
	pts := [][2]int{{1, 4}, {3, 0}, {2, 2}, {0, 5}}

	grown := rect.Empty()
	for _, p := range pts {
		next := grown.Add(p[0], p[1])
		if !grown.IsEmpty() {
			require.True(t, next.Contains(grown.R0, grown.C0))
			require.True(t, next.Contains(grown.R1, grown.C1))
		}
		require.True(t, next.Contains(p[0], p[1]))
		grown = next
	}

	reversed := rect.Empty()
	for i := len(pts) - 1; i >= 0; i-- {
		reversed = reversed.Add(pts[i][0], pts[i][1])
	}
	require.Equal(t, grown, reversed)
}

// TestIntersects exercises the separating-axis cases on inclusive bounds.
func TestIntersects(t *testing.T) {
	a := rect.Empty().Add(0, 0).Add(2, 2)

	cases := []struct {
		name string
		b    rect.Rect
		want bool
	}{
		{"SharedCorner", rect.Empty().Add(2, 2).Add(4, 4), true},
		{"Nested", rect.Empty().Add(1, 1), true},
		{"RightOf", rect.Empty().Add(0, 3).Add(2, 5), false},
		{"Below", rect.Empty().Add(3, 0).Add(5, 2), false},
		{"DiagonalApart", rect.Empty().Add(3, 3), false},
		{"Empty", rect.Empty(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, a.Intersects(tc.b))
			require.Equal(t, tc.want, tc.b.Intersects(a), "symmetry")
		})
	}
}

// TestEmptyNeverIntersects confirms the +∞ bound separates the empty box
// from everything, itself included.
func TestEmptyNeverIntersects(t *testing.T) {
	e := rect.Empty()
	require.False(t, e.Intersects(e))
	require.False(t, e.Intersects(rect.Empty().Add(0, 0)))
}

// TestCrossings pins the strict far-endpoint semantics: a box confined to
// row 2 crosses neither adjacent line; a box spanning rows 1..2 crosses only
// the line between rows 1 and 2.
func TestCrossings(t *testing.T) {
	row2 := rect.Empty().Add(2, 0).Add(2, 4)
	require.False(t, row2.CrossesHorizontal(1))
	require.False(t, row2.CrossesHorizontal(2))

	span := rect.Empty().Add(1, 0).Add(2, 4)
	require.False(t, span.CrossesHorizontal(0))
	require.True(t, span.CrossesHorizontal(1))
	require.False(t, span.CrossesHorizontal(2))

	cols := rect.Empty().Add(0, 1).Add(0, 3)
	require.False(t, cols.CrossesVertical(0))
	require.True(t, cols.CrossesVertical(1))
	require.True(t, cols.CrossesVertical(2))
	require.False(t, cols.CrossesVertical(3))
}
