package profile

import (
	"github.com/singlecross/tilecert/prefs"
	"github.com/singlecross/tilecert/rect"
)

// PrefBox returns the bounding box of all assigned voters that prefer
// candidate c0 over candidate c1. Unassigned cells contribute nothing; the
// result is rect.Empty() when no voter qualifies. Recomputed from the grid
// on every call.
func (g *Grid) PrefBox(c0, c1 int) rect.Rect {
	box := rect.Empty()
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			cell := g.cells[i][j]
			if cell.Assigned && prefs.Prefers(cell.Pref, c0, c1) {
				box = box.Add(i, j)
			}
		}
	}

	return box
}

// DomBox returns the bounding box of all assigned voters whose top-ranked
// candidate is c — candidate c's rectangle in the dominance-box tiling.
func (g *Grid) DomBox(c int) rect.Rect {
	box := rect.Empty()
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			cell := g.cells[i][j]
			if cell.Assigned && cell.Pref[0] == c {
				box = box.Add(i, j)
			}
		}
	}

	return box
}
