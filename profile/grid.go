package profile

import (
	"errors"

	"github.com/singlecross/tilecert/prefs"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates a grid with zero rows or zero columns.
	ErrEmptyGrid = errors.New("profile: grid must have at least one row and one column")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("profile: all rows must have the same length")
	// ErrBadToken indicates a grid token that is neither "?" nor a digit string.
	ErrBadToken = errors.New("profile: malformed grid token")
)

// Cell is one voter's slot in the grid: either Assigned with a full
// permutation, or unassigned. The explicit tag keeps a zero-length
// permutation (degenerate C = 0) distinguishable from "not yet decided".
type Cell struct {
	Pref     prefs.Pref
	Assigned bool
}

// Grid is an N×M array of cells. It is the only mutable entity of the
// repository; the enumerator owns its instance and restores every cell it
// touches. Cell indices are (row, col), row-major, both zero-based.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// New returns an all-unassigned grid of the given shape.
// Returns ErrEmptyGrid when n or m is not positive.
func New(n, m int) (*Grid, error) {
	if n <= 0 || m <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, n)
	for i := range cells {
		cells[i] = make([]Cell, m)
	}

	return &Grid{rows: n, cols: m, cells: cells}, nil
}

// FromPrefs builds a grid from explicit rows of preference lists; a nil list
// leaves the cell unassigned. Lists are copied. Returns ErrEmptyGrid or
// ErrNonRectangular on bad shapes.
func FromPrefs(rows [][]prefs.Pref) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	m := len(rows[0])
	for _, row := range rows {
		if len(row) != m {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(rows), m)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, p := range row {
			if p != nil {
				g.Set(i, j, p)
			}
		}
	}

	return g, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the preference list at (r, c) and whether the cell is assigned.
// The returned slice aliases grid storage; callers must not modify it.
func (g *Grid) At(r, c int) (prefs.Pref, bool) {
	cell := g.cells[r][c]

	return cell.Pref, cell.Assigned
}

// Set assigns the cell (r, c) to a copy of p.
func (g *Grid) Set(r, c int, p prefs.Pref) {
	g.cells[r][c] = Cell{Pref: p.Clone(), Assigned: true}
}

// Clear returns the cell (r, c) to the unassigned state.
func (g *Grid) Clear(r, c int) {
	g.cells[r][c] = Cell{}
}

// Complete reports whether every cell is assigned.
func (g *Grid) Complete() bool {
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if !g.cells[i][j].Assigned {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c, _ := New(g.rows, g.cols) // shape already validated
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if cell := g.cells[i][j]; cell.Assigned {
				c.Set(i, j, cell.Pref)
			}
		}
	}

	return c
}

// Equal reports whether g and o have the same shape and cell contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			a, b := g.cells[i][j], o.cells[i][j]
			if a.Assigned != b.Assigned {
				return false
			}
			if a.Assigned && a.Pref.String() != b.Pref.String() {
				return false
			}
		}
	}

	return true
}
