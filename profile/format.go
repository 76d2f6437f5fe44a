package profile

import (
	"fmt"
	"strings"

	"github.com/singlecross/tilecert/prefs"
)

// gridTerminator closes every printed grid.
const gridTerminator = "####"

// String renders g in the external text format: one line per row with each
// cell token followed by a single space, "?" for unassigned cells and the
// digit concatenation of the preference order otherwise, terminated by a
// "####" line. Candidate values are single decimal digits, so the format
// covers C ≤ 10.
func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			cell := g.cells[i][j]
			if cell.Assigned {
				sb.WriteString(cell.Pref.String())
			} else {
				sb.WriteByte('?')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(gridTerminator)
	sb.WriteByte('\n')

	return sb.String()
}

// Parse reads a grid back from the external text format, accepting exactly
// the output of String (the "####" terminator and any trailing text after it
// are ignored; token spacing is free-form). Returns ErrBadToken on a token
// that is neither "?" nor a digit string, ErrNonRectangular on ragged rows,
// ErrEmptyGrid on no rows.
func Parse(s string) (*Grid, error) {
	var rows [][]prefs.Pref
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == gridTerminator {
			break
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		row := make([]prefs.Pref, len(tokens))
		for j, tok := range tokens {
			if tok == "?" {
				continue // leave row[j] nil: unassigned
			}
			p := make(prefs.Pref, len(tok))
			for k, d := range tok {
				if d < '0' || d > '9' {
					return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
				}
				p[k] = int(d - '0')
			}
			row[j] = p
		}
		rows = append(rows, row)
	}

	return FromPrefs(rows)
}
