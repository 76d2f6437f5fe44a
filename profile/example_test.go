package profile_test

import (
	"fmt"

	"github.com/singlecross/tilecert/profile"
)

// ExampleGrid_AdmitsSplitLine demonstrates the split-line test on the 3×3
// profile whose centre voter is the only one dominated by candidate 2: the
// dominance-box tiling still splits between rows 0 and 1, yet candidate 2's
// box is strictly interior.
func ExampleGrid_AdmitsSplitLine() {
	g, _ := profile.Parse(`01234 02134 03214
12304 21304 32104
41230 42130 43210
####`)

	fmt.Println("valid:", g.Valid(5))
	fmt.Println("split line:", g.AdmitsSplitLine(5))
	fmt.Println("isolated box:", g.HasIsolated(5))

	// Output:
	// valid: true
	// split line: true
	// isolated box: true
}
