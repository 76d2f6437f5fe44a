// Command gridtrial runs Experiment G: exhaustive enumeration of grid
// single-crossing preference profiles of a fixed shape, testing one
// structural hypothesis about optimal k-tilings at every complete profile.
//
// The shape, candidate count and hypothesis are compile-time constants, as
// in the published experiment. Progress goes to stderr. A counterexample is
// printed to stdout in the grid text format and terminates the process with
// status 1; silent completion with status 0 certifies the hypothesis on the
// whole shape.
package main

import (
	"fmt"
	"os"

	"github.com/singlecross/tilecert/search"
)

// Experiment configuration. H1 was confirmed on (8,8,4), (4,5,5), (3,6,5),
// (3,3,6), and on (6,6,6) with restrictFastCross; H2 fails on (3,3,5).
const (
	gridRows = 4
	gridCols = 5
	numCands = 5

	hypothesis        = search.Sliceable
	restrictFastCross = false
)

func main() {
	opts := search.DefaultOptions()
	opts.Hypothesis = hypothesis
	opts.NoFastCross = restrictFastCross
	opts.Progress = os.Stderr

	res, err := search.Run(gridRows, gridCols, numCands, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridtrial:", err)
		os.Exit(2)
	}
	if len(res.Witnesses) > 0 {
		fmt.Print(res.Witnesses[0].Grid.String())
		os.Exit(1)
	}
}
