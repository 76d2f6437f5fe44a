// Command lpproof runs Experiment L: for each of the 151 single-crossing
// preference triples over four candidates and each of the four pivot
// values, it builds the lemma's linear system and asks Z3 to certify its
// infeasibility.
//
// One progress line per triple goes to stderr. Any feasible system prints
// its model to stdout and terminates with status 1; a solver failure
// (unknown verdict, resource exhaustion) terminates with status 2. Silent
// completion with status 0 certifies all 604 systems infeasible.
package main

import (
	"fmt"
	"os"

	"github.com/singlecross/tilecert/lp"
	"github.com/singlecross/tilecert/lpz3"
)

func main() {
	opts := lp.DefaultOptions()
	for i, triple := range lp.Triples() {
		fmt.Fprintf(os.Stderr, "Processing profile %d\n", i+1)
		for pivot := 1; pivot <= lp.NumCands; pivot++ {
			sys, err := lp.Build(triple, pivot, opts)
			if err != nil {
				fmt.Fprintln(os.Stderr, "lpproof:", err)
				os.Exit(2)
			}
			verdict, model, err := lpz3.Check(sys)
			if err != nil {
				fmt.Fprintln(os.Stderr, "lpproof:", err)
				os.Exit(2)
			}
			if verdict != lp.Infeasible {
				fmt.Println(model)
				os.Exit(1)
			}
		}
	}
}
