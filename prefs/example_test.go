package prefs_test

import (
	"fmt"

	"github.com/singlecross/tilecert/prefs"
)

// ExampleCountCrosses shows the Kendall distance between two orderings of
// four candidates: the pairs {0,1} and {2,3} flip orientation.
func ExampleCountCrosses() {
	p := prefs.Pref{0, 1, 2, 3}
	q := prefs.Pref{1, 0, 3, 2}
	fmt.Println(prefs.CountCrosses(p, q, 4))

	// Output:
	// 2
}

// ExampleNextPerm streams the six orderings of three candidates in
// lexicographic order, identity first.
func ExampleNextPerm() {
	p := prefs.Identity(3)
	for {
		fmt.Println(p)
		if !prefs.NextPerm(p) {
			break
		}
	}

	// Output:
	// 012
	// 021
	// 102
	// 120
	// 201
	// 210
}
