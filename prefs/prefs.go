package prefs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCandidateNotFound indicates a ranking lookup for a candidate that does
// not appear in the preference list.
var ErrCandidateNotFound = errors.New("prefs: candidate not found in preference list")

// Pref is an ordering of all candidates of a profile: Pref[i] is the
// candidate ranked at position i, with position 0 the most preferred.
type Pref []int

// Identity returns the preference list 0 > 1 > … > c-1.
func Identity(c int) Pref {
	p := make(Pref, c)
	for i := range p {
		p[i] = i
	}

	return p
}

// Clone returns an independent copy of p.
func (p Pref) Clone() Pref {
	q := make(Pref, len(p))
	copy(q, p)

	return q
}

// Reversed returns a new list ranking candidates in the opposite order of p.
func Reversed(p Pref) Pref {
	q := make(Pref, len(p))
	for i, c := range p {
		q[len(p)-1-i] = c
	}

	return q
}

// Pos returns the position of candidate c in p (0 if c is most preferred).
// Returns ErrCandidateNotFound if c does not appear in p.
func Pos(p Pref, c int) (int, error) {
	for i, x := range p {
		if x == c {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: candidate %d", ErrCandidateNotFound, c)
}

// MustPos is Pos for callers holding a full permutation; it panics on a
// missing candidate, which can only be a programming error.
func MustPos(p Pref, c int) int {
	i, err := Pos(p, c)
	if err != nil {
		panic(err)
	}

	return i
}

// Prefers reports whether p ranks candidate a strictly above candidate b.
func Prefers(p Pref, a, b int) bool {
	return MustPos(p, a) < MustPos(p, b)
}

// CountCrosses returns the number of unordered candidate pairs {a, b} that p
// and q rank in opposite orientation (the Kendall distance). Both lists must
// be permutations of [0, c). The result lies in [0, c*(c-1)/2]; identical
// lists yield 0 and reversed lists hit the upper bound.
//
// Complexity: O(c²) after two O(c) inversion passes.
func CountCrosses(p, q Pref, c int) int {
	invP := make([]int, c)
	invQ := make([]int, c)
	for i := 0; i < c; i++ {
		invP[p[i]] = i
		invQ[q[i]] = i
	}
	crosses := 0
	for a := 0; a < c; a++ {
		for b := a + 1; b < c; b++ {
			if (invP[a] < invP[b]) != (invQ[a] < invQ[b]) {
				crosses++
			}
		}
	}

	return crosses
}

// String renders p as the concatenation of its candidates' decimal digits,
// most preferred first ("01234" means 0 > 1 > 2 > 3 > 4).
func (p Pref) String() string {
	var sb strings.Builder
	for _, c := range p {
		fmt.Fprintf(&sb, "%d", c)
	}

	return sb.String()
}
