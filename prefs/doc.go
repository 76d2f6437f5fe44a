// Package prefs implements the preference-list algebra shared by both
// experiments: orderings over a small candidate set, position lookups,
// pairwise comparisons, crossing counts between two orderings, and the
// lexicographic permutation stream used by the enumerator.
//
// What:
//
//   - Pref is an ordering of all C candidates; Pref[i] is the candidate
//     ranked at position i (0 = most preferred).
//   - Pos / Prefers answer ranking queries on a single list.
//   - CountCrosses computes the Kendall distance between two lists: the
//     number of unordered candidate pairs ranked in opposite orientation.
//   - Identity / NextPerm stream all C! permutations in lexicographic
//     order, identity first, each exactly once.
//
// Why:
//
//   - Crossing counts decide the "fast cross" restriction between
//     grid-adjacent voters (distance > 1).
//   - The permutation stream drives cell assignment during backtracking.
//
// Complexity:
//
//   - Pos, Prefers:     O(C).
//   - CountCrosses:     O(C²).
//   - NextPerm:         O(C) amortised per step.
//
// Errors:
//
//   - ErrCandidateNotFound: a ranking lookup named a candidate absent from
//     the list. Always a programmer error; MustPos panics on it.
//
// Candidate values are single decimal digits (C ≤ 10), so String renders a
// list as a digit concatenation: "01234" means 0 > 1 > 2 > 3 > 4.
package prefs
