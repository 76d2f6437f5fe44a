// Package profile implements grid preference profiles — N×M arrays of
// preference lists, possibly with unassigned cells — together with the
// derived bounding boxes and structural predicates both hypotheses reduce to.
//
// What:
//
//   - Grid holds one Cell per voter; a Cell is either Assigned with a full
//     permutation of [0, C) or unassigned. Voter (0, 0) is conventionally the
//     identity ordering 0 > 1 > … > C-1.
//   - PrefBox(c0, c1) is the bounding box of all assigned voters preferring
//     c0 over c1; DomBox(c) the bounding box of voters whose top choice is c.
//     Both are recomputed from the grid on every call.
//   - Valid reports false only when the grid is certainly not
//     single-crossing: some pair of candidates has intersecting "prefers"
//     and "anti-prefers" boxes. Boxes only grow under assignment, so a false
//     verdict is preserved by every extension — the monotonicity the
//     enumerator's pruning relies on.
//   - IsMonodominated, AdmitsSplitLine, HasIsolated and HasFastCross are the
//     leaf predicates of the two hypotheses and of the fast-cross
//     restriction.
//   - String and Parse round-trip the external text format: one line of
//     space-separated tokens per row, "?" for unassigned cells, digit
//     concatenations for assigned ones, and a terminating "####" line.
//
// Why:
//
//   - On the reduced k = C case an optimal k-tiling is the dominance-box
//     tiling, so both hypotheses become predicates on dominance boxes.
//
// Complexity (n = rows, m = cols, c = candidates):
//
//   - PrefBox, DomBox:          O(n·m·c) and O(n·m).
//   - Valid:                    O(c²·n·m·c).
//   - AdmitsSplitLine:          O((n+m)·c·n·m).
//   - HasIsolated:              O(c·n·m).
//   - HasFastCross:             O(n·m·c²).
//
// Errors:
//
//   - ErrEmptyGrid:      a grid with zero rows or zero columns was requested.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadToken:       Parse met a token that is neither "?" nor digits.
package profile
