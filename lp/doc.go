// Package lp builds the linear feasibility systems of Experiment L: for
// every single-crossing preference triple (id, σ1, σ2) over the candidates
// 1..4 and every pivot candidate, a real-valued system whose infeasibility
// certifies the underlying lemma.
//
// What:
//
//   - SingleCrossing filters permutation pairs: the sequence id → σ1 → σ2
//     may flip each candidate pair at most once, never back. Triples streams
//     the 151 surviving pairs in lexicographic order.
//   - Build assembles one System over the twelve variables r(v, c),
//     v ∈ {1,2,3}, c ∈ {1,2,3,4}:
//     – anchors: each voter's most preferred candidate scores 0;
//     – chain monotonicity: scores are non-decreasing along each voter's
//     preference order;
//     – lemma rows: for every (c, c1),
//     r(1,c) + r(2,c) + r(2,c1) + r(3,c1) ≥ 1 + r(1,p) + r(2,p) + r(3,p)
//     with pivot p (strictly > under Options.StrictLemma; both variants
//     are expected infeasible).
//   - Systems returns all 151 × 4 = 604 problems in processing order.
//
// Why:
//
//   - The model is pure data (terms, relations, constants) so it can be
//     inspected and tested without a solver; package lpz3 dispatches it to
//     the external decision procedure.
//
// Errors:
//
//   - ErrPivotRange: pivot candidate outside [1, 4].
package lp
