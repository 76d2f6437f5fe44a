package lp

import "fmt"

// Build assembles the feasibility system for triple t and pivot candidate
// pivot: 3 anchor equalities, 9 chain-monotonicity inequalities and 16 lemma
// rows — 28 constraints over the 12 variables of Vars().
// Returns ErrPivotRange for a pivot outside [1, NumCands].
func Build(t Triple, pivot int, opts Options) (System, error) {
	if pivot < 1 || pivot > NumCands {
		return System{}, fmt.Errorf("%w: got %d", ErrPivotRange, pivot)
	}

	sys := System{Triple: t, Pivot: pivot}
	sys.Constraints = make([]Constraint, 0, 3+3*(NumCands-1)+NumCands*NumCands)

	// Anchors: each voter's most preferred candidate scores 0. The first
	// voter is the identity, so its top candidate is 1.
	orders := [3][NumCands]int{identityOrder(), t.Sigma1, t.Sigma2}
	for v := 1; v <= 3; v++ {
		sys.Constraints = append(sys.Constraints, Constraint{
			Terms: []Term{{Coeff: 1, Var: Var{Voter: v, Cand: orders[v-1][0]}}},
			Rel:   RelEq,
			RHS:   0,
		})
	}

	// Chain monotonicity: scores are non-decreasing along each voter's
	// preference order, r(v, order[i]) ≤ r(v, order[i+1]).
	for v := 1; v <= 3; v++ {
		for i := 0; i+1 < NumCands; i++ {
			sys.Constraints = append(sys.Constraints, Constraint{
				Terms: []Term{
					{Coeff: 1, Var: Var{Voter: v, Cand: orders[v-1][i]}},
					{Coeff: -1, Var: Var{Voter: v, Cand: orders[v-1][i+1]}},
				},
				Rel: RelLE,
				RHS: 0,
			})
		}
	}

	// Lemma rows: for every (c, c1),
	//   r(1,c) + r(2,c) + r(2,c1) + r(3,c1) ≥ 1 + r(1,p) + r(2,p) + r(3,p).
	// Pivot terms move to the left-hand side with coefficient -1.
	rel := RelGE
	if opts.StrictLemma {
		rel = RelGT
	}
	for c := 1; c <= NumCands; c++ {
		for c1 := 1; c1 <= NumCands; c1++ {
			sys.Constraints = append(sys.Constraints, Constraint{
				Terms: []Term{
					{Coeff: 1, Var: Var{Voter: 1, Cand: c}},
					{Coeff: 1, Var: Var{Voter: 2, Cand: c}},
					{Coeff: 1, Var: Var{Voter: 2, Cand: c1}},
					{Coeff: 1, Var: Var{Voter: 3, Cand: c1}},
					{Coeff: -1, Var: Var{Voter: 1, Cand: pivot}},
					{Coeff: -1, Var: Var{Voter: 2, Cand: pivot}},
					{Coeff: -1, Var: Var{Voter: 3, Cand: pivot}},
				},
				Rel: rel,
				RHS: 1,
			})
		}
	}

	return sys, nil
}

// Systems assembles all 604 feasibility problems: the 151 single-crossing
// triples in lexicographic order, each with pivots 1 through NumCands.
func Systems(opts Options) []System {
	triples := Triples()
	out := make([]System, 0, len(triples)*NumCands)
	for _, t := range triples {
		for pivot := 1; pivot <= NumCands; pivot++ {
			sys, err := Build(t, pivot, opts)
			if err != nil {
				// Pivot range is controlled by this loop; unreachable.
				panic(err)
			}
			out = append(out, sys)
		}
	}

	return out
}

func identityOrder() [NumCands]int {
	var id [NumCands]int
	for i := range id {
		id[i] = i + 1
	}

	return id
}
