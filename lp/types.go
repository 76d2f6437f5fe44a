package lp

import (
	"errors"
	"fmt"
)

// NumCands is the candidate count of Experiment L; candidates are 1-based.
const NumCands = 4

// ErrPivotRange indicates a pivot candidate outside [1, NumCands].
var ErrPivotRange = errors.New("lp: pivot candidate must be in [1, 4]")

// Triple is a single-crossing preference triple (id, Sigma1, Sigma2); the
// identity first voter is implicit. Sigma[i] is the candidate ranked at
// position i by that voter.
type Triple struct {
	Sigma1, Sigma2 [NumCands]int
}

// Var names one real variable r(Voter, Cand), Voter ∈ [1,3], Cand ∈ [1,4].
type Var struct {
	Voter, Cand int
}

// Name renders the solver-facing identifier, e.g. "r_2_3".
func (v Var) Name() string {
	return fmt.Sprintf("r_%d_%d", v.Voter, v.Cand)
}

// Relation is the comparison of a constraint: sum of terms Rel RHS.
type Relation int

const (
	// RelEq asserts equality.
	RelEq Relation = iota
	// RelLE asserts less-or-equal.
	RelLE
	// RelGE asserts greater-or-equal.
	RelGE
	// RelGT asserts strictly greater.
	RelGT
)

// Term is one addend Coeff·Var of a constraint's left-hand side.
type Term struct {
	Coeff int
	Var   Var
}

// Constraint asserts sum(Terms) Rel RHS over the reals.
type Constraint struct {
	Terms []Term
	Rel   Relation
	RHS   int
}

// System is one feasibility problem: the triple and pivot it was built from
// plus the assembled constraints. Expected verdict: infeasible.
type System struct {
	Triple      Triple
	Pivot       int
	Constraints []Constraint
}

// Vars returns the twelve variables of every system, voters major.
func Vars() []Var {
	vars := make([]Var, 0, 3*NumCands)
	for v := 1; v <= 3; v++ {
		for c := 1; c <= NumCands; c++ {
			vars = append(vars, Var{Voter: v, Cand: c})
		}
	}

	return vars
}

// Verdict is the outcome of a feasibility check.
type Verdict int

const (
	// Infeasible: the system has no real solution (the expected verdict).
	Infeasible Verdict = iota
	// Feasible: the system admits a model — a lemma counterexample.
	Feasible
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	if v == Infeasible {
		return "infeasible"
	}

	return "feasible"
}

// Options governs system assembly.
type Options struct {
	// StrictLemma replaces the ≥ of the lemma rows with a strict >. The two
	// forms are equivalent for the certificate; both must be infeasible.
	StrictLemma bool
}

// DefaultOptions matches the published experiment (non-strict lemma rows).
func DefaultOptions() Options {
	return Options{}
}
