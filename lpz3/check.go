package lpz3

import (
	"fmt"

	"github.com/aclements/go-z3/z3"

	"github.com/singlecross/tilecert/lp"
)

// Check decides the feasibility of sys over the reals. Returns the verdict
// and, when feasible, the satisfying model rendered as text. A non-nil error
// means the solver produced no verdict (unknown, resource exhaustion); the
// caller must treat it as a failed certificate run.
func Check(sys lp.System) (lp.Verdict, string, error) {
	ctx := z3.NewContext(z3.NewContextConfig())
	solver := z3.NewSolver(ctx)

	consts := make(map[lp.Var]z3.Real, len(lp.Vars()))
	for _, v := range lp.Vars() {
		consts[v] = ctx.RealConst(v.Name())
	}

	for _, con := range sys.Constraints {
		solver.Assert(assertion(ctx, consts, con))
	}

	sat, err := solver.Check()
	if err != nil {
		return lp.Infeasible, "", fmt.Errorf("lpz3: solver gave no verdict: %w", err)
	}
	if !sat {
		return lp.Infeasible, "", nil
	}

	return lp.Feasible, solver.Model().String(), nil
}

// assertion translates one linear constraint into a Z3 boolean: the term
// sum compared against the constant right-hand side.
func assertion(ctx *z3.Context, consts map[lp.Var]z3.Real, con lp.Constraint) z3.Bool {
	sum := realConst(ctx, 0)
	for _, term := range con.Terms {
		addend := consts[term.Var]
		if term.Coeff != 1 {
			addend = realConst(ctx, term.Coeff).Mul(addend)
		}
		sum = sum.Add(addend)
	}
	rhs := realConst(ctx, con.RHS)

	switch con.Rel {
	case lp.RelEq:
		return sum.Eq(rhs)
	case lp.RelLE:
		return sum.LE(rhs)
	case lp.RelGE:
		return sum.GE(rhs)
	case lp.RelGT:
		return sum.GT(rhs)
	default:
		panic(fmt.Sprintf("lpz3: unknown relation %d", con.Rel))
	}
}

func realConst(ctx *z3.Context, v int) z3.Real {
	return ctx.FromInt(int64(v), ctx.RealSort()).(z3.Real)
}
