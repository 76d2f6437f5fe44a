// Package lpz3 dispatches lp feasibility systems to the Z3 theorem prover
// over real arithmetic (cgo binding github.com/aclements/go-z3; requires
// libz3 at build time).
//
// Check translates a system into one Z3 solver call: a fresh context per
// call owns all declared constants and assertions, mirroring the bounded
// collaborator lifetime of the experiment. An unsat verdict maps to
// lp.Infeasible — the expected outcome for all 604 systems; sat maps to
// lp.Feasible with the model rendered for the counterexample report; an
// unknown verdict or any solver failure surfaces as an error.
package lpz3
