package solver

import (
	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
)

// DPLL decides satisfiability by recursive backtracking search over the
// caller-supplied Assignment. On a true result the Assignment holds a
// witness satisfying every clause; on a false result every speculative
// assignment has been undone and the Assignment is as the caller passed
// it. Clause status is evaluated lazily at each node; there is no unit
// propagation or pure-literal pass.
func DPLL(f *cnf.Formula, a *cnf.Assignment) bool {
	conflict := false
	allSat := true
	for _, c := range f.Clauses() {
		sat, known := a.Satisfies(c)
		switch {
		case !known:
			allSat = false
		case !sat:
			conflict = true
		}
		if conflict {
			break
		}
	}
	if conflict {
		return false
	}
	if allSat {
		return true
	}

	v := firstUnassigned(f, a)
	if v == 0 {
		return true
	}
	for _, value := range [2]bool{true, false} {
		a.Set(v, value)
		if DPLL(f, a) {
			return true
		}
	}
	a.Unset(v)
	return false
}

// firstUnassigned returns the lowest-numbered variable referenced by the
// formula that has no value yet, or 0 if every referenced variable is
// assigned.
func firstUnassigned(f *cnf.Formula, a *cnf.Assignment) int {
	for _, v := range f.Variables() {
		if !a.Assigned(v) {
			return v
		}
	}
	return 0
}

type dpllSolver struct{}

func (dpllSolver) Solve(f *cnf.Formula) Verdict {
	return VerdictFromBool(DPLL(f, cnf.NewAssignment()))
}
