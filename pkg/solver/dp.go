package solver

import (
	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
)

// DP decides satisfiability with the Davis-Putnam variable elimination
// procedure. Variables are eliminated in increasing order; for each
// polarity the clause set is reduced and the procedure recurses on the
// remaining variables. DP proves or refutes existence only, it produces
// no witness assignment.
func DP(f *cnf.Formula) Verdict {
	vars := make([]int, f.NumVars())
	for i := range vars {
		vars[i] = i + 1
	}
	return VerdictFromBool(dp(f.Clauses(), vars))
}

func dp(clauses []cnf.Clause, vars []int) bool {
	if len(clauses) == 0 {
		return true
	}
	for _, c := range clauses {
		if len(c) == 0 {
			return false
		}
	}
	v := vars[0]
	rest := vars[1:]
	return dp(eliminate(clauses, cnf.Lit(v)), rest) || dp(eliminate(clauses, cnf.Lit(-v)), rest)
}

// eliminate derives the clause set that remains once l is fixed true:
// clauses containing l are satisfied and dropped, and l's negation is
// falsified and removed from every clause it appears in. The input
// clauses are never modified.
func eliminate(clauses []cnf.Clause, l cnf.Lit) []cnf.Clause {
	reduced := make([]cnf.Clause, 0, len(clauses))
	for _, c := range clauses {
		if c.Contains(l) {
			continue
		}
		remainder := make(cnf.Clause, 0, len(c))
		for _, m := range c {
			if m != l.Neg() {
				remainder = append(remainder, m)
			}
		}
		reduced = append(reduced, remainder)
	}
	return reduced
}

type dpSolver struct{}

func (dpSolver) Solve(f *cnf.Formula) Verdict {
	return DP(f)
}
