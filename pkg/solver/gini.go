package solver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// giniSolver delegates to the gini CDCL engine. It serves as the
// reference implementation the three teaching strategies are checked
// against, and as the fast path for large instances.
type giniSolver struct{}

func (giniSolver) Solve(f *cnf.Formula) Verdict {
	g := gini.NewV(f.NumVars())
	addClauses(g, f)
	if g.Solve() == satisfiable {
		return Satisfiable
	}
	return Unsatisfiable
}

// GiniWitness solves with gini and, when satisfiable, extracts a model
// over the formula's declared variables.
func GiniWitness(f *cnf.Formula) (map[int]bool, bool) {
	g := gini.NewV(f.NumVars())
	addClauses(g, f)
	if g.Solve() != satisfiable {
		return nil, false
	}
	model := make(map[int]bool, f.NumVars())
	for v := 1; v <= f.NumVars(); v++ {
		model[v] = g.Value(z.Var(v).Pos())
	}
	return model, true
}

func addClauses(g *gini.Gini, f *cnf.Formula) {
	for _, c := range f.Clauses() {
		for _, l := range c {
			m := z.Var(l.Var()).Pos()
			if !l.Positive() {
				m = m.Not()
			}
			g.Add(m)
		}
		g.Add(z.LitNull)
	}
}
