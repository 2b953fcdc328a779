// Package generate builds the synthetic CNF families used for
// benchmarking: pigeonhole instances and random 3-SAT instances.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
)

// Pigeonhole encodes placing n+1 pigeons into n holes without collision.
// Variable p*n+h+1 means pigeon p sits in hole h. Every instance is
// unsatisfiable for n >= 1, which makes the family a correctness anchor
// as well as a hard benchmark.
func Pigeonhole(n int) (*cnf.Formula, error) {
	if n < 1 {
		return nil, fmt.Errorf("pigeonhole size must be at least 1, got %d", n)
	}
	v := func(p, h int) cnf.Lit {
		return cnf.Lit(p*n + h + 1)
	}

	var clauses []cnf.Clause

	// every pigeon sits in some hole
	for p := 0; p <= n; p++ {
		clause := make(cnf.Clause, n)
		for h := 0; h < n; h++ {
			clause[h] = v(p, h)
		}
		clauses = append(clauses, clause)
	}

	// no two pigeons share a hole
	for h := 0; h < n; h++ {
		for p1 := 0; p1 <= n; p1++ {
			for p2 := p1 + 1; p2 <= n; p2++ {
				clauses = append(clauses, cnf.Clause{v(p1, h).Neg(), v(p2, h).Neg()})
			}
		}
	}

	return cnf.New(n*(n+1), clauses)
}

// Random3SAT builds numClauses clauses of three distinct variables drawn
// from [1, numVars], each literal's polarity a coin flip. The caller
// supplies the random source; there is no hidden global state, so the
// same seed reproduces the same instance.
func Random3SAT(numVars, numClauses int, rng *rand.Rand) (*cnf.Formula, error) {
	if numVars < 3 {
		return nil, fmt.Errorf("random 3-SAT needs at least 3 variables, got %d", numVars)
	}
	if numClauses < 0 {
		return nil, fmt.Errorf("invalid clause count %d", numClauses)
	}

	clauses := make([]cnf.Clause, 0, numClauses)
	for i := 0; i < numClauses; i++ {
		clause := make(cnf.Clause, 0, 3)
		for _, v := range rng.Perm(numVars)[:3] {
			lit := cnf.Lit(v + 1)
			if rng.Float64() < 0.5 {
				lit = lit.Neg()
			}
			clause = append(clause, lit)
		}
		clauses = append(clauses, clause)
	}

	return cnf.New(numVars, clauses)
}
