package solver

import (
	"math/rand"

	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
)

// iterative is the decision/propagate/backtrack loop. Despite its CDCL
// ancestry it learns no clauses and never jumps: a conflict retreats
// exactly one decision level, flipping the abandoned decision before
// the search resumes. A conflict with no decision left to flip proves
// the formula unsatisfiable.
type iterative struct {
	rng    *rand.Rand
	tracer Tracer
}

// trailEntry records one assignment so it can be undone on backtrack.
// Propagated assignments carry the level they were forced at; decision
// entries additionally track whether their second phase has been tried.
type trailEntry struct {
	v        int
	level    int
	decision bool
	flipped  bool
}

func (s *iterative) Solve(f *cnf.Formula) Verdict {
	a := cnf.NewAssignment()
	var trail []trailEntry
	level := 0

	for {
		if conflict, ok := propagate(f, a, &trail, level); !ok {
			s.tracer.Trace(searchPosition{trail: trail, assignment: a, conflict: conflict})
			flipped := false
			for len(trail) > 0 {
				e := &trail[len(trail)-1]
				if e.decision && !e.flipped {
					value, _ := a.Value(e.v)
					a.Set(e.v, !value)
					e.flipped = true
					flipped = true
					break
				}
				a.Unset(e.v)
				if e.decision {
					level--
				}
				trail = trail[:len(trail)-1]
			}
			if !flipped {
				// conflict at decision level 0
				return Unsatisfiable
			}
			continue
		}

		if a.SatisfiesAll(f) {
			return Satisfiable
		}

		v := lowestUnassigned(f, a)
		if v == 0 {
			return Satisfiable
		}
		level++
		a.Set(v, s.rng.Intn(2) == 0)
		trail = append(trail, trailEntry{v: v, level: level, decision: true})
	}
}

// propagate runs unit propagation to a fixpoint. A clause with exactly
// one unassigned literal and every other literal falsified forces that
// literal's variable; the forced assignment is pushed on the trail at
// the current level. If a clause with every literal falsified is found,
// propagate returns it with ok false. The conflict is reported through
// the boolean, not the clause value: an empty clause is a conflict too.
func propagate(f *cnf.Formula, a *cnf.Assignment, trail *[]trailEntry, level int) (cnf.Clause, bool) {
	for changed := true; changed; {
		changed = false
		for _, c := range f.Clauses() {
			sat, known := a.Satisfies(c)
			if known {
				if sat {
					continue
				}
				return c, false
			}
			// not satisfied and not falsified: every assigned literal is
			// false and at least one literal is unassigned
			var unit cnf.Lit
			unassigned := 0
			for _, l := range c {
				if !a.Assigned(l.Var()) {
					unassigned++
					unit = l
				}
			}
			if unassigned == 1 {
				a.Set(unit.Var(), unit.Positive())
				*trail = append(*trail, trailEntry{v: unit.Var(), level: level})
				changed = true
			}
		}
	}
	return nil, true
}

// lowestUnassigned returns the lowest-numbered declared variable with
// no value yet, or 0 if all are assigned.
func lowestUnassigned(f *cnf.Formula, a *cnf.Assignment) int {
	for v := 1; v <= f.NumVars(); v++ {
		if !a.Assigned(v) {
			return v
		}
	}
	return 0
}

// Iterative decides satisfiability with the decision/propagate/backtrack
// loop using a fixed seed. Use New with WithRand to control the seed.
func Iterative(f *cnf.Formula) bool {
	s := &iterative{rng: rand.New(rand.NewSource(0)), tracer: DefaultTracer{}}
	return s.Solve(f) == Satisfiable
}
