// Package bench times the solving strategies over synthetic instance
// families and exports the measurements.
package bench

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/PizzaGenius228/SAT-Solver/internal/generate"
	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
	"github.com/PizzaGenius228/SAT-Solver/pkg/solver"
)

// Family names a synthetic instance family.
type Family string

const (
	FamilyPigeonhole Family = "pigeonhole"
	FamilyRandom3SAT Family = "3sat"
)

// Result is one timed solve: a strategy applied to the family instance
// of a given size.
type Result struct {
	Size     int
	Strategy solver.Strategy
	Verdict  solver.Verdict
	Elapsed  time.Duration
}

// Runner times a fixed set of strategies over an instance family.
type Runner struct {
	strategies []solver.Strategy
	seed       int64
}

func NewRunner(strategies []solver.Strategy, seed int64) *Runner {
	return &Runner{
		strategies: strategies,
		seed:       seed,
	}
}

// Run builds one instance per size in [min, max] and times every
// configured strategy on it. All strategies must agree on the verdict
// for every instance; a disagreement means a solver bug and aborts the
// run.
func (r *Runner) Run(family Family, min, max int) ([]Result, error) {
	if min < 1 || max < min {
		return nil, fmt.Errorf("invalid size range [%d, %d]", min, max)
	}

	var results []Result
	for size := min; size <= max; size++ {
		f, err := r.instance(family, size)
		if err != nil {
			return nil, err
		}

		sized := make([]Result, 0, len(r.strategies))
		for _, strategy := range r.strategies {
			s, err := solver.New(strategy, solver.WithRand(rand.New(rand.NewSource(r.seed))))
			if err != nil {
				return nil, err
			}
			start := time.Now()
			verdict := s.Solve(f)
			sized = append(sized, Result{
				Size:     size,
				Strategy: strategy,
				Verdict:  verdict,
				Elapsed:  time.Since(start),
			})
		}

		verdicts := lo.UniqBy(sized, func(r Result) solver.Verdict { return r.Verdict })
		if len(verdicts) > 1 {
			return nil, fmt.Errorf("strategies disagree on %s size %d", family, size)
		}
		results = append(results, sized...)
	}
	return results, nil
}

func (r *Runner) instance(family Family, size int) (*cnf.Formula, error) {
	switch family {
	case FamilyPigeonhole:
		return generate.Pigeonhole(size)
	case FamilyRandom3SAT:
		// problem sizing from the original benchmark: 3 variables and
		// 5 clauses per size step
		rng := rand.New(rand.NewSource(r.seed + int64(size)))
		return generate.Random3SAT(size*3, size*5, rng)
	}
	return nil, fmt.Errorf("unknown instance family %q", family)
}

// Sizes returns the distinct instance sizes present in results, in
// encounter order.
func Sizes(results []Result) []int {
	return lo.Uniq(lo.Map(results, func(r Result, _ int) int { return r.Size }))
}

// Lookup finds the result for a given size and strategy.
func Lookup(results []Result, size int, strategy solver.Strategy) (Result, bool) {
	return lo.Find(results, func(r Result) bool {
		return r.Size == size && r.Strategy == strategy
	})
}
