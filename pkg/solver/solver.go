package solver

import (
	"fmt"
	"math/rand"

	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
)

// Solver decides satisfiability of a CNF formula. Implementations hold
// no state across calls: solving the same Formula twice yields the same
// Verdict both times.
type Solver interface {
	Solve(f *cnf.Formula) Verdict
}

// Strategy names a solving procedure.
type Strategy string

const (
	// StrategyDP is the Davis-Putnam variable elimination procedure.
	StrategyDP Strategy = "dp"
	// StrategyDPLL is recursive backtracking search.
	StrategyDPLL Strategy = "dpll"
	// StrategyIterative is the iterative decision/propagate/backtrack loop.
	StrategyIterative Strategy = "iterative"
	// StrategyGini delegates to the gini CDCL engine, used as a reference.
	StrategyGini Strategy = "gini"
)

// Strategies lists every known strategy in presentation order.
func Strategies() []Strategy {
	return []Strategy{StrategyDP, StrategyDPLL, StrategyIterative, StrategyGini}
}

type config struct {
	rng    *rand.Rand
	tracer Tracer
}

type Option func(c *config) error

// WithRand injects the random source used for decision-phase value
// selection. Only the iterative strategy consults it; passing a seeded
// source makes that strategy deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) error {
		if rng == nil {
			return fmt.Errorf("nil random source")
		}
		c.rng = rng
		return nil
	}
}

// WithTracer attaches a tracer observing the iterative strategy's search.
func WithTracer(t Tracer) Option {
	return func(c *config) error {
		if t == nil {
			return fmt.Errorf("nil tracer")
		}
		c.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(c *config) error {
		if c.rng == nil {
			c.rng = rand.New(rand.NewSource(0))
		}
		return nil
	},
	func(c *config) error {
		if c.tracer == nil {
			c.tracer = DefaultTracer{}
		}
		return nil
	},
}

// New returns a Solver for the named strategy.
func New(strategy Strategy, options ...Option) (Solver, error) {
	c := &config{}
	for _, option := range append(options, defaults...) {
		if err := option(c); err != nil {
			return nil, err
		}
	}
	switch strategy {
	case StrategyDP:
		return dpSolver{}, nil
	case StrategyDPLL:
		return dpllSolver{}, nil
	case StrategyIterative:
		return &iterative{rng: c.rng, tracer: c.tracer}, nil
	case StrategyGini:
		return giniSolver{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy)
}
