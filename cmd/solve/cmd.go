package solve

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/PizzaGenius228/SAT-Solver/internal/dimacs"
	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
	"github.com/PizzaGenius228/SAT-Solver/pkg/solver"
)

func NewSolveCommand() *cobra.Command {
	var strategy string
	var witness bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves a sat problem given in dimacs format",
		Long: `Solves a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variables> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
1 -2 0
c cnf: (1 or 2) and (1 or not 2)
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], solver.Strategy(strategy), witness, seed)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(solver.StrategyDPLL), "solving strategy: dp, dpll, iterative or gini")
	cmd.Flags().BoolVar(&witness, "witness", false, "print a satisfying assignment (dpll and gini only)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the iterative strategy's decision phase")

	return cmd
}

func solve(path string, strategy solver.Strategy, witness bool, seed int64) error {
	// open dimacs file
	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	formula, err := dimacs.Parse(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}

	if witness {
		return solveWitness(formula, strategy)
	}

	s, err := solver.New(strategy, solver.WithRand(rand.New(rand.NewSource(seed))))
	if err != nil {
		return err
	}
	fmt.Println(s.Solve(formula))
	return nil
}

func solveWitness(formula *cnf.Formula, strategy solver.Strategy) error {
	var model map[int]bool
	switch strategy {
	case solver.StrategyDPLL:
		assignment := cnf.NewAssignment()
		if !solver.DPLL(formula, assignment) {
			fmt.Println(solver.Unsatisfiable)
			return nil
		}
		model = assignment.Snapshot()
	case solver.StrategyGini:
		m, sat := solver.GiniWitness(formula)
		if !sat {
			fmt.Println(solver.Unsatisfiable)
			return nil
		}
		model = m
	default:
		return fmt.Errorf("strategy %q does not produce a witness", strategy)
	}

	fmt.Println(solver.Satisfiable)
	vars := make([]int, 0, len(model))
	for v := range model {
		vars = append(vars, v)
	}
	sort.Ints(vars)
	for _, v := range vars {
		fmt.Printf("%d = %t\n", v, model[v])
	}
	return nil
}
