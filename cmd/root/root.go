package root

import (
	"github.com/spf13/cobra"

	"github.com/PizzaGenius228/SAT-Solver/cmd/bench"

	"github.com/PizzaGenius228/SAT-Solver/cmd/generate"

	"github.com/PizzaGenius228/SAT-Solver/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "satsolver",
		Short: "satsolver compares classic SAT solving strategies",
		Long: `A CNF satisfiability toolkit comparing the Davis-Putnam elimination
procedure, recursive DPLL search, and an iterative decision/propagate/backtrack
loop against a reference CDCL engine.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(generate.NewGenerateCommand())
	rootCmd.AddCommand(bench.NewBenchCommand())

	return rootCmd
}
