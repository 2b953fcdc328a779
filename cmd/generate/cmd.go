package generate

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/PizzaGenius228/SAT-Solver/internal/dimacs"
	"github.com/PizzaGenius228/SAT-Solver/internal/generate"
	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
)

func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates synthetic CNF instances in dimacs format",
	}

	cmd.AddCommand(newPigeonholeCommand())
	cmd.AddCommand(newRandom3SATCommand())

	return cmd
}

func newPigeonholeCommand() *cobra.Command {
	var n int
	var output string

	cmd := &cobra.Command{
		Use:   "pigeonhole",
		Short: "Generates an unsatisfiable pigeonhole instance (n+1 pigeons, n holes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := generate.Pigeonhole(n)
			if err != nil {
				return err
			}
			return write(formula, output)
		},
	}

	cmd.Flags().IntVar(&n, "n", 3, "number of holes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout)")

	return cmd
}

func newRandom3SATCommand() *cobra.Command {
	var numVars, numClauses int
	var seed int64
	var output string

	cmd := &cobra.Command{
		Use:   "3sat",
		Short: "Generates a random 3-SAT instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := generate.Random3SAT(numVars, numClauses, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			return write(formula, output)
		},
	}

	cmd.Flags().IntVar(&numVars, "vars", 12, "number of variables")
	cmd.Flags().IntVar(&numClauses, "clauses", 20, "number of clauses")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout)")

	return cmd
}

func write(formula *cnf.Formula, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("error creating output file (%s): %w", output, err)
		}
		defer f.Close()
		w = f
	}
	return dimacs.Write(w, formula)
}
