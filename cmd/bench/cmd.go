package bench

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PizzaGenius228/SAT-Solver/internal/bench"
	"github.com/PizzaGenius228/SAT-Solver/pkg/solver"
)

func NewBenchCommand() *cobra.Command {
	var family string
	var minSize, maxSize int
	var seed int64
	var csvFile, texFile string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmarks the solving strategies over a synthetic instance family",
		Long: `Benchmarks every solving strategy over pigeonhole or random 3-SAT
instances of increasing size, printing per-strategy wall times and optionally
exporting them as CSV or a LaTeX table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(bench.Family(family), minSize, maxSize, seed, csvFile, texFile)
		},
	}

	cmd.Flags().StringVar(&family, "family", string(bench.FamilyPigeonhole), "instance family: pigeonhole or 3sat")
	cmd.Flags().IntVar(&minSize, "min", 2, "smallest instance size")
	cmd.Flags().IntVar(&maxSize, "max", 6, "largest instance size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for instance generation and decisions")
	cmd.Flags().StringVar(&csvFile, "csv", "", "export results to a CSV file")
	cmd.Flags().StringVar(&texFile, "tex", "", "export results to a LaTeX table file")

	return cmd
}

func run(family bench.Family, minSize, maxSize int, seed int64, csvFile, texFile string) error {
	strategies := solver.Strategies()
	runner := bench.NewRunner(strategies, seed)

	results, err := runner.Run(family, minSize, maxSize)
	if err != nil {
		return err
	}

	for _, result := range results {
		fmt.Printf("%s | Size %d: %s in %.6fs\n", result.Strategy, result.Size, result.Verdict, result.Elapsed.Seconds())
	}

	if csvFile != "" {
		if err := export(csvFile, func(f *os.File) error {
			return bench.WriteCSV(f, strategies, results)
		}); err != nil {
			return err
		}
	}
	if texFile != "" {
		if err := export(texFile, func(f *os.File) error {
			return bench.WriteLaTeX(f, strategies, results)
		}); err != nil {
			return err
		}
	}

	return nil
}

func export(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating export file (%s): %w", path, err)
	}
	defer f.Close()
	return write(f)
}
