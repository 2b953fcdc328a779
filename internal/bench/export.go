package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/PizzaGenius228/SAT-Solver/pkg/solver"
)

// WriteCSV exports one row per instance size with a timing column per
// strategy.
func WriteCSV(w io.Writer, strategies []solver.Strategy, results []Result) error {
	writer := csv.NewWriter(w)

	header := append([]string{"Problem Size"}, lo.Map(strategies, func(s solver.Strategy, _ int) string {
		return fmt.Sprintf("%s Time (s)", strings.ToUpper(string(s)))
	})...)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, size := range Sizes(results) {
		row := []string{strconv.Itoa(size)}
		for _, strategy := range strategies {
			row = append(row, cell(results, size, strategy))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteLaTeX exports the same table as a LaTeX tabular environment.
func WriteLaTeX(w io.Writer, strategies []solver.Strategy, results []Result) error {
	columns := strings.Repeat("|c", len(strategies)+1) + "|"
	header := append([]string{"Problem Size"}, lo.Map(strategies, func(s solver.Strategy, _ int) string {
		return fmt.Sprintf("%s Time (s)", strings.ToUpper(string(s)))
	})...)

	fmt.Fprintf(w, "\\begin{table}[H]\n\\centering\n")
	fmt.Fprintf(w, "\\begin{tabular}{%s}\n\\hline\n", columns)
	fmt.Fprintf(w, "%s \\\\\n\\hline\n", strings.Join(header, " & "))

	for _, size := range Sizes(results) {
		row := []string{strconv.Itoa(size)}
		for _, strategy := range strategies {
			row = append(row, cell(results, size, strategy))
		}
		fmt.Fprintf(w, "%s \\\\\n", strings.Join(row, " & "))
	}

	fmt.Fprintf(w, "\\hline\n\\end{tabular}\n")
	fmt.Fprintf(w, "\\caption{Benchmark results for SAT solvers}\n")
	fmt.Fprintf(w, "\\label{tab:sat_benchmarks}\n")
	_, err := fmt.Fprintf(w, "\\end{table}\n")
	return err
}

func cell(results []Result, size int, strategy solver.Strategy) string {
	result, ok := Lookup(results, size, strategy)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.6f", result.Elapsed.Seconds())
}
