package bench_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PizzaGenius228/SAT-Solver/internal/bench"
	"github.com/PizzaGenius228/SAT-Solver/pkg/solver"
)

var strategies = []solver.Strategy{solver.StrategyDPLL, solver.StrategyGini}

func run(t *testing.T, family bench.Family, min, max int) []bench.Result {
	t.Helper()
	results, err := bench.NewRunner(strategies, 1).Run(family, min, max)
	require.NoError(t, err)
	return results
}

func TestRunnerProducesOneResultPerSizeAndStrategy(t *testing.T) {
	results := run(t, bench.FamilyPigeonhole, 1, 3)
	assert.Len(t, results, 3*len(strategies))

	assert.Equal(t, []int{1, 2, 3}, bench.Sizes(results))
	for _, result := range results {
		assert.Equal(t, solver.Unsatisfiable, result.Verdict)
	}
}

func TestRunnerRandom3SATFamily(t *testing.T) {
	results := run(t, bench.FamilyRandom3SAT, 2, 4)
	assert.Len(t, results, 3*len(strategies))
}

func TestRunnerRejectsInvalidInput(t *testing.T) {
	_, err := bench.NewRunner(strategies, 1).Run(bench.FamilyPigeonhole, 3, 1)
	assert.Error(t, err)

	_, err = bench.NewRunner(strategies, 1).Run(bench.Family("sudoku"), 1, 2)
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	results := run(t, bench.FamilyPigeonhole, 1, 2)

	result, ok := bench.Lookup(results, 2, solver.StrategyGini)
	assert.True(t, ok)
	assert.Equal(t, 2, result.Size)
	assert.Equal(t, solver.StrategyGini, result.Strategy)

	_, ok = bench.Lookup(results, 5, solver.StrategyGini)
	assert.False(t, ok)
}

func TestWriteCSV(t *testing.T) {
	results := run(t, bench.FamilyPigeonhole, 1, 2)

	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, strategies, results))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "Problem Size,DPLL Time (s),GINI Time (s)", string(lines[0]))
}

func TestWriteLaTeX(t *testing.T) {
	results := run(t, bench.FamilyPigeonhole, 1, 2)

	var buf bytes.Buffer
	require.NoError(t, bench.WriteLaTeX(&buf, strategies, results))

	out := buf.String()
	assert.Contains(t, out, "\\begin{tabular}{|c|c|c|}")
	assert.Contains(t, out, "Problem Size & DPLL Time (s) & GINI Time (s)")
	assert.Contains(t, out, "\\caption{Benchmark results for SAT solvers}")
}
