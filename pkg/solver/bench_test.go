package solver_test

import (
	"math/rand"
	"testing"

	"github.com/PizzaGenius228/SAT-Solver/internal/generate"
	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
	"github.com/PizzaGenius228/SAT-Solver/pkg/solver"
)

var benchmarkPigeonhole = func() *cnf.Formula {
	f, err := generate.Pigeonhole(3)
	if err != nil {
		panic(err)
	}
	return f
}()

var benchmarkRandom3SAT = func() *cnf.Formula {
	f, err := generate.Random3SAT(15, 25, rand.New(rand.NewSource(9)))
	if err != nil {
		panic(err)
	}
	return f
}()

func benchmarkStrategy(b *testing.B, strategy solver.Strategy, f *cnf.Formula) {
	s, err := solver.New(strategy, solver.WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Solve(f)
	}
}

func BenchmarkDPPigeonhole(b *testing.B) {
	benchmarkStrategy(b, solver.StrategyDP, benchmarkPigeonhole)
}

func BenchmarkDPLLPigeonhole(b *testing.B) {
	benchmarkStrategy(b, solver.StrategyDPLL, benchmarkPigeonhole)
}

func BenchmarkIterativePigeonhole(b *testing.B) {
	benchmarkStrategy(b, solver.StrategyIterative, benchmarkPigeonhole)
}

func BenchmarkGiniPigeonhole(b *testing.B) {
	benchmarkStrategy(b, solver.StrategyGini, benchmarkPigeonhole)
}

func BenchmarkDPRandom3SAT(b *testing.B) {
	benchmarkStrategy(b, solver.StrategyDP, benchmarkRandom3SAT)
}

func BenchmarkDPLLRandom3SAT(b *testing.B) {
	benchmarkStrategy(b, solver.StrategyDPLL, benchmarkRandom3SAT)
}

func BenchmarkIterativeRandom3SAT(b *testing.B) {
	benchmarkStrategy(b, solver.StrategyIterative, benchmarkRandom3SAT)
}

func BenchmarkGiniRandom3SAT(b *testing.B) {
	benchmarkStrategy(b, solver.StrategyGini, benchmarkRandom3SAT)
}
