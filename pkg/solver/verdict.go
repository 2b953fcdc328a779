package solver

// Verdict is the outcome of a solve. Every strategy terminates with a
// definite answer; there is no unknown state.
type Verdict int

const (
	Unsatisfiable Verdict = iota
	Satisfiable
)

// VerdictFromBool converts a boolean solver result into a Verdict.
func VerdictFromBool(sat bool) Verdict {
	if sat {
		return Satisfiable
	}
	return Unsatisfiable
}

func (v Verdict) String() string {
	if v == Satisfiable {
		return "SAT"
	}
	return "UNSAT"
}
