package solver

import (
	"fmt"
	"io"

	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
)

// SearchPosition is a snapshot of the iterative solver's state at the
// moment a conflict is found.
type SearchPosition interface {
	// Decisions returns the literals decided so far, oldest first.
	Decisions() []cnf.Lit
	// Conflict returns the clause whose literals are all falsified.
	Conflict() cnf.Clause
}

type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nDecisions:\n")
	for _, l := range p.Decisions() {
		fmt.Fprintf(t.Writer, "- %s\n", l)
	}
	fmt.Fprintf(t.Writer, "Conflict:\n- %s\n", p.Conflict())
}

type searchPosition struct {
	trail      []trailEntry
	assignment *cnf.Assignment
	conflict   cnf.Clause
}

func (p searchPosition) Decisions() []cnf.Lit {
	var decisions []cnf.Lit
	for _, e := range p.trail {
		if !e.decision {
			continue
		}
		l := cnf.Lit(e.v)
		if value, ok := p.assignment.Value(e.v); ok && !value {
			l = l.Neg()
		}
		decisions = append(decisions, l)
	}
	return decisions
}

func (p searchPosition) Conflict() cnf.Clause {
	return p.conflict
}
