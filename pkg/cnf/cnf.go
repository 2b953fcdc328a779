package cnf

import (
	"fmt"
	"sort"
	"strings"
)

// Lit is a propositional literal. The magnitude identifies a variable
// (1-indexed) and the sign its polarity: positive asserts the variable
// true, negative asserts it false. Zero is not a valid literal.
type Lit int

// Var returns the variable the literal refers to.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Neg negates the literal.
func (l Lit) Neg() Lit {
	return -l
}

// Positive returns true if the literal asserts its variable true.
func (l Lit) Positive() bool {
	return l > 0
}

func (l Lit) String() string {
	return fmt.Sprintf("%d", int(l))
}

// Clause is a disjunction of literals. An empty clause is always false.
type Clause []Lit

// Contains returns true if the clause contains the given literal.
func (c Clause) Contains(l Lit) bool {
	for _, m := range c {
		if m == l {
			return true
		}
	}
	return false
}

// IsTautology returns true if the clause contains a literal together with
// its negation, making the clause true under every assignment.
func (c Clause) IsTautology() bool {
	for _, l := range c {
		if c.Contains(l.Neg()) {
			return true
		}
	}
	return false
}

func (c Clause) String() string {
	lits := make([]string, len(c))
	for i, l := range c {
		lits[i] = l.String()
	}
	return strings.Join(lits, " ")
}

// Formula is a CNF instance: a conjunction of clauses over a declared
// number of variables. A Formula is immutable once constructed; solvers
// operate on derived clause sets or through an Assignment and never
// modify the Formula itself.
type Formula struct {
	numVars int
	clauses []Clause
}

// New returns a Formula over numVars variables. Every literal must be
// non-zero with a magnitude in [1, numVars]; the clause list is copied
// so later changes to the caller's slices cannot reach the Formula.
func New(numVars int, clauses []Clause) (*Formula, error) {
	if numVars < 0 {
		return nil, fmt.Errorf("invalid variable count %d", numVars)
	}
	cs := make([]Clause, len(clauses))
	for i, clause := range clauses {
		for _, l := range clause {
			if l == 0 {
				return nil, fmt.Errorf("clause %d: 0 is not a valid literal", i+1)
			}
			if l.Var() > numVars {
				return nil, fmt.Errorf("clause %d: literal %s is out of range for %d variables", i+1, l, numVars)
			}
		}
		cs[i] = make(Clause, len(clause))
		copy(cs[i], clause)
	}
	return &Formula{
		numVars: numVars,
		clauses: cs,
	}, nil
}

// NumVars returns the declared variable count.
func (f *Formula) NumVars() int {
	return f.numVars
}

// NumClauses returns the number of clauses.
func (f *Formula) NumClauses() int {
	return len(f.clauses)
}

// Clauses returns the formula's clauses. The returned slice is shared
// with the Formula and must be treated as read-only.
func (f *Formula) Clauses() []Clause {
	return f.clauses
}

// Variables returns the sorted set of variables referenced by at least
// one clause. Declared variables that appear in no clause are omitted.
func (f *Formula) Variables() []int {
	seen := map[int]struct{}{}
	for _, clause := range f.clauses {
		for _, l := range clause {
			seen[l.Var()] = struct{}{}
		}
	}
	vars := make([]int, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Ints(vars)
	return vars
}

func (f *Formula) String() string {
	clauses := make([]string, len(f.clauses))
	for i, c := range f.clauses {
		clauses[i] = fmt.Sprintf("(%s)", c)
	}
	return strings.Join(clauses, " & ")
}
