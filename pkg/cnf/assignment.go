package cnf

// Assignment is a mutable partial mapping from variable to truth value,
// built up and torn down by the search-based solvers. Every Set along a
// search path that retreats past the variable must be matched by an
// Unset, so that a failed search leaves the Assignment as it found it.
//
// There is no shared default instance: callers construct a fresh
// Assignment per solve and solvers never retain one across calls.
type Assignment struct {
	values map[int]bool
}

// NewAssignment returns an empty Assignment.
func NewAssignment() *Assignment {
	return &Assignment{values: map[int]bool{}}
}

// Set assigns a truth value to a variable, overwriting any earlier value.
func (a *Assignment) Set(v int, value bool) {
	a.values[v] = value
}

// Unset removes the variable's value, returning it to the unassigned state.
func (a *Assignment) Unset(v int) {
	delete(a.values, v)
}

// Value returns the variable's value and whether it is assigned.
func (a *Assignment) Value(v int) (bool, bool) {
	value, ok := a.values[v]
	return value, ok
}

// Assigned returns true if the variable has a value.
func (a *Assignment) Assigned(v int) bool {
	_, ok := a.values[v]
	return ok
}

// Len returns the number of assigned variables.
func (a *Assignment) Len() int {
	return len(a.values)
}

// Lit evaluates a literal: the literal's truth value and whether its
// variable is assigned.
func (a *Assignment) Lit(l Lit) (bool, bool) {
	value, ok := a.values[l.Var()]
	if !ok {
		return false, false
	}
	return value == l.Positive(), true
}

// Satisfies evaluates a clause under the current partial assignment.
// It returns (true, true) if some literal is satisfied, (false, true)
// if every literal is falsified, and (_, false) if the clause's value
// is not yet determined. An empty clause is falsified.
func (a *Assignment) Satisfies(c Clause) (bool, bool) {
	known := true
	for _, l := range c {
		value, ok := a.Lit(l)
		if !ok {
			known = false
			continue
		}
		if value {
			return true, true
		}
	}
	return false, known
}

// SatisfiesAll returns true if every clause of the formula is satisfied.
func (a *Assignment) SatisfiesAll(f *Formula) bool {
	for _, c := range f.Clauses() {
		if sat, ok := a.Satisfies(c); !ok || !sat {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the current variable-to-value mapping.
func (a *Assignment) Snapshot() map[int]bool {
	values := make(map[int]bool, len(a.values))
	for v, value := range a.values {
		values[v] = value
	}
	return values
}
