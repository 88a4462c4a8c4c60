package engine

import (
	"fmt"

	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"
)

// Relation is a generic forward-checking constraint over a fixed set of
// variables, enforced by an arbitrary Go predicate. It is the one
// reusable primitive behind most variant compilers that don't map
// cleanly onto a named gokanlogic constraint: arrow sums, skyscraper
// visibility, X-sums, non-consecutive pairs, consecutive dots, XV sums
// and the explicit complete-set indicators are all instances of "this
// tuple of cells must satisfy predicate P".
//
// Propagation strategy: when every variable but one is bound, each
// candidate value of the remaining variable is tested against the
// predicate and rejected if no completion of the bound variables
// satisfies it; when two or more variables are unbound, Relation passes
// without narrowing (the predicate is checked again once more variables
// become bound); when all variables are bound, the predicate is
// evaluated once and an error is returned if it fails. This is weaker
// than full generalized-arc-consistency but is sufficient here because
// Relation always shares its variables with other constraints (rows,
// columns, all-different) that do the bulk of the pruning.
type Relation struct {
	vars      []*mk.FDVariable
	predicate func(values []int) bool
	name      string
}

// NewRelation builds a Relation constraint over vars, enforced by pred.
// pred receives the fully-assigned values in the same order as vars.
func NewRelation(name string, vars []*mk.FDVariable, pred func(values []int) bool) *Relation {
	return &Relation{vars: vars, predicate: pred, name: name}
}

// Variables implements minikanren.ModelConstraint.
func (r *Relation) Variables() []*mk.FDVariable { return r.vars }

// Type implements minikanren.ModelConstraint.
func (r *Relation) Type() string { return "Relation:" + r.name }

// String implements minikanren.ModelConstraint.
func (r *Relation) String() string {
	return fmt.Sprintf("Relation(%s, %d vars)", r.name, len(r.vars))
}

// Propagate implements minikanren.PropagationConstraint.
func (r *Relation) Propagate(solver *mk.Solver, state *mk.SolverState) (*mk.SolverState, error) {
	doms := make([]mk.Domain, len(r.vars))
	unboundIdx := -1
	unboundCount := 0
	for i, v := range r.vars {
		d := solver.GetDomain(state, v.ID())
		if d == nil || d.Count() == 0 {
			return nil, fmt.Errorf("Relation(%s): variable %d has empty domain", r.name, v.ID())
		}
		doms[i] = d
		if !d.IsSingleton() {
			unboundCount++
			unboundIdx = i
		}
	}

	if unboundCount >= 2 {
		return state, nil
	}

	if unboundCount == 0 {
		values := make([]int, len(doms))
		for i, d := range doms {
			values[i] = d.SingletonValue()
		}
		if !r.predicate(values) {
			return nil, fmt.Errorf("Relation(%s): predicate failed on fully-assigned tuple %v", r.name, values)
		}
		return state, nil
	}

	// Exactly one unbound variable: test each candidate value of it with
	// the rest held at their current singleton values.
	values := make([]int, len(doms))
	for i, d := range doms {
		if i != unboundIdx {
			values[i] = d.SingletonValue()
		}
	}

	candidate := doms[unboundIdx]
	kept := make([]int, 0, candidate.Count())
	candidate.IterateValues(func(v int) {
		values[unboundIdx] = v
		if r.predicate(values) {
			kept = append(kept, v)
		}
	})

	if len(kept) == 0 {
		return nil, fmt.Errorf("Relation(%s): no feasible value remains for variable %d", r.name, r.vars[unboundIdx].ID())
	}

	newDomain := mk.NewBitSetDomainFromValues(candidate.MaxValue(), kept)
	if newDomain.Equal(candidate) {
		return state, nil
	}
	newState, _ := solver.SetDomain(state, r.vars[unboundIdx].ID(), newDomain)
	return newState, nil
}
