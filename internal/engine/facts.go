package engine

import (
	"context"

	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"
)

// Result is the engine-level answer to an irrefutable-facts query: for
// every answer-key integer variable, which of its domain values survive
// in at least one solution.
type Result struct {
	// Decided[y][x] is the forced digit, or 0 if undecided.
	Decided [][]int
	// Candidates[y][x][i] is true iff digit i+1 is possible at (y,x).
	Candidates [][][]bool
}

// IrrefutableFacts computes, for every cell of grid, the set of digits
// consistent with at least one solution to the model built so far.
//
// gokanlogic has no built-in irrefutable-facts primitive, so this
// follows the simplification the design notes sanction: rather than
// wiring a per-cell boolean indicator array purely to let the engine
// report candidate status, each integer cell's domain is interrogated
// directly. For every value still in a cell's current domain, the
// model is solved once more with that cell pinned to a singleton
// domain; the value survives iff that trial is satisfiable. A base
// solve with no pinning first distinguishes "unsatisfiable puzzle" from
// "satisfiable, compute candidates."
//
// This is O(N^3) solves in the worst case (N*N cells, up to N values
// each) but every trial reuses the same propagated model, and most
// trials fail fast once the grid's own constraints have pruned most
// domains down to a handful of values.
func (e *Engine) IrrefutableFacts(ctx context.Context, grid *IntGrid) (*Result, error) {
	base := mk.NewSolver(e.model)
	baseSolutions, err := base.Solve(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(baseSolutions) == 0 {
		return nil, nil
	}

	n, _ := grid.Shape()
	decided := make([][]int, n)
	candidates := make([][][]bool, n)
	for y := 0; y < n; y++ {
		decided[y] = make([]int, n)
		candidates[y] = make([][]bool, n)
		for x := 0; x < n; x++ {
			candidates[y][x] = make([]bool, n)

			v := grid.At(y, x)
			original := v.Domain()

			feasible := 0
			lastFeasible := 0
			for val := 1; val <= n; val++ {
				if !original.Has(val) {
					continue
				}
				v.SetDomain(mk.NewBitSetDomainFromValues(n, []int{val}))
				trialSolver := mk.NewSolver(e.model)
				sols, trialErr := trialSolver.Solve(ctx, 1)
				if trialErr != nil {
					v.SetDomain(original)
					return nil, trialErr
				}
				if len(sols) > 0 {
					candidates[y][x][val-1] = true
					feasible++
					lastFeasible = val
				}
			}
			v.SetDomain(original)

			if feasible == 1 {
				decided[y][x] = lastFeasible
			}
		}
	}

	return &Result{Decided: decided, Candidates: candidates}, nil
}
