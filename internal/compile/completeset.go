// Package compile holds the primitive builders shared by several
// variant compilers: complete-set (a cell group is a permutation of
// 1..N), number-seen-from-one-side (skyscraper visibility), and the
// X-sum conditional. Each builder only talks to the engine facade.
package compile

import (
	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
)

// CompleteSet asserts that cells form a permutation of 1..N. The
// encoding is chosen by cfg.ExplicitSetEncoding: the implicit encoding
// defers to the engine's Count constraint, the explicit encoding
// materializes per-value equality indicators and a manual at-most-one.
// Both are logically equivalent; they differ only in how much inference
// the downstream search gets for free.
func CompleteSet(e *engine.Engine, cells []*mk.FDVariable, n int, cfg engine.SolverConfig) {
	e.AllDifferent(cells)

	if cfg.ExplicitSetEncoding {
		explicitCompleteSet(e, cells, n)
		return
	}
	implicitCompleteSet(e, cells, n)
}

// implicitCompleteSet asserts, for each value v in 1..n, that exactly
// one cell equals v, via the engine's Count primitive.
func implicitCompleteSet(e *engine.Engine, cells []*mk.FDVariable, n int) {
	for v := 1; v <= n; v++ {
		countVar := e.NewIntVar(1, len(cells)+1)
		e.Count(cells, v, countVar)
		e.EqualConst(countVar, 2) // count+1 == 2 means actual count == 1
	}
}

// explicitCompleteSet asserts, for each value v in 1..n, that at least
// one cell's equality indicator is true and that no two indicators are
// simultaneously true.
func explicitCompleteSet(e *engine.Engine, cells []*mk.FDVariable, n int) {
	for v := 1; v <= n; v++ {
		indicators := make([]*mk.FDVariable, len(cells))
		for i, c := range cells {
			b := e.NewBoolVar()
			e.ValueEqualsReified(c, v, b)
			indicators[i] = b
		}

		e.AddConstraint(engine.NewRelation("complete_set.at_least_one", indicators, func(values []int) bool {
			for _, b := range values {
				if b == 2 {
					return true
				}
			}
			return false
		}))

		for i := 0; i < len(indicators); i++ {
			for j := i + 1; j < len(indicators); j++ {
				pair := []*mk.FDVariable{indicators[i], indicators[j]}
				e.AddConstraint(engine.NewRelation("complete_set.at_most_one", pair, func(values []int) bool {
					return !(values[0] == 2 && values[1] == 2)
				}))
			}
		}
	}
}
