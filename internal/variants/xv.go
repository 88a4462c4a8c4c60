package variants

import (
	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// XV asserts the X/V sum markers on cell borders.
//
// Horizontal and vertical borders are handled asymmetrically on
// purpose: a horizontal border with no marker always forbids both
// sum==10 and sum==5, while a vertical border with no marker forbids
// only sum==10, and only when AllShown is set. This mismatch is a
// preserved idiosyncrasy of the system this was distilled from, not a
// bug to fix here — see the design notes for the open question this
// leaves about intended semantics under AllShown=false.
func XV(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if p.XV == nil {
		return
	}
	n := p.N

	for y := 0; y < n-1; y++ {
		for x := 0; x < n; x++ {
			a, b := grid.At(y, x), grid.At(y+1, x)
			switch p.XV.Horizontal[y][x] {
			case model.MarkX:
				assertSum(e, a, b, 10)
			case model.MarkV:
				assertSum(e, a, b, 5)
			case model.MarkNone:
				assertSumNot(e, a, b, 10)
				assertSumNot(e, a, b, 5)
			}
		}
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n-1; x++ {
			a, b := grid.At(y, x), grid.At(y, x+1)
			switch p.XV.Vertical[y][x] {
			case model.MarkX:
				assertSum(e, a, b, 10)
			case model.MarkV:
				assertSum(e, a, b, 5)
			case model.MarkNone:
				if p.XV.AllShown {
					assertSumNot(e, a, b, 10)
				}
			}
		}
	}
}

func assertSum(e *engine.Engine, a, b *mk.FDVariable, target int) {
	e.AddConstraint(engine.NewRelation("xv.sum", []*mk.FDVariable{a, b}, func(v []int) bool {
		return v[0]+v[1] == target
	}))
}

func assertSumNot(e *engine.Engine, a, b *mk.FDVariable, forbidden int) {
	e.AddConstraint(engine.NewRelation("xv.sum_not", []*mk.FDVariable{a, b}, func(v []int) bool {
		return v[0]+v[1] != forbidden
	}))
}
