package variants

import (
	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// Arrow asserts that each path's head cell equals the sum of its tail
// cells. A path of length 1 has no tail, so its degenerate constraint
// head==0 is outside the [1,N] domain and therefore unsatisfiable; this
// semantics is kept deliberately rather than special-cased away.
func Arrow(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	for _, path := range p.Arrow {
		head := grid.At(path[0].Y, path[0].X)
		if len(path) == 1 {
			// head == sum-of-empty-tail == 0, outside the [1,N] domain: no
			// value satisfies this, so the puzzle is unsatisfiable.
			e.AddConstraint(engine.NewRelation("arrow.degenerate", []*mk.FDVariable{head}, func(v []int) bool {
				return false
			}))
			continue
		}
		tail := make([]*mk.FDVariable, len(path)-1)
		for i, c := range path[1:] {
			tail[i] = grid.At(c.Y, c.X)
		}
		vars := append([]*mk.FDVariable{head}, tail...)
		e.AddConstraint(engine.NewRelation("arrow", vars, func(v []int) bool {
			sum := 0
			for _, x := range v[1:] {
				sum += x
			}
			return v[0] == sum
		}))
	}
}
