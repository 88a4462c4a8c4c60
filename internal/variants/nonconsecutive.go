package variants

import (
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// NonConsecutive asserts that no orthogonally adjacent pair of cells
// differs by exactly one.
func NonConsecutive(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if !p.NonConsecutive {
		return
	}
	forEachOrthogonalPair(p.N, func(ay, ax, by, bx int) {
		assertNotConsecutive(e, grid.At(ay, ax), grid.At(by, bx))
	})
}
