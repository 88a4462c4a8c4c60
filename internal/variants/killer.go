package variants

import (
	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// Killer asserts, per cage, that its cells sum to the given target (if
// any) and that its cells are pairwise distinct (if Distinct is set).
// Both may apply to the same cage.
func Killer(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if p.Killer == nil {
		return
	}
	for _, cage := range p.Killer.Cages {
		cells := make([]*mk.FDVariable, len(cage.Cells))
		coeffs := make([]int, len(cage.Cells))
		for i, c := range cage.Cells {
			cells[i] = grid.At(c.Y, c.X)
			coeffs[i] = 1
		}
		if cage.Sum != nil {
			total := e.NewIntVar(*cage.Sum, *cage.Sum)
			e.LinearSum(cells, coeffs, total)
		}
		if p.Killer.Distinct {
			e.AllDifferent(cells)
		}
	}
}
