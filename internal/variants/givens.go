package variants

import (
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// Givens equates every non-empty clue cell to its given digit. It
// always runs, independent of which other variants are present.
func Givens(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	n := p.N
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if d := p.GivenNumbers[y][x]; d != 0 {
				e.EqualConst(grid.At(y, x), d)
			}
		}
	}
}
