package variants

import (
	"variantsudoku/internal/compile"
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// RowsColumns asserts that every row and every column is a complete
// set. It always runs, independent of which variants are present.
func RowsColumns(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	n := p.N
	for y := 0; y < n; y++ {
		compile.CompleteSet(e, grid.Row(y), n, cfg)
	}
	for x := 0; x < n; x++ {
		compile.CompleteSet(e, grid.Col(x), n, cfg)
	}
}
