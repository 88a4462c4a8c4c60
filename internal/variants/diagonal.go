package variants

import (
	"variantsudoku/internal/compile"
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// Diagonal asserts that the main and/or anti diagonal form a complete
// set, per which flags are set.
func Diagonal(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if p.Diagonal == nil {
		return
	}
	n := p.N

	if p.Diagonal.MainDiagonal {
		cells := make([][2]int, n)
		for i := 0; i < n; i++ {
			cells[i] = [2]int{i, i}
		}
		compile.CompleteSet(e, grid.Select(cells), n, cfg)
	}
	if p.Diagonal.AntiDiagonal {
		cells := make([][2]int, n)
		for i := 0; i < n; i++ {
			cells[i] = [2]int{i, n - 1 - i}
		}
		compile.CompleteSet(e, grid.Select(cells), n, cfg)
	}
}
