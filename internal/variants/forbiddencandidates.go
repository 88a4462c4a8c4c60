package variants

import (
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// ForbiddenCandidates asserts, for every (y,x,i) flagged true, that cell
// (y,x) does not equal i+1.
func ForbiddenCandidates(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if p.ForbiddenCandidates == nil {
		return
	}
	n := p.N
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			for i := 0; i < n; i++ {
				if p.ForbiddenCandidates.IsForbidden[y][x][i] {
					e.NotEqualConst(grid.At(y, x), i+1)
				}
			}
		}
	}
}
