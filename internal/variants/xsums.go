package variants

import (
	"variantsudoku/internal/compile"
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// XSums asserts, for every clued side position, the X-sums implication:
// the sum of the first k cells (from that side) equals the clue, where
// k is the value of the nearest cell.
func XSums(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if p.XSums == nil {
		return
	}
	xsumSide(e, grid, p.XSums.Up, "up")
	xsumSide(e, grid, p.XSums.Down, "down")
	xsumSide(e, grid, p.XSums.Left, "left")
	xsumSide(e, grid, p.XSums.Right, "right")
}

func xsumSide(e *engine.Engine, grid *engine.IntGrid, clues []*int, side string) {
	if clues == nil {
		return
	}
	for i, clue := range clues {
		if clue == nil {
			continue
		}
		compile.XSumsSingle(e, sideSequence(grid, side, i), *clue)
	}
}
