package variants

import (
	"variantsudoku/internal/compile"
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// ExtraRegions asserts that each region with exactly N cells is a
// complete set; regions of any other size are silently ignored, per the
// preserved source behavior (see the design notes' open question about
// whether undersized regions should instead be all-different).
func ExtraRegions(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	n := p.N
	for _, region := range p.ExtraRegions {
		if len(region.Cells) != n {
			continue
		}
		cells := make([][2]int, len(region.Cells))
		for i, c := range region.Cells {
			cells[i] = [2]int{c.Y, c.X}
		}
		compile.CompleteSet(e, grid.Select(cells), n, cfg)
	}
}
