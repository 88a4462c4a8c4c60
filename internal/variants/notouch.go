package variants

import (
	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// NoTouch asserts that no two cells touching, including diagonally,
// hold the same digit.
func NoTouch(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if !p.NoTouch {
		return
	}
	forEachTouchPair(p.N, func(ay, ax, by, bx int) {
		e.Inequality(grid.At(ay, ax), grid.At(by, bx), mk.NotEqual)
	})
}
