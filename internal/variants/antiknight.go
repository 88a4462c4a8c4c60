package variants

import (
	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// AntiKnight asserts that no two cells a knight's move apart hold the
// same digit.
func AntiKnight(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if !p.AntiKnight {
		return
	}
	forEachKnightPair(p.N, func(ay, ax, by, bx int) {
		e.Inequality(grid.At(ay, ax), grid.At(by, bx), mk.NotEqual)
	})
}
