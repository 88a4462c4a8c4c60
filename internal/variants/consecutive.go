package variants

import (
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// Consecutive asserts the white-dot marker semantics: a marked border
// means the two cells differ by exactly one; under AllShown, an
// unmarked border means they do not.
func Consecutive(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if p.Consecutive == nil {
		return
	}
	n := p.N

	for y := 0; y < n-1; y++ {
		for x := 0; x < n; x++ {
			a, b := grid.At(y, x), grid.At(y+1, x)
			if p.Consecutive.Horizontal[y][x] {
				assertConsecutive(e, a, b)
			} else if p.Consecutive.AllShown {
				assertNotConsecutive(e, a, b)
			}
		}
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n-1; x++ {
			a, b := grid.At(y, x), grid.At(y, x+1)
			if p.Consecutive.Vertical[y][x] {
				assertConsecutive(e, a, b)
			} else if p.Consecutive.AllShown {
				assertNotConsecutive(e, a, b)
			}
		}
	}
}
