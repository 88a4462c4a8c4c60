package variants

import (
	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// Thermo asserts that values strictly increase along each path.
func Thermo(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	for _, path := range p.Thermo {
		for i := 0; i+1 < len(path); i++ {
			a := grid.At(path[i].Y, path[i].X)
			b := grid.At(path[i+1].Y, path[i+1].X)
			e.Inequality(a, b, mk.LessThan)
		}
	}
}
