package variants

import (
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// Palindrome asserts that each path reads the same forward and
// backward: position i equals position len-1-i for i < len/2.
func Palindrome(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	for _, path := range p.Palindrome {
		length := len(path)
		for i := 0; i < length/2; i++ {
			a := grid.At(path[i].Y, path[i].X)
			b := grid.At(path[length-1-i].Y, path[length-1-i].X)
			e.Arithmetic(a, b, 0)
		}
	}
}
