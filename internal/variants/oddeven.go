package variants

import (
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// OddEven forbids every digit of the opposing parity on cells that
// carry a parity restriction, via explicit inequalities against each
// forbidden constant.
func OddEven(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if p.OddEven == nil {
		return
	}
	n := p.N
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			parity := p.OddEven.CellKind[y][x]
			if parity == model.ParityNone {
				continue
			}
			forbidRemainder := 0 // parity is odd: forbid even digits (v%2==0)
			if parity == model.ParityEven {
				forbidRemainder = 1 // parity is even: forbid odd digits (v%2==1)
			}
			for v := 1; v <= n; v++ {
				if v%2 == forbidRemainder {
					e.NotEqualConst(grid.At(y, x), v)
				}
			}
		}
	}
}
