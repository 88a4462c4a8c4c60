package variants

import (
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// Compiler reduces one puzzle-domain concept into engine constraints. It
// is a no-op when the sub-structure it reads is absent.
type Compiler func(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig)

// All lists every registered compiler. Row/column and givens always
// apply; every other compiler checks its own sub-structure's presence
// and is a no-op when it's absent. Order does not matter: compilers are
// independent and additive.
var All = []Compiler{
	RowsColumns,
	Givens,
	Blocks,
	OddEven,
	NonConsecutive,
	XV,
	Diagonal,
	Arrow,
	Thermo,
	Killer,
	Consecutive,
	Skyscrapers,
	XSums,
	ExtraRegions,
	Palindrome,
	ForbiddenCandidates,
	AntiKnight,
	NoTouch,
}

// Run dispatches every registered compiler against the puzzle.
func Run(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	for _, c := range All {
		c(e, grid, p, cfg)
	}
}
