package variants

import (
	"variantsudoku/internal/compile"
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// Skyscrapers asserts, for every clued side position, that the number
// of left-to-right (from that side) visible maxima equals the clue.
func Skyscrapers(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if p.Skyscrapers == nil {
		return
	}
	skyscraperSide(e, grid, p.Skyscrapers.Up, "up")
	skyscraperSide(e, grid, p.Skyscrapers.Down, "down")
	skyscraperSide(e, grid, p.Skyscrapers.Left, "left")
	skyscraperSide(e, grid, p.Skyscrapers.Right, "right")
}

func skyscraperSide(e *engine.Engine, grid *engine.IntGrid, clues []*int, side string) {
	if clues == nil {
		return
	}
	for i, clue := range clues {
		if clue == nil {
			continue
		}
		compile.NumSeen(e, sideSequence(grid, side, i), *clue)
	}
}
