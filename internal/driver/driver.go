// Package driver wires the puzzle model, the engine facade and the
// variant compilers together: it builds the grid of decision variables,
// dispatches every applicable compiler, runs the irrefutable-facts
// query, and projects the engine's answer into the public
// model.IrrefutableFacts record.
package driver

import (
	"context"

	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
	"variantsudoku/internal/variants"
)

// Solve computes the irrefutable facts for p under cfg. A nil result
// with a nil error means the puzzle is unsatisfiable; a non-nil error
// means the engine itself failed.
func Solve(ctx context.Context, p *model.Puzzle, cfg engine.SolverConfig) (*model.IrrefutableFacts, error) {
	p.Validate()

	e := engine.New(cfg)
	grid := e.IntGrid2D(p.N)
	for y := 0; y < p.N; y++ {
		e.AddAnswerKeyInt(grid.Row(y)...)
	}

	variants.Run(e, grid, p, cfg)

	result, err := e.IrrefutableFacts(ctx, grid)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	return &model.IrrefutableFacts{
		DecidedNumbers: result.Decided,
		Candidates:     result.Candidates,
	}, nil
}
