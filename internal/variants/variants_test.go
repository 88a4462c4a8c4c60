package variants_test

import (
	"context"
	"testing"

	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
	"variantsudoku/internal/variants"
)

func emptyHorizontal(n int, mark model.BorderMark) [][]model.BorderMark {
	g := make([][]model.BorderMark, n-1)
	for y := range g {
		g[y] = make([]model.BorderMark, n)
		for x := range g[y] {
			g[y][x] = mark
		}
	}
	return g
}

func emptyVertical(n int, mark model.BorderMark) [][]model.BorderMark {
	g := make([][]model.BorderMark, n)
	for y := range g {
		g[y] = make([]model.BorderMark, n-1)
		for x := range g[y] {
			g[y][x] = mark
		}
	}
	return g
}

// satisfiable reports whether the model built so far has any solution.
func satisfiable(t *testing.T, e *engine.Engine) bool {
	t.Helper()
	solver := mk.NewSolver(e.Model())
	sols, err := solver.Solve(context.Background(), 1)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	return len(sols) > 0
}

// TestXV_AsymmetricUnmarkedBorders documents the preserved idiosyncrasy:
// an unmarked horizontal border always forbids sum 5 and 10, while an
// unmarked vertical border only forbids sum 10, and only under AllShown.
func TestXV_AsymmetricUnmarkedBorders(t *testing.T) {
	n := 9

	// Unmarked horizontal border: sum 10 must be infeasible.
	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, XV: &model.XV{
		Horizontal: emptyHorizontal(n, model.MarkNone),
		Vertical:   emptyVertical(n, model.MarkNone),
		AllShown:   false,
	}}
	variants.XV(e, grid, p, engine.DefaultSolverConfig())
	e.EqualConst(grid.At(0, 0), 9)
	e.EqualConst(grid.At(1, 0), 1)
	if satisfiable(t, e) {
		t.Error("unmarked horizontal border should forbid sum 10")
	}

	// Unmarked vertical border under AllShown=false: sum 10 is allowed.
	e2 := engine.New(engine.DefaultSolverConfig())
	grid2 := e2.IntGrid2D(n)
	p2 := &model.Puzzle{N: n, XV: &model.XV{
		Horizontal: emptyHorizontal(n, model.MarkNone),
		Vertical:   emptyVertical(n, model.MarkNone),
		AllShown:   false,
	}}
	variants.XV(e2, grid2, p2, engine.DefaultSolverConfig())
	e2.EqualConst(grid2.At(0, 0), 9)
	e2.EqualConst(grid2.At(0, 1), 1)
	if !satisfiable(t, e2) {
		t.Error("unmarked vertical border under AllShown=false should not forbid sum 10")
	}
}

// TestExtraRegions_IgnoresWrongSizedRegion documents the preserved
// idiosyncrasy: a region whose cell count isn't exactly N contributes no
// constraint at all.
func TestExtraRegions_IgnoresWrongSizedRegion(t *testing.T) {
	n := 4
	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, ExtraRegions: []model.Region{
		{Cells: []model.Cell{{Y: 0, X: 0}, {Y: 0, X: 1}}}, // size 2, not N
	}}
	variants.ExtraRegions(e, grid, p, engine.DefaultSolverConfig())

	e.EqualConst(grid.At(0, 0), 1)
	e.EqualConst(grid.At(0, 1), 1)
	if !satisfiable(t, e) {
		t.Error("an undersized extra region must not impose all-different")
	}
}

func TestExtraRegions_EnforcesCompleteSetAtExactSize(t *testing.T) {
	n := 4
	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, ExtraRegions: []model.Region{
		{Cells: []model.Cell{{Y: 0, X: 0}, {Y: 1, X: 1}, {Y: 2, X: 2}, {Y: 3, X: 3}}},
	}}
	variants.ExtraRegions(e, grid, p, engine.DefaultSolverConfig())

	e.EqualConst(grid.At(0, 0), 1)
	e.EqualConst(grid.At(1, 1), 1)
	if satisfiable(t, e) {
		t.Error("a full-sized extra region must forbid repeated digits")
	}
}

func TestThermo_StrictlyIncreasing(t *testing.T) {
	n := 9
	path := []model.Path{{{Y: 0, X: 0}, {Y: 0, X: 1}, {Y: 0, X: 2}}}

	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, Thermo: path}
	variants.Thermo(e, grid, p, engine.DefaultSolverConfig())
	e.EqualConst(grid.At(0, 0), 5)
	e.EqualConst(grid.At(0, 2), 3)
	if satisfiable(t, e) {
		t.Error("a thermo path cannot decrease overall")
	}

	e2 := engine.New(engine.DefaultSolverConfig())
	grid2 := e2.IntGrid2D(n)
	p2 := &model.Puzzle{N: n, Thermo: path}
	variants.Thermo(e2, grid2, p2, engine.DefaultSolverConfig())
	e2.EqualConst(grid2.At(0, 0), 1)
	e2.EqualConst(grid2.At(0, 2), 9)
	if !satisfiable(t, e2) {
		t.Error("an increasing thermo path with room in between should be satisfiable")
	}
}

func TestPalindrome_MirrorsEndpoints(t *testing.T) {
	n := 9
	path := model.Path{{Y: 0, X: 0}, {Y: 0, X: 1}, {Y: 0, X: 2}}

	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, Palindrome: []model.Path{path}}
	variants.Palindrome(e, grid, p, engine.DefaultSolverConfig())
	e.EqualConst(grid.At(0, 0), 4)
	e.EqualConst(grid.At(0, 2), 5)
	if satisfiable(t, e) {
		t.Error("a palindrome path's endpoints must match")
	}
}

func TestKiller_SumAndDistinct(t *testing.T) {
	n := 4
	sum := 5
	cage := model.KillerCage{Cells: []model.Cell{{Y: 0, X: 0}, {Y: 0, X: 1}}, Sum: &sum}

	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, Killer: &model.Killer{Cages: []model.KillerCage{cage}, Distinct: true}}
	variants.Killer(e, grid, p, engine.DefaultSolverConfig())

	e.EqualConst(grid.At(0, 0), 2)
	e.AddAnswerKeyInt(grid.At(0, 1))

	facts, err := e.IrrefutableFacts(context.Background(), grid)
	if err != nil {
		t.Fatalf("IrrefutableFacts: %v", err)
	}
	if facts == nil {
		t.Fatal("expected a satisfiable model")
	}
	if !facts.Candidates[0][1][3-1] || facts.Decided[0][1] != 3 {
		t.Errorf("cage cell should be forced to 3, got candidates=%v decided=%d", facts.Candidates[0][1], facts.Decided[0][1])
	}
}

func TestConsecutive_UnmarkedUnderAllShownForbids(t *testing.T) {
	n := 9
	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, Consecutive: &model.Consecutive{
		Horizontal: emptyGrid(n-1, n),
		Vertical:   emptyGrid(n, n-1),
		AllShown:   true,
	}}
	variants.Consecutive(e, grid, p, engine.DefaultSolverConfig())

	e.EqualConst(grid.At(0, 0), 3)
	e.EqualConst(grid.At(1, 0), 4)
	if satisfiable(t, e) {
		t.Error("an unmarked border under AllShown should forbid consecutive digits")
	}
}

func emptyGrid(rows, cols int) [][]bool {
	g := make([][]bool, rows)
	for y := range g {
		g[y] = make([]bool, cols)
	}
	return g
}

func TestForbiddenCandidates_ExcludesMaskedDigit(t *testing.T) {
	n := 4
	mask := make([][][]bool, n)
	for y := range mask {
		mask[y] = make([][]bool, n)
		for x := range mask[y] {
			mask[y][x] = make([]bool, n)
		}
	}
	mask[0][0][3-1] = true

	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, ForbiddenCandidates: &model.ForbiddenCandidates{IsForbidden: mask}}
	variants.ForbiddenCandidates(e, grid, p, engine.DefaultSolverConfig())

	e.EqualConst(grid.At(0, 0), 3)
	if satisfiable(t, e) {
		t.Error("a forbidden candidate must not be assignable")
	}
}

func TestAntiKnight_ForbidsKnightMovePair(t *testing.T) {
	n := 9
	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, AntiKnight: true}
	variants.AntiKnight(e, grid, p, engine.DefaultSolverConfig())

	e.EqualConst(grid.At(0, 0), 5)
	e.EqualConst(grid.At(1, 2), 5)
	if satisfiable(t, e) {
		t.Error("a knight's-move pair must not share a digit under anti-knight")
	}
}

func TestNoTouch_ForbidsDiagonalNeighborPair(t *testing.T) {
	n := 9
	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, NoTouch: true}
	variants.NoTouch(e, grid, p, engine.DefaultSolverConfig())

	e.EqualConst(grid.At(0, 0), 7)
	e.EqualConst(grid.At(1, 1), 7)
	if satisfiable(t, e) {
		t.Error("diagonally touching cells must not share a digit under no-touch")
	}
}

func TestDiagonal_EnforcesAllDifferent(t *testing.T) {
	n := 4
	e := engine.New(engine.DefaultSolverConfig())
	grid := e.IntGrid2D(n)
	p := &model.Puzzle{N: n, Diagonal: &model.Diagonal{MainDiagonal: true}}
	variants.Diagonal(e, grid, p, engine.DefaultSolverConfig())

	e.EqualConst(grid.At(0, 0), 2)
	e.EqualConst(grid.At(1, 1), 2)
	if satisfiable(t, e) {
		t.Error("two cells on a constrained diagonal must not share a digit")
	}
}
