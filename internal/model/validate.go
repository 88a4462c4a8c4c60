package model

import "fmt"

// assert panics with a descriptive message when cond is false. Malformed
// puzzles are a programmer-error class per the error-handling design: the
// input layer is expected to validate JSON shape before a Puzzle ever
// reaches this package, so a failure here means the caller built an
// inconsistent Puzzle directly.
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Validate checks that the puzzle's shape is internally consistent:
// every present sub-structure's dimensions match N, given digits lie in
// [1,N], and every path is non-empty with in-bounds positions. It panics
// on the first inconsistency found.
func (p *Puzzle) Validate() {
	n := p.N
	assert(n > 0, "puzzle: N must be positive, got %d", n)

	assert(len(p.GivenNumbers) == n, "puzzle: givenNumbers has %d rows, want %d", len(p.GivenNumbers), n)
	for y, row := range p.GivenNumbers {
		assert(len(row) == n, "puzzle: givenNumbers row %d has %d cols, want %d", y, len(row), n)
		for x, v := range row {
			assert(v >= 0 && v <= n, "puzzle: given at (%d,%d)=%d out of range [0,%d]", y, x, v, n)
		}
	}

	if p.Blocks != nil {
		assertGrid(p.Blocks.Horizontal, n-1, n, "blocks.horizontalBorder")
		assertGrid(p.Blocks.Vertical, n, n-1, "blocks.verticalBorder")
	}

	if p.OddEven != nil {
		assert(len(p.OddEven.CellKind) == n, "puzzle: oddEven.cellKind has %d rows, want %d", len(p.OddEven.CellKind), n)
		for y, row := range p.OddEven.CellKind {
			assert(len(row) == n, "puzzle: oddEven.cellKind row %d has %d cols, want %d", y, len(row), n)
		}
	}

	if p.XV != nil {
		assertBorderGrid(len(p.XV.Horizontal), n-1, "xv.horizontalBorder")
		for _, row := range p.XV.Horizontal {
			assert(len(row) == n, "puzzle: xv.horizontalBorder row has %d cols, want %d", len(row), n)
		}
		assertBorderGrid(len(p.XV.Vertical), n, "xv.verticalBorder")
		for _, row := range p.XV.Vertical {
			assert(len(row) == n-1, "puzzle: xv.verticalBorder row has %d cols, want %d", len(row), n-1)
		}
	}

	for i, path := range p.Arrow {
		assertPath(path, n, fmt.Sprintf("arrow[%d]", i))
	}
	for i, path := range p.Thermo {
		assertPath(path, n, fmt.Sprintf("thermo[%d]", i))
		assert(len(path) >= 2, "puzzle: thermo[%d] needs at least 2 cells, got %d", i, len(path))
	}
	for i, path := range p.Palindrome {
		assertPath(path, n, fmt.Sprintf("palindrome[%d]", i))
	}

	if p.Killer != nil {
		for i, cage := range p.Killer.Cages {
			assert(len(cage.Cells) > 0, "puzzle: killer.cages[%d] has no cells", i)
			for _, c := range cage.Cells {
				assert(c.InBounds(n), "puzzle: killer.cages[%d] cell %v out of bounds", i, c)
			}
		}
	}

	if p.Consecutive != nil {
		assertGrid(p.Consecutive.Horizontal, n-1, n, "consecutive.horizontalBorder")
		assertGrid(p.Consecutive.Vertical, n, n-1, "consecutive.verticalBorder")
	}

	if p.Skyscrapers != nil {
		assertSide(p.Skyscrapers.Up, n, "skyscrapers.up")
		assertSide(p.Skyscrapers.Down, n, "skyscrapers.down")
		assertSide(p.Skyscrapers.Left, n, "skyscrapers.left")
		assertSide(p.Skyscrapers.Right, n, "skyscrapers.right")
	}

	if p.XSums != nil {
		assertSide(p.XSums.Up, n, "xSums.up")
		assertSide(p.XSums.Down, n, "xSums.down")
		assertSide(p.XSums.Left, n, "xSums.left")
		assertSide(p.XSums.Right, n, "xSums.right")
	}

	for i, r := range p.ExtraRegions {
		for _, c := range r.Cells {
			assert(c.InBounds(n), "puzzle: extraRegions[%d] cell %v out of bounds", i, c)
		}
	}

	if p.ForbiddenCandidates != nil {
		assert(len(p.ForbiddenCandidates.IsForbidden) == n, "puzzle: forbiddenCandidates.isForbidden has %d rows, want %d", len(p.ForbiddenCandidates.IsForbidden), n)
		for y, row := range p.ForbiddenCandidates.IsForbidden {
			assert(len(row) == n, "puzzle: forbiddenCandidates.isForbidden row %d has %d cols, want %d", y, len(row), n)
			for x, cell := range row {
				assert(len(cell) == n, "puzzle: forbiddenCandidates.isForbidden[%d][%d] has %d entries, want %d", y, x, len(cell), n)
			}
		}
	}
}

func assertGrid(g [][]bool, rows, cols int, name string) {
	assert(len(g) == rows, "puzzle: %s has %d rows, want %d", name, len(g), rows)
	for y, row := range g {
		assert(len(row) == cols, "puzzle: %s row %d has %d cols, want %d", name, y, len(row), cols)
	}
}

func assertBorderGrid(got, want int, name string) {
	assert(got == want, "puzzle: %s has %d rows, want %d", name, got, want)
}

func assertSide(side []*int, n int, name string) {
	if side == nil {
		return
	}
	assert(len(side) == n, "puzzle: %s has %d entries, want %d", name, len(side), n)
}

func assertPath(path Path, n int, name string) {
	assert(len(path) > 0, "puzzle: %s is empty", name)
	for _, c := range path {
		assert(c.InBounds(n), "puzzle: %s cell %v out of bounds", name, c)
	}
}
