package variants

import (
	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
)

// forEachOrthogonalPair invokes f once for each unordered pair of
// orthogonally adjacent cells on an n×n grid.
func forEachOrthogonalPair(n int, f func(ay, ax, by, bx int)) {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				f(y, x, y, x+1)
			}
			if y+1 < n {
				f(y, x, y+1, x)
			}
		}
	}
}

// knightOffsets are the eight relative moves a knight can make.
var knightOffsets = [][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// forEachKnightPair invokes f once for each unordered pair of cells a
// knight's move apart on an n×n grid.
func forEachKnightPair(n int, f func(ay, ax, by, bx int)) {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			for _, off := range knightOffsets {
				ny, nx := y+off[0], x+off[1]
				if ny < 0 || ny >= n || nx < 0 || nx >= n {
					continue
				}
				// emit once per unordered pair
				if ny > y || (ny == y && nx > x) {
					f(y, x, ny, nx)
				}
			}
		}
	}
}

// forEachTouchPair invokes f once for each unordered pair of cells that
// are orthogonally or diagonally adjacent on an n×n grid.
func forEachTouchPair(n int, f func(ay, ax, by, bx int)) {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					ny, nx := y+dy, x+dx
					if ny < 0 || ny >= n || nx < 0 || nx >= n {
						continue
					}
					if ny > y || (ny == y && nx > x) {
						f(y, x, ny, nx)
					}
				}
			}
		}
	}
}

// assertNotConsecutive posts a != b-1 and a != b+1.
func assertNotConsecutive(e *engine.Engine, a, b *mk.FDVariable) {
	e.AddConstraint(engine.NewRelation("not_consecutive", []*mk.FDVariable{a, b}, func(v []int) bool {
		diff := v[0] - v[1]
		return diff != 1 && diff != -1
	}))
}

// sideSequence returns the grid's row or column at index i, oriented so
// that position 0 is nearest the named side: "up" walks column i
// top-to-bottom (position 0 = row 0, the top), "down" walks it
// bottom-to-top, "left" walks row i left-to-right, "right" walks it
// right-to-left.
func sideSequence(grid *engine.IntGrid, side string, i int) []*mk.FDVariable {
	switch side {
	case "up":
		return grid.Col(i)
	case "down":
		return engine.Reverse(grid.Col(i))
	case "left":
		return grid.Row(i)
	case "right":
		return engine.Reverse(grid.Row(i))
	default:
		panic("variants: unknown side " + side)
	}
}

// assertConsecutive posts |a-b| = 1.
func assertConsecutive(e *engine.Engine, a, b *mk.FDVariable) {
	e.AddConstraint(engine.NewRelation("consecutive", []*mk.FDVariable{a, b}, func(v []int) bool {
		diff := v[0] - v[1]
		return diff == 1 || diff == -1
	}))
}
