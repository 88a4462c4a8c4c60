// Package reference is a brute-force backtracking oracle used only by
// tests: an independent cross-check against the CSP-engine-derived
// irrefutable facts for the classic row/column/block constraint. It
// knows nothing about the variant sub-structures in internal/model; it
// generalizes the teacher's fixed 9x9/3x3 DP solver to arbitrary N,
// dropping the puzzle-generation and difficulty-carving functions that
// have no place in an irrefutable-facts engine.
package reference

import "fmt"

// Conflict is a pair of cells holding the same value in a unit where
// that is disallowed.
type Conflict struct {
	Cell1 [2]int
	Cell2 [2]int
	Value int
	Unit  string // "row", "column" or "box"
}

// boxSize returns the side length of a square sub-box for n, or 0 if n
// is not a perfect square (no box constraint applies).
func boxSize(n int) int {
	for b := 1; b*b <= n; b++ {
		if b*b == n {
			return b
		}
	}
	return 0
}

// Solve finds any solution to grid via backtracking, or returns nil if
// none exists. grid is n×n, 0 meaning empty.
func Solve(grid [][]int, n int) [][]int {
	board := cloneGrid(grid, n)
	if solve(board, n, boxSize(n)) {
		return board
	}
	return nil
}

// CountSolutions counts solutions up to maxCount, stopping early once
// that many are found.
func CountSolutions(grid [][]int, n, maxCount int) int {
	board := cloneGrid(grid, n)
	count := 0
	countSolutions(board, n, boxSize(n), &count, maxCount)
	return count
}

// HasUniqueSolution reports whether grid has exactly one solution.
func HasUniqueSolution(grid [][]int, n int) bool {
	return CountSolutions(grid, n, 2) == 1
}

// IsValid reports whether grid has no row/column/box conflicts.
func IsValid(grid [][]int, n int) bool {
	return len(FindConflicts(grid, n)) == 0
}

// FindConflicts returns every pair of cells in the same row, column or
// box holding the same nonzero value.
func FindConflicts(grid [][]int, n int) []Conflict {
	var conflicts []Conflict

	for y := 0; y < n; y++ {
		positions := make(map[int][]int)
		for x := 0; x < n; x++ {
			if v := grid[y][x]; v != 0 {
				positions[v] = append(positions[v], x)
			}
		}
		for v, xs := range positions {
			for i := 0; i < len(xs); i++ {
				for j := i + 1; j < len(xs); j++ {
					conflicts = append(conflicts, Conflict{
						Cell1: [2]int{y, xs[i]}, Cell2: [2]int{y, xs[j]}, Value: v, Unit: "row",
					})
				}
			}
		}
	}

	for x := 0; x < n; x++ {
		positions := make(map[int][]int)
		for y := 0; y < n; y++ {
			if v := grid[y][x]; v != 0 {
				positions[v] = append(positions[v], y)
			}
		}
		for v, ys := range positions {
			for i := 0; i < len(ys); i++ {
				for j := i + 1; j < len(ys); j++ {
					conflicts = append(conflicts, Conflict{
						Cell1: [2]int{ys[i], x}, Cell2: [2]int{ys[j], x}, Value: v, Unit: "column",
					})
				}
			}
		}
	}

	if b := boxSize(n); b > 0 {
		for boxY := 0; boxY < b; boxY++ {
			for boxX := 0; boxX < b; boxX++ {
				positions := make(map[int][][2]int)
				for dy := 0; dy < b; dy++ {
					for dx := 0; dx < b; dx++ {
						y, x := boxY*b+dy, boxX*b+dx
						if v := grid[y][x]; v != 0 {
							positions[v] = append(positions[v], [2]int{y, x})
						}
					}
				}
				for v, cells := range positions {
					for i := 0; i < len(cells); i++ {
						for j := i + 1; j < len(cells); j++ {
							conflicts = append(conflicts, Conflict{
								Cell1: cells[i], Cell2: cells[j], Value: v, Unit: "box",
							})
						}
					}
				}
			}
		}
	}

	return conflicts
}

func cloneGrid(grid [][]int, n int) [][]int {
	out := make([][]int, n)
	for y := 0; y < n; y++ {
		out[y] = make([]int, n)
		copy(out[y], grid[y])
	}
	return out
}

func solve(board [][]int, n, box int) bool {
	y, x, found := firstEmpty(board, n)
	if !found {
		return true
	}
	for v := 1; v <= n; v++ {
		if isValid(board, n, box, y, x, v) {
			board[y][x] = v
			if solve(board, n, box) {
				return true
			}
			board[y][x] = 0
		}
	}
	return false
}

func countSolutions(board [][]int, n, box int, count *int, maxCount int) {
	if *count >= maxCount {
		return
	}
	y, x, found := firstEmpty(board, n)
	if !found {
		*count++
		return
	}
	for v := 1; v <= n; v++ {
		if *count >= maxCount {
			return
		}
		if isValid(board, n, box, y, x, v) {
			board[y][x] = v
			countSolutions(board, n, box, count, maxCount)
			board[y][x] = 0
		}
	}
}

func firstEmpty(board [][]int, n int) (int, int, bool) {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if board[y][x] == 0 {
				return y, x, true
			}
		}
	}
	return 0, 0, false
}

func isValid(board [][]int, n, box, row, col, v int) bool {
	for c := 0; c < n; c++ {
		if board[row][c] == v {
			return false
		}
	}
	for r := 0; r < n; r++ {
		if board[r][col] == v {
			return false
		}
	}
	if box > 0 {
		boxRow, boxCol := (row/box)*box, (col/box)*box
		for r := boxRow; r < boxRow+box; r++ {
			for c := boxCol; c < boxCol+box; c++ {
				if board[r][c] == v {
					return false
				}
			}
		}
	}
	return true
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s conflict: %v and %v both %d", c.Unit, c.Cell1, c.Cell2, c.Value)
}
