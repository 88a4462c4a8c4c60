package variants

import (
	"fmt"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"variantsudoku/internal/compile"
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// Blocks flood-fills the wall graph: cells connect to their orthogonal
// neighbor whenever no wall separates them. Every connected component of
// size exactly N is asserted as a complete set; components of any other
// size contribute no constraint, per the preserved source behavior.
func Blocks(e *engine.Engine, grid *engine.IntGrid, p *model.Puzzle, cfg engine.SolverConfig) {
	if p.Blocks == nil {
		return
	}
	n := p.N

	g := core.NewGraph()
	id := func(y, x int) string { return fmt.Sprintf("%d_%d", y, x) }
	coords := make(map[string][2]int, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if err := g.AddVertex(id(y, x)); err != nil {
				panic(fmt.Sprintf("variants.Blocks: AddVertex: %v", err))
			}
			coords[id(y, x)] = [2]int{y, x}
		}
	}
	for y := 0; y < n-1; y++ {
		for x := 0; x < n; x++ {
			if !p.Blocks.Horizontal[y][x] {
				if _, err := g.AddEdge(id(y, x), id(y+1, x), 0); err != nil {
					panic(fmt.Sprintf("variants.Blocks: AddEdge: %v", err))
				}
			}
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n-1; x++ {
			if !p.Blocks.Vertical[y][x] {
				if _, err := g.AddEdge(id(y, x), id(y, x+1), 0); err != nil {
					panic(fmt.Sprintf("variants.Blocks: AddEdge: %v", err))
				}
			}
		}
	}

	visited := make(map[string]bool, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			start := id(y, x)
			if visited[start] {
				continue
			}
			result, err := bfs.BFS(g, start)
			if err != nil {
				panic(fmt.Sprintf("variants.Blocks: BFS: %v", err))
			}
			for _, v := range result.Order {
				visited[v] = true
			}
			if len(result.Order) != n {
				continue
			}
			cells := make([][2]int, len(result.Order))
			for i, v := range result.Order {
				cells[i] = coords[v]
			}
			compile.CompleteSet(e, grid.Select(cells), n, cfg)
		}
	}
}
