// Command benchmark is the thin wall-time harness §6 describes: it
// builds a fixed set of named puzzles, solves each under every
// SolverConfig combination the configuration-invariance property names,
// and prints per-configuration timings in milliseconds. It also asserts
// that every combination produced identical IrrefutableFacts, since the
// whole point of the knobs is that they must never change the answer.
package main

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"time"

	"variantsudoku/internal/driver"
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
)

// configs are the three SolverConfig combinations the configuration
// invariance property names explicitly.
var configs = []engine.SolverConfig{
	{OptimizePolarity: false, ExplicitSetEncoding: false},
	{OptimizePolarity: true, ExplicitSetEncoding: false},
	{OptimizePolarity: true, ExplicitSetEncoding: true},
}

func main() {
	scenarios := []struct {
		name   string
		puzzle model.Puzzle
	}{
		{"no_clue", noClue(9, 3)},
		{"no_clue_16x16", noClue(16, 4)},
		{"few_clues", fewClues()},
		{"unique_answer", uniqueAnswer()},
		{"few_clues_noncon1", fewCluesNoncon1()},
		{"few_clues_noncon2", fewCluesNoncon2()},
	}

	fmt.Printf("%-20s | %8s | %8s | %8s\n", "scenario", "base_ms", "polar_ms", "explicit_ms")
	fmt.Println("---------------------------------------------------------------")

	for _, s := range scenarios {
		runBench(s.name, s.puzzle)
	}
}

func runBench(name string, puzzle model.Puzzle) {
	var facts []*model.IrrefutableFacts
	var elapsed []time.Duration

	for _, cfg := range configs {
		start := time.Now()
		result, err := driver.Solve(context.Background(), &puzzle, cfg)
		if err != nil {
			log.Fatalf("%s: engine error under %+v: %v", name, cfg, err)
		}
		elapsed = append(elapsed, time.Since(start))
		facts = append(facts, result)
	}

	for i := 1; i < len(facts); i++ {
		if !factsEqual(facts[0], facts[i]) {
			log.Fatalf("%s: configuration %+v produced different facts than %+v", name, configs[i], configs[0])
		}
	}

	fmt.Printf("%-20s | %8.2f | %8.2f | %8.2f\n",
		name,
		elapsed[0].Seconds()*1000,
		elapsed[1].Seconds()*1000,
		elapsed[2].Seconds()*1000,
	)
}

func factsEqual(a, b *model.IrrefutableFacts) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.DeepEqual(a.DecidedNumbers, b.DecidedNumbers) && reflect.DeepEqual(a.Candidates, b.Candidates)
}

// defaultBlocks builds the classic blockSize*blockSize box layout: a
// wall below every row that ends a box, and a wall right of every
// column that ends a box.
func defaultBlocks(blockSize int) *model.Blocks {
	n := blockSize * blockSize
	horizontal := make([][]bool, n-1)
	for y := range horizontal {
		horizontal[y] = make([]bool, n)
	}
	vertical := make([][]bool, n)
	for y := range vertical {
		vertical[y] = make([]bool, n-1)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if y+1 < n && (y+1)%blockSize == 0 {
				horizontal[y][x] = true
			}
			if x+1 < n && (x+1)%blockSize == 0 {
				vertical[y][x] = true
			}
		}
	}
	return &model.Blocks{Horizontal: horizontal, Vertical: vertical}
}

func emptyGivens(n int) [][]int {
	g := make([][]int, n)
	for y := range g {
		g[y] = make([]int, n)
	}
	return g
}

func givens9(data [9][9]int) [][]int {
	g := make([][]int, 9)
	for y := 0; y < 9; y++ {
		g[y] = append([]int(nil), data[y][:]...)
	}
	return g
}

func noClue(n, blockSize int) model.Puzzle {
	return model.Puzzle{N: n, GivenNumbers: emptyGivens(n), Blocks: defaultBlocks(blockSize)}
}

func fewClues() model.Puzzle {
	return model.Puzzle{
		N: 9,
		GivenNumbers: givens9([9][9]int{
			{1, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 2, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 3, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 5, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 6, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
		}),
		Blocks: defaultBlocks(3),
	}
}

func uniqueAnswer() model.Puzzle {
	return model.Puzzle{
		N: 9,
		GivenNumbers: givens9([9][9]int{
			{0, 0, 0, 1, 9, 0, 0, 0, 0},
			{0, 0, 3, 0, 0, 6, 0, 4, 0},
			{0, 2, 0, 0, 0, 0, 8, 0, 0},
			{1, 0, 0, 4, 0, 0, 0, 8, 0},
			{5, 0, 0, 0, 3, 0, 0, 0, 2},
			{0, 9, 0, 0, 0, 8, 0, 0, 3},
			{0, 0, 8, 0, 0, 0, 0, 2, 0},
			{0, 4, 0, 3, 0, 0, 6, 0, 0},
			{0, 0, 0, 0, 5, 1, 0, 0, 0},
		}),
		Blocks: defaultBlocks(3),
	}
}

func fewCluesNoncon1() model.Puzzle {
	return model.Puzzle{
		N: 9,
		GivenNumbers: givens9([9][9]int{
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 1, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 8, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
		}),
		Blocks:         defaultBlocks(3),
		NonConsecutive: true,
	}
}

func fewCluesNoncon2() model.Puzzle {
	return model.Puzzle{
		N: 9,
		GivenNumbers: givens9([9][9]int{
			{1, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 3, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 4, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 6, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
		}),
		Blocks:         defaultBlocks(3),
		NonConsecutive: true,
	}
}
