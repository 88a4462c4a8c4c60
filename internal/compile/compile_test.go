package compile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variantsudoku/internal/compile"
	"variantsudoku/internal/engine"
)

// candidateBools extracts the true/false vector for one cell.
func candidateBools(facts *engine.Result, y, x int) []bool {
	return facts.Candidates[y][x]
}

func TestCompleteSet_BothEncodingsAgree(t *testing.T) {
	for _, cfg := range []engine.SolverConfig{
		{ExplicitSetEncoding: false},
		{ExplicitSetEncoding: true},
	} {
		e := engine.New(cfg)
		grid := e.IntGrid2D(3)
		row := grid.Row(0)
		compile.CompleteSet(e, row, 3, cfg)
		e.AddAnswerKeyInt(row...)

		facts, err := e.IrrefutableFacts(context.Background(), grid)
		require.NoError(t, err)
		require.NotNil(t, facts)

		for x := 0; x < 3; x++ {
			assert.Equal(t, []bool{true, true, true}, candidateBools(facts, 0, x),
				"cfg=%+v cell (0,%d): an unconstrained complete set leaves every digit possible everywhere", cfg, x)
		}
	}
}

func TestCompleteSet_RejectsRepeatedGiven(t *testing.T) {
	cfg := engine.DefaultSolverConfig()
	e := engine.New(cfg)
	grid := e.IntGrid2D(3)
	row := grid.Row(0)
	compile.CompleteSet(e, row, 3, cfg)
	e.EqualConst(row[0], 2)
	e.EqualConst(row[1], 2)
	e.AddAnswerKeyInt(row...)

	facts, err := e.IrrefutableFacts(context.Background(), grid)
	require.NoError(t, err)
	assert.Nil(t, facts, "two cells of a complete set pinned to the same digit must be unsatisfiable")
}

func TestNumSeen_CandidateNarrowing(t *testing.T) {
	cfg := engine.DefaultSolverConfig()
	e := engine.New(cfg)
	grid := e.IntGrid2D(3)
	row := grid.Row(0)
	e.AllDifferent(row)
	compile.NumSeen(e, row, 2)
	e.AddAnswerKeyInt(row...)

	facts, err := e.IrrefutableFacts(context.Background(), grid)
	require.NoError(t, err)
	require.NotNil(t, facts)

	assert.Equal(t, []bool{true, true, false}, candidateBools(facts, 0, 0), "position 0")
	assert.Equal(t, []bool{true, false, true}, candidateBools(facts, 0, 1), "position 1")
	assert.Equal(t, []bool{true, true, true}, candidateBools(facts, 0, 2), "position 2")
}

func TestXSumsSingle_CandidateNarrowing(t *testing.T) {
	cfg := engine.DefaultSolverConfig()
	e := engine.New(cfg)
	grid := e.IntGrid2D(3)
	row := grid.Row(0)
	compile.XSumsSingle(e, row, 5)
	e.AddAnswerKeyInt(row...)

	facts, err := e.IrrefutableFacts(context.Background(), grid)
	require.NoError(t, err)
	require.NotNil(t, facts)

	assert.Equal(t, []bool{false, true, true}, candidateBools(facts, 0, 0), "the leading cell names how many cells the sum covers")
	assert.Equal(t, []bool{true, false, true}, candidateBools(facts, 0, 1), "position 1")
	assert.Equal(t, []bool{true, true, true}, candidateBools(facts, 0, 2), "position 2")
}
