package compile

import (
	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
)

// NumSeen asserts that the number of strict left-to-right maxima in seq
// equals target: the skyscraper "how many towers are visible from this
// side" clue. It is realized as a single Relation over the whole
// sequence rather than the sum-of-ite-terms the design notes describe,
// since the engine facade's Relation primitive already performs the
// forward-checking that construction would provide once all but one
// cell of the sequence is bound.
func NumSeen(e *engine.Engine, seq []*mk.FDVariable, target int) {
	e.AddConstraint(engine.NewRelation("num_seen", seq, func(values []int) bool {
		return countVisible(values) == target
	}))
}

// countVisible returns the number of positions i for which values[i] is
// strictly greater than every earlier element.
func countVisible(values []int) int {
	seen := 0
	max := 0
	for _, v := range values {
		if v > max {
			seen++
			max = v
		}
	}
	return seen
}
