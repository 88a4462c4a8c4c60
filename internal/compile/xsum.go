package compile

import (
	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"variantsudoku/internal/engine"
)

// XSumsSingle encodes "the sum of the first k cells of seq equals
// target, where k is seq[0]'s value": the X-sums clue. The design notes
// describe this as an implication ladder (seq[0]==i ⇒
// sum(seq[0..i])==target for each i in 1..length); a single Relation
// over the whole sequence enforces the same property on every complete
// assignment, which is what the ladder amounts to once fully evaluated.
func XSumsSingle(e *engine.Engine, seq []*mk.FDVariable, target int) {
	length := len(seq)
	e.AddConstraint(engine.NewRelation("xsums_single", seq, func(values []int) bool {
		k := values[0]
		if k < 1 || k > length {
			return false
		}
		sum := 0
		for i := 0; i < k; i++ {
			sum += values[i]
		}
		return sum == target
	}))
}
