// Package engine is the thin adapter between the constraint-compilation
// layer and the underlying finite-domain CSP engine
// (github.com/gitrdm/gokanlogic). It exposes exactly the operations the
// variant compilers need: integer and boolean decision variables,
// constraint registration, answer-key marking, and the terminal
// irrefutable-facts query. Compilers outside this package use the
// minikanren package only for its variable type and constraint-kind
// constants; they post constraints through this facade.
package engine

import (
	"fmt"

	mk "github.com/gitrdm/gokanlogic/pkg/minikanren"
)

// boolFalse and boolTrue are the domain values gokanlogic's reified
// constraints use for booleans; BitSetDomain is 1-indexed so false/true
// are encoded as 1/2 rather than 0/1.
const (
	boolFalse = 1
	boolTrue  = 2
)

// Engine wraps a minikanren Model plus the answer-key variable sets
// recorded by AddAnswerKeyInt/AddAnswerKeyBool. IrrefutableFacts does not
// read these sets: it interrogates every cell of the grid passed to it.
type Engine struct {
	model *mk.Model

	intKeys  []*mk.FDVariable
	boolKeys []*mk.FDVariable
}

// New creates an Engine configured per cfg.
func New(cfg SolverConfig) *Engine {
	return &Engine{model: mk.NewModelWithConfig(cfg.toMiniKanren())}
}

// Model exposes the underlying model. Neither the primitive builders nor
// the variant compilers call it.
func (e *Engine) Model() *mk.Model { return e.model }

// IntGrid is an N×N array of integer decision variables with domain
// [1,n]. It exposes the indexing and slicing operations the variant
// compilers use to read rows, columns, diagonals and reversed sequences.
type IntGrid struct {
	n    int
	vars [][]*mk.FDVariable
}

// IntGrid2D builds an n×n array of integer variables with domain [1,n].
func (e *Engine) IntGrid2D(n int) *IntGrid {
	g := &IntGrid{n: n, vars: make([][]*mk.FDVariable, n)}
	for y := 0; y < n; y++ {
		g.vars[y] = e.model.IntVars(n, 1, n, fmt.Sprintf("cell%d_", y))
	}
	return g
}

// Shape returns (rows, cols).
func (g *IntGrid) Shape() (int, int) { return g.n, g.n }

// At returns the variable at (y,x).
func (g *IntGrid) At(y, x int) *mk.FDVariable { return g.vars[y][x] }

// Row returns row y left to right.
func (g *IntGrid) Row(y int) []*mk.FDVariable { return g.vars[y] }

// Col returns column x top to bottom.
func (g *IntGrid) Col(x int) []*mk.FDVariable {
	out := make([]*mk.FDVariable, g.n)
	for y := 0; y < g.n; y++ {
		out[y] = g.vars[y][x]
	}
	return out
}

// Select gathers the variables at the given positions, in order.
func (g *IntGrid) Select(cells [][2]int) []*mk.FDVariable {
	out := make([]*mk.FDVariable, len(cells))
	for i, c := range cells {
		out[i] = g.vars[c[0]][c[1]]
	}
	return out
}

// Reverse returns seq reversed; a convenience for compilers that need a
// sequence read from the opposite side (e.g. skyscrapers "down"/"right").
func Reverse(seq []*mk.FDVariable) []*mk.FDVariable {
	out := make([]*mk.FDVariable, len(seq))
	for i, v := range seq {
		out[len(seq)-1-i] = v
	}
	return out
}

// AddAnswerKeyInt records vars as integer answer keys. IrrefutableFacts
// does not consult this record; it reports per-value feasibility for
// every cell of the grid it is given, marked or not.
func (e *Engine) AddAnswerKeyInt(vars ...*mk.FDVariable) {
	e.intKeys = append(e.intKeys, vars...)
}

// AddAnswerKeyBool records vars as boolean answer keys; IrrefutableFacts
// does not consult this record either.
func (e *Engine) AddAnswerKeyBool(vars ...*mk.FDVariable) {
	e.boolKeys = append(e.boolKeys, vars...)
}

// AllDifferent posts an all-different constraint over vars.
func (e *Engine) AllDifferent(vars []*mk.FDVariable) {
	if err := e.model.AllDifferent(vars...); err != nil {
		panic(fmt.Sprintf("engine: AllDifferent: %v", err))
	}
}

// AddConstraint posts an arbitrary PropagationConstraint to the model.
// Used by the primitive builders and variant compilers for constraints
// this facade does not otherwise name (Inequality, LinearSum, Count,
// ValueEqualsReified, Relation).
func (e *Engine) AddConstraint(c mk.ModelConstraint) {
	e.model.AddConstraint(c)
}

// NewBoolVar creates a fresh boolean variable (domain {false=1,true=2}).
func (e *Engine) NewBoolVar() *mk.FDVariable {
	return e.model.NewVariable(mk.NewBitSetDomain(2))
}

// NewIntVar creates a fresh integer variable with domain [lo,hi].
func (e *Engine) NewIntVar(lo, hi int) *mk.FDVariable {
	return e.model.IntVar(lo, hi, "")
}

// Inequality posts x `kind` y, e.g. x != y or x < y.
func (e *Engine) Inequality(x, y *mk.FDVariable, kind mk.InequalityKind) {
	c, err := mk.NewInequality(x, y, kind)
	if err != nil {
		panic(fmt.Sprintf("engine: Inequality: %v", err))
	}
	e.model.AddConstraint(c)
}

// NotEqualConst posts v != k for a constant k, by way of a singleton
// helper variable bound to k.
func (e *Engine) NotEqualConst(v *mk.FDVariable, k int) {
	if k < 1 {
		// k is outside the variable's domain already; no constraint needed.
		return
	}
	konst := e.model.IntVar(k, k, "")
	e.Inequality(v, konst, mk.NotEqual)
}

// EqualConst posts v == k for a constant k, by way of a singleton helper
// variable bound to k and a pair of bounding inequalities.
func (e *Engine) EqualConst(v *mk.FDVariable, k int) {
	konst := e.model.IntVar(k, k, "")
	e.Inequality(v, konst, mk.LessEqual)
	e.Inequality(v, konst, mk.GreaterEqual)
}

// Arithmetic posts dst = src + offset.
func (e *Engine) Arithmetic(src, dst *mk.FDVariable, offset int) {
	c, err := mk.NewArithmetic(src, dst, offset)
	if err != nil {
		panic(fmt.Sprintf("engine: Arithmetic: %v", err))
	}
	e.model.AddConstraint(c)
}

// LinearSum posts Σ coeffs[i]*vars[i] = total.
func (e *Engine) LinearSum(vars []*mk.FDVariable, coeffs []int, total *mk.FDVariable) {
	if err := e.model.LinearSum(vars, coeffs, total); err != nil {
		panic(fmt.Sprintf("engine: LinearSum: %v", err))
	}
}

// Count posts countVar = |{v in vars : v == target}|, encoded with the
// library's +1 offset (countVar ranges over [1, len(vars)+1]).
func (e *Engine) Count(vars []*mk.FDVariable, target int, countVar *mk.FDVariable) {
	if _, err := mk.NewCount(e.model, vars, target, countVar); err != nil {
		panic(fmt.Sprintf("engine: Count: %v", err))
	}
}

// ValueEqualsReified posts boolVar = (v == target), using the 1=false,
// 2=true domain convention.
func (e *Engine) ValueEqualsReified(v *mk.FDVariable, target int, boolVar *mk.FDVariable) {
	c, err := mk.NewValueEqualsReified(v, target, boolVar)
	if err != nil {
		panic(fmt.Sprintf("engine: ValueEqualsReified: %v", err))
	}
	e.model.AddConstraint(c)
}

// EqualityReified posts boolVar = (x == y).
func (e *Engine) EqualityReified(x, y, boolVar *mk.FDVariable) {
	c, err := mk.NewEqualityReified(x, y, boolVar)
	if err != nil {
		panic(fmt.Sprintf("engine: EqualityReified: %v", err))
	}
	e.model.AddConstraint(c)
}
