package engine

import mk "github.com/gitrdm/gokanlogic/pkg/minikanren"

// SolverConfig carries the two pure performance knobs the compilation
// layer exposes. Neither changes the set of irrefutable facts produced;
// they only affect how quickly the underlying engine finds them.
type SolverConfig struct {
	// OptimizePolarity selects the engine's value-ordering heuristic.
	OptimizePolarity bool
	// ExplicitSetEncoding selects CompleteSet's encoding: when true, the
	// explicit per-cell-indicator + at-most-one encoding is used instead
	// of the implicit Count-based one.
	ExplicitSetEncoding bool
}

// DefaultSolverConfig returns the configuration used when callers don't
// care: ascending value order, implicit complete-set encoding.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{OptimizePolarity: false, ExplicitSetEncoding: false}
}

// toMiniKanren maps OptimizePolarity onto the engine's value-ordering
// heuristic. This is the only knob minikanren's SolverConfig exposes
// that corresponds to a "polarity" choice: ascending vs. descending
// value order changes which branch the search explores first without
// changing the final set of feasible values.
func (c SolverConfig) toMiniKanren() *mk.SolverConfig {
	cfg := mk.DefaultSolverConfig()
	if c.OptimizePolarity {
		cfg.ValueHeuristic = mk.ValueOrderDesc
	} else {
		cfg.ValueHeuristic = mk.ValueOrderAsc
	}
	return cfg
}
