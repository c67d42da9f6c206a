package growth

import "errors"

var (
	// ErrNilLattice indicates Grow was called without a lattice.
	ErrNilLattice = errors.New("growth: lattice is nil")
	// ErrNilStrategy indicates Grow was called without a strategy.
	ErrNilStrategy = errors.New("growth: strategy is nil")
	// ErrUnknownStrategy indicates a strategy name that ByName does not know.
	ErrUnknownStrategy = errors.New("growth: unknown strategy")
)
