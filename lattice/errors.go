package lattice

import "errors"

var (
	// ErrInvalidCellLength indicates a cell length that is zero, negative or not finite.
	ErrInvalidCellLength = errors.New("lattice: cell length must be positive and finite")
	// ErrExtentsTooSmall indicates a terrain extent shorter than two cells on some axis.
	ErrExtentsTooSmall = errors.New("lattice: extents must span at least two cells on each axis")
	// ErrLatticeTooLarge indicates an index space above MaxNodes nodes.
	ErrLatticeTooLarge = errors.New("lattice: index space exceeds MaxNodes")
	// ErrIndexOutOfRange indicates an arena index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("lattice: index out of range")
	// ErrLinkRejected indicates a link that would break the simple-path forest.
	ErrLinkRejected = errors.New("lattice: link rejected")
	// ErrAsymmetricLink indicates a Next/Prev pair that does not point back at each other.
	ErrAsymmetricLink = errors.New("lattice: next/prev links are not symmetric")
	// ErrCycle indicates the successor links contain a cycle.
	ErrCycle = errors.New("lattice: successor links contain a cycle")
)
