package terrain

import "errors"

var (
	// ErrBadExtents indicates a width or depth that is not positive and finite.
	ErrBadExtents = errors.New("terrain: extents must be positive and finite")
	// ErrBadResolution indicates fewer than two height samples per axis.
	ErrBadResolution = errors.New("terrain: resolution must be at least 2")
	// ErrHeightCount indicates a height slice whose length is not resolution².
	ErrHeightCount = errors.New("terrain: height count does not match resolution")
)
