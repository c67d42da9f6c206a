package growth

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roadnet/lattice"
)

// Strategy names accepted by ByName.
const (
	NameWeighted = "weighted"
	NameMaze     = "maze"
)

// Grow resolves opts and runs strategy on l.
//
// Returns ErrNilLattice or ErrNilStrategy; running out of room is not an
// error and shows up in Stats instead.
func Grow(l *lattice.Lattice, strategy Strategy, opts ...Option) (Stats, error) {
	if l == nil {
		return Stats{}, ErrNilLattice
	}
	if strategy == nil {
		return Stats{}, ErrNilStrategy
	}
	cfg := resolve(opts)
	st := strategy(l, &cfg)
	cfg.Logger.Debug("growth finished",
		"strategy", st.Strategy,
		"iterations", st.Iterations,
		"links", st.Links,
		"jumps", st.Jumps,
		"abandoned", st.Abandoned,
		"markers", st.Markers,
	)
	return st, nil
}

// ByName maps "weighted" and "maze" to their strategies.
func ByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameWeighted, "":
		return WeightedWalk, nil
	case NameMaze:
		return MazeWalk, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}
