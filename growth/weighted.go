package growth

import (
	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/lattice"
	"github.com/katalvlaran/roadnet/weighting"
)

// WeightedWalk grows links by an attractor-weighted random walk.
//
// The walk starts at lattice index (0, 0). Each step gathers the up to eight
// neighbours the lattice would accept a link to, weights them with
// weighting.EdgeWeight against cfg.Attractor, draws one and links to it. A
// node without candidates makes the walk jump to a uniformly random active
// cell. The walk ends after cfg.MaxIterations steps.
func WeightedWalk(l *lattice.Lattice, cfg *Config) Stats {
	st := Stats{Strategy: NameWeighted}
	if l.ActiveCols == 0 || l.ActiveRows == 0 {
		return st
	}

	offsets := lattice.Offsets(lattice.Conn8)
	cands := make([]int, 0, len(offsets))
	pos := make([]geom.Vec3, 0, len(offsets))

	cur := l.Index(0, 0)
	for st.Iterations < cfg.MaxIterations {
		st.Iterations++

		cands, pos = cands[:0], pos[:0]
		for _, off := range offsets {
			j, ok := l.Neighbor(cur, off[0], off[1])
			if !ok || !l.CanLink(cur, j) {
				continue
			}
			cands = append(cands, j)
			pos = append(pos, l.Node(j).Position)
		}

		if len(cands) == 0 {
			cur = l.Index(cfg.Rand.Intn(l.ActiveCols), cfg.Rand.Intn(l.ActiveRows))
			st.Jumps++
			continue
		}

		k := weighting.Pick(l.Node(cur).Position, pos, cfg.Attractor, cfg.GravityBias, cfg.AngleBias, cfg.Rand.Float64())
		next := cands[k]
		if err := l.Link(cur, next); err == nil {
			st.Links++
		}
		cur = next
	}

	return st
}
