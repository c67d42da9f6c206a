package growth

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roadnet/lattice"
)

// Maze walk tuning.
const (
	mazeMaxAttempts  = 10  // start attempts per step
	mazeStopAttempts = 5   // a step needing this many attempts ends the walk
	mazeBorder       = 2   // keep-out distance from the index-space edges
	markerMinScale   = 0.5 // marker scale range [min, max)
	markerMaxScale   = 2.5
)

// mazeRunner holds the mutable state of one MazeWalk pass.
type mazeRunner struct {
	l   *lattice.Lattice
	cfg *Config
	st  Stats

	free     mapset.Set[int] // unvisited cells without a successor
	freeList []int           // draw order for free; stale entries are dropped lazily
	options  [][2]int
}

// MazeWalk grows links with a constrained four-direction walk.
//
// A space budget of Cols×Rows×2 is spent one step at a time until it falls
// to cfg.MazeReserve. Each step picks a direction for the current node: the
// existing successor direction if it has one, otherwise any of the four axis
// directions except the way it came, directions ending within two cells of
// the index-space edge and links the lattice refuses. A node without options
// is abandoned and a random free cell tried instead, up to ten times; a step
// that needed five or more attempts ends the walk. Afterwards every terminal
// node (missing a successor or a predecessor) gets a tree marker.
//
// cfg.MaxIterations does not apply: the budget and the attempt limit bound
// the walk on their own.
func MazeWalk(l *lattice.Lattice, cfg *Config) Stats {
	r := &mazeRunner{
		l:    l,
		cfg:  cfg,
		st:   Stats{Strategy: NameMaze},
		free: mapset.New[int](),
	}
	r.freeList = l.ActiveIndices()
	for _, i := range r.freeList {
		r.free.Put(i)
	}

	r.walk()
	r.placeMarkers()

	return r.st
}

func (r *mazeRunner) walk() {
	spaces := r.l.Cols * r.l.Rows * 2
	cur := lattice.None
	attempts := 0

	for spaces > r.cfg.MazeReserve && attempts < mazeStopAttempts {
		r.st.Iterations++
		found := false
		follow := false
		for attempts = 0; !found && attempts < mazeMaxAttempts; {
			attempts++
			if cur == lattice.None {
				cur = r.pickFree()
				if cur == lattice.None {
					r.st.Exhausted = true
					return
				}
			}
			follow = r.collectOptions(cur)
			if len(r.options) == 0 {
				r.st.Abandoned++
				cur = lattice.None
				continue
			}
			found = true
		}
		if !found {
			cur = lattice.None
			continue
		}

		d := r.options[r.cfg.Rand.Intn(len(r.options))]
		next, _ := r.l.Neighbor(cur, d[0], d[1])
		if follow {
			r.st.Followed++
		} else if err := r.l.Link(cur, next); err == nil {
			r.st.Links++
		}
		r.free.Remove(cur)
		r.free.Remove(next)
		spaces--
		cur = next
	}
}

// collectOptions fills r.options for cur and reports whether the only
// option follows an existing successor.
func (r *mazeRunner) collectOptions(cur int) (follow bool) {
	r.options = r.options[:0]
	n := r.l.Node(cur)

	if n.HasNext() {
		nx := r.l.Node(n.Next)
		d := [2]int{nx.X - n.X, nx.Y - n.Y}
		if r.insideBorder(n.X+d[0], n.Y+d[1]) {
			r.options = append(r.options, d)
		}
		return true
	}

	var back [2]int
	hasBack := n.HasPrev()
	if hasBack {
		pv := r.l.Node(n.Prev)
		back = [2]int{pv.X - n.X, pv.Y - n.Y}
	}
	for _, d := range lattice.Offsets(lattice.Conn4) {
		if hasBack && d == back {
			continue
		}
		x, y := n.X+d[0], n.Y+d[1]
		if !r.insideBorder(x, y) || !r.l.CanLink(cur, r.l.Index(x, y)) {
			continue
		}
		r.options = append(r.options, d)
	}
	return false
}

// insideBorder reports whether (x, y) keeps clear of the outer two cells.
func (r *mazeRunner) insideBorder(x, y int) bool {
	return x < r.l.Cols-mazeBorder && y < r.l.Rows-mazeBorder && x > mazeBorder-1 && y > mazeBorder-1
}

// pickFree draws a random free cell, or lattice.None when none is left.
func (r *mazeRunner) pickFree() int {
	for len(r.freeList) > 0 {
		k := r.cfg.Rand.Intn(len(r.freeList))
		i := r.freeList[k]
		if r.free.Has(i) && !r.l.Node(i).HasNext() {
			r.free.Remove(i)
			return i
		}
		last := len(r.freeList) - 1
		r.freeList[k] = r.freeList[last]
		r.freeList = r.freeList[:last]
	}
	return lattice.None
}

func (r *mazeRunner) placeMarkers() {
	if r.cfg.Placer == nil {
		return
	}
	for _, i := range r.l.Terminals() {
		r.cfg.Placer.PlaceMarker(Marker{
			Kind:     MarkerTree,
			Index:    i,
			Position: r.l.Node(i).Position,
			Scale:    RandRange(r.cfg.Rand, markerMinScale, markerMaxScale),
		})
		r.st.Markers++
	}
}
