// SPDX-License-Identifier: MIT
// Package: roadnet/roads

package roads

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/roadnet/ctxlog"
	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/lattice"
)

// Options configures an Assembler.
type Options struct {
	Logger *slog.Logger
}

// Option customises an Assembler.
type Option func(*Options)

// WithLogger sets the logger used for per-assembly summaries. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("roads: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// Assembler turns lattice links into roads of a fixed width.
type Assembler struct {
	width    float64
	inBounds BoundsFunc
	opts     Options
}

// NewAssembler returns an Assembler for roads of the given width. A nil
// inBounds accepts every segment.
// Returns ErrInvalidWidth (wrapped) for width <= 0 or non-finite width.
func NewAssembler(width float64, inBounds BoundsFunc, opts ...Option) (*Assembler, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("NewAssembler(%g): %w", width, ErrInvalidWidth)
	}
	o := Options{Logger: ctxlog.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Assembler{width: width, inBounds: inBounds, opts: o}, nil
}

// NewNetwork returns an empty network for this assembler's width.
func (as *Assembler) NewNetwork() *Network {
	return &Network{First: None, Last: None, Width: as.width}
}

// Assemble walks every chain of l from its head and appends one road per
// link, in chain order. Segments failing the bounds check are dropped and
// counted in Network.Rejected.
// Complexity: O(Len()) plus one bounds check per link.
func (as *Assembler) Assemble(l *lattice.Lattice) (*Network, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	n := as.NewNetwork()
	for _, e := range l.Edges() {
		as.appendRoad(n, l.Node(e[0]).Position, l.Node(e[1]).Position, e[0], e[1])
	}
	as.opts.Logger.Debug("roads assembled",
		"links", l.LinkCount(),
		"roads", len(n.Roads),
		"rejected", n.Rejected,
	)
	return n, nil
}

// Append adds the free segment a -> b to n. ok is false when the segment
// is degenerate or out of bounds.
func (as *Assembler) Append(n *Network, a, b geom.Vec3) (id int, ok bool) {
	return as.appendRoad(n, a, b, lattice.None, lattice.None)
}

func (as *Assembler) appendRoad(n *Network, a, b geom.Vec3, from, to int) (int, bool) {
	length := a.Distance(b)
	if !(length > 0) || !a.IsFinite() || !b.IsFinite() {
		n.Rejected++
		return None, false
	}
	r := Road{
		ID:       len(n.Roads),
		From:     from,
		To:       to,
		A:        a,
		B:        b,
		Width:    as.width,
		Length:   length,
		Geometry: Boundary(a, b, as.width),
		Prev:     n.Last,
		Next:     None,
	}
	if as.inBounds != nil && !as.inBounds(r.Points()) {
		n.Rejected++
		return None, false
	}
	n.Roads = append(n.Roads, r)
	if n.Last != None {
		n.Roads[n.Last].Next = r.ID
	} else {
		n.First = r.ID
	}
	n.Last = r.ID
	return r.ID, true
}
