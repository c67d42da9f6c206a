// SPDX-License-Identifier: MIT
// Package: roadnet/mapgen

package mapgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/roadnet/ctxlog"
	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/growth"
	"github.com/katalvlaran/roadnet/lattice"
	"github.com/katalvlaran/roadnet/roads"
)

var (
	// ErrNilTerrain indicates NewGenerator was called without a terrain.
	ErrNilTerrain = errors.New("mapgen: terrain is nil")
	// ErrNoMap indicates Regenerate was called before any Generate.
	ErrNoMap = errors.New("mapgen: no map generated yet")
)

// Terrain is what generation needs from the ground.
type Terrain interface {
	Extents() (width, depth float64)
	SampleGroundHeight(p geom.Vec3) float64
	InBounds(points []geom.Vec3) bool
}

// Painter stamps a network onto the terrain texture, or removes it when
// reset is set.
type Painter interface {
	PaintNetwork(n *roads.Network, reset bool) int
}

// Map is the result of one generation pass.
type Map struct {
	Config    MapConfig
	Seed      int64 // seed actually used
	Lattice   *lattice.Lattice
	Network   *roads.Network
	Growth    growth.Stats
	Markers   []growth.Marker
	Buildings int
	Painted   int
}

// Option customises a Generator.
type Option func(*Generator)

// WithPainter paints accepted roads and unpaints them on regeneration.
func WithPainter(p Painter) Option {
	if p == nil {
		panic("mapgen: WithPainter(nil)")
	}
	return func(g *Generator) { g.painter = p }
}

// WithMarkerPlacer forwards growth markers, lifted onto the ground.
func WithMarkerPlacer(p growth.Placer) Option {
	if p == nil {
		panic("mapgen: WithMarkerPlacer(nil)")
	}
	return func(g *Generator) { g.markers = p }
}

// WithBuildingPlacer enables building placement along accepted roads.
func WithBuildingPlacer(p roads.BuildingPlacer) Option {
	if p == nil {
		panic("mapgen: WithBuildingPlacer(nil)")
	}
	return func(g *Generator) { g.buildings = p }
}

// WithLogger overrides the logger taken from the context.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mapgen: WithLogger(nil)")
	}
	return func(g *Generator) { g.logger = l }
}

// Generator runs generation passes over one terrain and remembers the last
// map so it can be replaced. Methods are safe for concurrent use; passes
// are serialised.
type Generator struct {
	mu        sync.Mutex
	terrain   Terrain
	painter   Painter
	markers   growth.Placer
	buildings roads.BuildingPlacer
	logger    *slog.Logger
	current   *Map
}

// NewGenerator returns a Generator over t.
func NewGenerator(t Terrain, opts ...Option) (*Generator, error) {
	if t == nil {
		return nil, ErrNilTerrain
	}
	g := &Generator{terrain: t}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Current returns the last generated map, or nil.
func (g *Generator) Current() *Map {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Generate builds a new map from cfg, replacing the current one. The
// previous network is unpainted first. A configuration the terrain cannot
// hold fails with ErrInvalidConfig and leaves the current map in place.
//
// Phases: lattice from the terrain extents, growth with the configured
// strategy, road assembly gated by the terrain bounds, painting, then
// building placement. Only invalid configuration or a cancelled context
// fail; a sparse network is a valid result.
func (g *Generator) Generate(ctx context.Context, cfg MapConfig) (*Map, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generate(ctx, cfg)
}

// Regenerate repeats the last pass with the same configuration and a new
// seed unless the configuration pinned one.
func (g *Generator) Regenerate(ctx context.Context) (*Map, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return nil, ErrNoMap
	}
	return g.generate(ctx, g.current.Config)
}

// Clear unpaints and drops the current map.
func (g *Generator) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unpaint()
	g.current = nil
}

func (g *Generator) unpaint() {
	if g.current != nil && g.painter != nil {
		g.painter.PaintNetwork(g.current.Network, true)
	}
}

func (g *Generator) generate(ctx context.Context, cfg MapConfig) (*Map, error) {
	logger := g.logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1) Lattice, strategy and assembler. Anything that can still reject
	// the configuration runs before the current map is touched.
	w, d := g.terrain.Extents()
	l, err := lattice.New(w, d, cfg.CellLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	strategy, err := growth.ByName(cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	as, err := roads.NewAssembler(cfg.CellWidth, g.terrain.InBounds, roads.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	g.unpaint()
	g.current = nil

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	m := &Map{Config: cfg, Seed: seed, Lattice: l}

	// 2) Growth
	st, err := growth.Grow(l, strategy,
		growth.WithRand(rng),
		growth.WithAttractor(cfg.SeedPoint),
		growth.WithBias(cfg.GravityWeight, cfg.AngleWeight),
		growth.WithMaxIterations(cfg.MaxIterations),
		growth.WithPlacer(growth.PlacerFunc(func(mk growth.Marker) {
			mk.Position = mk.Position.WithY(g.terrain.SampleGroundHeight(mk.Position))
			m.Markers = append(m.Markers, mk)
			if g.markers != nil {
				g.markers.PlaceMarker(mk)
			}
		})),
		growth.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}
	m.Growth = st
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3) Roads
	if m.Network, err = as.Assemble(l); err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}

	// 4) Paint
	if g.painter != nil {
		m.Painted = g.painter.PaintNetwork(m.Network, false)
	}

	// 5) Buildings
	if g.buildings != nil {
		themed := themedPlacer{theme: cfg.Theme, inner: g.buildings}
		if m.Buildings, err = roads.Decorate(m.Network, themed, cfg.Density, cfg.Uniformity, rng, g.terrain.SampleGroundHeight); err != nil {
			return nil, fmt.Errorf("mapgen: %w", err)
		}
	}

	g.current = m
	logger.Info("map generated",
		"strategy", st.Strategy,
		"seed", seed,
		"lattice", fmt.Sprintf("%dx%d", l.ActiveCols, l.ActiveRows),
		"links", l.LinkCount(),
		"roads", m.Network.Len(),
		"rejected", m.Network.Rejected,
		"buildings", m.Buildings,
		"markers", len(m.Markers),
	)
	return m, nil
}

// themedPlacer stamps the map theme onto every slot.
type themedPlacer struct {
	theme string
	inner roads.BuildingPlacer
}

func (p themedPlacer) PlaceBuilding(slot roads.BuildingSlot) (roads.BuildingRef, bool) {
	slot.Theme = p.theme
	return p.inner.PlaceBuilding(slot)
}
