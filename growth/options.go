// SPDX-License-Identifier: MIT
// Package: roadnet/growth
//
// options.go: functional options for Grow.
//
// Option constructors validate and panic on meaningless input; Grow itself
// never panics. Seeding is explicit through WithSeed or WithRand.

package growth

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/roadnet/ctxlog"
	"github.com/katalvlaran/roadnet/geom"
)

// Defaults used by DefaultConfig.
const (
	DefaultMaxIterations = 1000
	DefaultMazeReserve   = 100
	DefaultGravityBias   = 3.0
	DefaultAngleBias     = 5.0
)

// DefaultAttractor is the weighting centre used when none is configured.
var DefaultAttractor = geom.V(500, 0, 500)

// Option customises a growth pass.
type Option func(*Config)

// DefaultConfig returns the deterministic defaults. Rand stays nil until
// Grow resolves it (a time-seeded source when no option provided one).
func DefaultConfig() Config {
	return Config{
		Attractor:     DefaultAttractor,
		GravityBias:   DefaultGravityBias,
		AngleBias:     DefaultAngleBias,
		MaxIterations: DefaultMaxIterations,
		MazeReserve:   DefaultMazeReserve,
		Logger:        ctxlog.Discard(),
	}
}

// WithSeed uses a new *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic("growth: WithRand(nil)")
	}
	return func(c *Config) {
		c.Rand = r
	}
}

// WithAttractor sets the point the weighted walk is drawn towards.
func WithAttractor(p geom.Vec3) Option {
	if !p.IsFinite() {
		panic("growth: WithAttractor: non-finite point")
	}
	return func(c *Config) {
		c.Attractor = p
	}
}

// WithBias sets the gravity (distance) and angle sigmoid biases.
func WithBias(gravity, angle float64) Option {
	return func(c *Config) {
		c.GravityBias = gravity
		c.AngleBias = angle
	}
}

// WithMaxIterations caps the number of WeightedWalk steps. MazeWalk is
// bounded by its space budget instead. Panics on n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("growth: WithMaxIterations must be positive")
	}
	return func(c *Config) {
		c.MaxIterations = n
	}
}

// WithMazeReserve sets the space budget at which MazeWalk stops. Panics on n < 0.
func WithMazeReserve(n int) Option {
	if n < 0 {
		panic("growth: WithMazeReserve must be non-negative")
	}
	return func(c *Config) {
		c.MazeReserve = n
	}
}

// WithPlacer receives the markers MazeWalk emits. Panics on nil.
func WithPlacer(p Placer) Option {
	if p == nil {
		panic("growth: WithPlacer(nil)")
	}
	return func(c *Config) {
		c.Placer = p
	}
}

// WithLogger sets the logger for completion stats. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("growth: WithLogger(nil)")
	}
	return func(c *Config) {
		c.Logger = l
	}
}

// resolve applies opts in order over DefaultConfig and fills the RNG.
func resolve(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}
