package pathsearch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/roadnet/ctxlog"
	"github.com/katalvlaran/roadnet/geom"
)

// Sentinel errors returned by Search.
var (
	// ErrNilWorld indicates that no World was supplied.
	ErrNilWorld = errors.New("pathsearch: world is nil")

	// ErrBadStep indicates a step length that is zero, negative or not finite.
	ErrBadStep = errors.New("pathsearch: step must be positive and finite")

	// ErrBadLimit indicates a non-positive iteration or node cap, or a
	// negative goal radius, climb limit or ray length.
	ErrBadLimit = errors.New("pathsearch: limits must be positive")

	// ErrBadPoint indicates a start or goal with NaN or infinite components.
	ErrBadPoint = errors.New("pathsearch: start and goal must be finite")
)

// Hit is the answer to a cast query.
type Hit struct {
	Hit      bool      // something was hit within the distance
	Point    geom.Vec3 // contact point
	Distance float64   // distance from the origin to Point
	Walkable bool      // the surface hit may be walked on (terrain ground)
}

// World answers ray cast queries. Implementations must be safe to call
// repeatedly from a single goroutine and must not retain the arguments.
type World interface {
	CastQuery(origin, direction geom.Vec3, maxDistance float64) Hit
}

// WorldFunc adapts a function to World.
type WorldFunc func(origin, direction geom.Vec3, maxDistance float64) Hit

// CastQuery calls f.
func (f WorldFunc) CastQuery(origin, direction geom.Vec3, maxDistance float64) Hit {
	return f(origin, direction, maxDistance)
}

// NodeState is the lifecycle stage of a search node.
type NodeState int

const (
	// Open nodes wait in the frontier.
	Open NodeState = iota
	// Expanded nodes produced at least one child.
	Expanded
	// Dead nodes produced no children.
	Dead
)

// Node is one explored position. Parent is an index into the node arena,
// -1 for the root.
type Node struct {
	Pos       geom.Vec3
	Parent    int
	FromStart float64 // g: accumulated step cost
	ToGoal    float64 // h: straight-line distance to the goal
	Total     float64 // g + h
	State     NodeState
}

// Status reports how a search ended.
type Status int

const (
	// StatusFound means a node within the goal radius was reached.
	StatusFound Status = iota
	// StatusExhausted means the frontier ran empty.
	StatusExhausted
	// StatusIterationCap means MaxIterations expansions were spent.
	StatusIterationCap
	// StatusNodeCap means MaxNodes nodes were created.
	StatusNodeCap
	// StatusCancelled means the context was done.
	StatusCancelled
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	case StatusIterationCap:
		return "iteration_cap"
	case StatusNodeCap:
		return "node_cap"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the outcome of Search. Path is ordered goal-to-start and
// includes the start position; it is nil unless Status is StatusFound.
type Result struct {
	Status     Status
	Path       []geom.Vec3
	Cost       float64 // g of the reached node
	Iterations int
	Nodes      int
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Status == StatusFound }

// Forward returns a copy of Path ordered start-to-goal.
func (r Result) Forward() []geom.Vec3 {
	if r.Path == nil {
		return nil
	}
	out := make([]geom.Vec3, len(r.Path))
	for i, p := range r.Path {
		out[len(r.Path)-1-i] = p
	}
	return out
}

// Options configures Search.
//
//   - Step: length of every move along the six axis directions.
//   - MaxDistanceUp: a ground ray hit farther below than this stops expansion.
//   - GoalRadius: a node within this distance of the goal ends the search.
//   - MaxIterations: cap on expansions.
//   - MaxNodes: cap on created nodes.
//   - GroundRay: length of the downward ray.
type Options struct {
	Step          float64
	MaxDistanceUp float64
	GoalRadius    float64
	MaxIterations int
	MaxNodes      int
	GroundRay     float64
	Ctx           context.Context
	Logger        *slog.Logger
}

// Defaults used by DefaultOptions.
const (
	DefaultStep          = 5.0
	DefaultMaxDistanceUp = 3.0
	DefaultGoalRadius    = 2.0
	DefaultMaxIterations = 1_000_000
	DefaultMaxNodes      = 50_000
	DefaultGroundRay     = 10_000.0
)

// DefaultOptions returns the standard search parameters.
func DefaultOptions() Options {
	return Options{
		Step:          DefaultStep,
		MaxDistanceUp: DefaultMaxDistanceUp,
		GoalRadius:    DefaultGoalRadius,
		MaxIterations: DefaultMaxIterations,
		MaxNodes:      DefaultMaxNodes,
		GroundRay:     DefaultGroundRay,
		Ctx:           context.Background(),
		Logger:        ctxlog.Discard(),
	}
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithStep sets the move length. Validated by Search (ErrBadStep).
func WithStep(step float64) Option { return func(o *Options) { o.Step = step } }

// WithMaxDistanceUp sets how far above the ground a node may be expanded.
func WithMaxDistanceUp(d float64) Option { return func(o *Options) { o.MaxDistanceUp = d } }

// WithGoalRadius sets the success radius around the goal.
func WithGoalRadius(r float64) Option { return func(o *Options) { o.GoalRadius = r } }

// WithMaxIterations caps expansions. Validated by Search (ErrBadLimit).
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithMaxNodes caps created nodes. Validated by Search (ErrBadLimit).
func WithMaxNodes(n int) Option { return func(o *Options) { o.MaxNodes = n } }

// WithGroundRay sets the length of the downward ground ray.
func WithGroundRay(d float64) Option { return func(o *Options) { o.GroundRay = d } }

// WithContext enables cancellation, checked once per expansion. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("pathsearch: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithLogger sets the logger for the completion summary. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pathsearch: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
