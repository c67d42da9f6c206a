// SPDX-License-Identifier: MIT
// Package: roadnet/pathsearch

package pathsearch

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roadnet/geom"
)

// directions are the six axis moves in expansion order.
var directions = [6]geom.Vec3{geom.Right, geom.Left, geom.Forward, geom.Back, geom.Up, geom.Down}

// Search looks for a path from start to goal through world.
//
// Returns:
//
//   - Result with Status StatusFound and Path (goal-to-start, start
//     included) when a node within GoalRadius is expanded.
//   - Result with another Status and a nil Path when a cap is hit, the
//     frontier empties or the context is done. This is not an error.
//   - err only for invalid input: ErrNilWorld, ErrBadPoint, ErrBadStep,
//     ErrBadLimit.
//
// Complexity: each expansion scans the frontier linearly, so
// O(I×F) time for I expansions over a frontier of size F, and O(N) memory
// for N created nodes.
func Search(world World, start, goal geom.Vec3, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if world == nil {
		return Result{}, ErrNilWorld
	}
	if !start.IsFinite() || !goal.IsFinite() {
		return Result{}, fmt.Errorf("start %v, goal %v: %w", start, goal, ErrBadPoint)
	}
	if !(cfg.Step > 0) || math.IsInf(cfg.Step, 0) {
		return Result{}, fmt.Errorf("step %g: %w", cfg.Step, ErrBadStep)
	}
	if cfg.MaxIterations <= 0 || cfg.MaxNodes <= 0 ||
		!(cfg.GoalRadius >= 0) || !(cfg.MaxDistanceUp >= 0) || !(cfg.GroundRay >= 0) {
		return Result{}, ErrBadLimit
	}

	// 2) Run
	r := &runner{
		world: world,
		opts:  cfg,
		goal:  goal,
		seen:  mapset.New[geom.Vec3](),
	}
	r.init(start)
	status, reached := r.process()

	// 3) Collect
	res := Result{
		Status:     status,
		Iterations: r.iterations,
		Nodes:      len(r.nodes),
	}
	if status == StatusFound {
		res.Path = r.trace(reached)
		res.Cost = r.nodes[reached].FromStart
	}
	cfg.Logger.Debug("path search finished",
		"status", status.String(),
		"iterations", res.Iterations,
		"nodes", res.Nodes,
		"path_len", len(res.Path),
	)
	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	world World
	opts  Options
	goal  geom.Vec3

	// nodes is the arena and never shrinks; open is the frontier in creation order.
	nodes []Node
	open  []int

	// seen holds every position ever created.
	seen       mapset.Set[geom.Vec3]
	iterations int
}

// init creates the root node and puts it in the frontier.
func (r *runner) init(start geom.Vec3) {
	h := start.Distance(r.goal)
	r.nodes = append(r.nodes, Node{Pos: start, Parent: -1, ToGoal: h, Total: h, State: Open})
	r.open = append(r.open, 0)
	r.seen.Put(start)
}

// process is the main loop. It returns the final status and, on success,
// the arena index of the reached node.
func (r *runner) process() (Status, int) {
	done := r.opts.Ctx.Done()
	for {
		// 1) Stop conditions
		select {
		case <-done:
			return StatusCancelled, -1
		default:
		}
		if r.iterations >= r.opts.MaxIterations {
			return StatusIterationCap, -1
		}
		if len(r.nodes) >= r.opts.MaxNodes {
			return StatusNodeCap, -1
		}
		if len(r.open) == 0 {
			return StatusExhausted, -1
		}
		r.iterations++

		// 2) Take the cheapest open node; the earliest wins ties.
		k := r.cheapest()
		cur := r.open[k]
		r.open = append(r.open[:k], r.open[k+1:]...)

		// 3) Goal test
		if r.nodes[cur].ToGoal <= r.opts.GoalRadius {
			r.nodes[cur].State = Expanded
			return StatusFound, cur
		}

		// 4) Expand
		if r.expand(cur) == 0 {
			r.nodes[cur].State = Dead
		} else {
			r.nodes[cur].State = Expanded
		}
	}
}

// cheapest returns the frontier position of the minimum Total, strict <.
func (r *runner) cheapest() int {
	best := 0
	bestTotal := r.nodes[r.open[0]].Total
	for k := 1; k < len(r.open); k++ {
		if t := r.nodes[r.open[k]].Total; t < bestTotal {
			best, bestTotal = k, t
		}
	}
	return best
}

// expand creates the accepted children of cur and returns how many there were.
func (r *runner) expand(cur int) int {
	parent := r.nodes[cur]

	// A node hanging too far above the ground cannot move at all.
	if g := r.world.CastQuery(parent.Pos, geom.Down, r.opts.GroundRay); g.Hit && g.Distance > r.opts.MaxDistanceUp {
		return 0
	}

	added := 0
	for _, d := range directions {
		if len(r.nodes) >= r.opts.MaxNodes {
			break
		}
		pos := parent.Pos.Add(d.Scale(r.opts.Step))
		if r.seen.Has(pos) {
			continue
		}
		if h := r.world.CastQuery(parent.Pos, d, r.opts.Step); h.Hit && !h.Walkable {
			continue
		}
		g := parent.FromStart + r.opts.Step
		h := pos.Distance(r.goal)
		r.nodes = append(r.nodes, Node{Pos: pos, Parent: cur, FromStart: g, ToGoal: h, Total: g + h, State: Open})
		r.open = append(r.open, len(r.nodes)-1)
		r.seen.Put(pos)
		added++
	}
	return added
}

// trace follows parent links from i back to the root.
func (r *runner) trace(i int) []geom.Vec3 {
	var path []geom.Vec3
	for steps := 0; i != -1 && steps <= len(r.nodes); steps++ {
		path = append(path, r.nodes[i].Pos)
		i = r.nodes[i].Parent
	}
	return path
}
