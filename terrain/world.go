package terrain

import (
	"math"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/pathsearch"
)

// bisectSteps refines a ground crossing found by ray marching.
const bisectSteps = 24

// Box is an axis-aligned obstacle.
type Box struct {
	Min, Max geom.Vec3
	Walkable bool // a walkable box (a bridge deck, a ramp) does not block moves
}

// Contains reports whether p lies inside b, faces included.
func (b Box) Contains(p geom.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersect returns the distance along the unit direction d at which the
// ray from o enters b, if that happens within maxDist. A ray starting
// inside b hits at distance 0.
func (b Box) Intersect(o, d geom.Vec3, maxDist float64) (float64, bool) {
	tmin, tmax := 0.0, maxDist
	axes := [3][4]float64{
		{o.X, d.X, b.Min.X, b.Max.X},
		{o.Y, d.Y, b.Min.Y, b.Max.Y},
		{o.Z, d.Z, b.Min.Z, b.Max.Z},
	}
	for _, a := range axes {
		oc, dc, lo, hi := a[0], a[1], a[2], a[3]
		if dc == 0 {
			if oc < lo || oc > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-oc)/dc, (hi-oc)/dc
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// World is a heightfield ground plus box obstacles. It implements
// pathsearch.World: the ground is walkable, boxes carry their own flag.
type World struct {
	Ground    *Heightfield
	Obstacles []Box
}

// NewWorld returns a world over ground with the given obstacles.
func NewWorld(ground *Heightfield, obstacles ...Box) *World {
	return &World{Ground: ground, Obstacles: obstacles}
}

// AddObstacle appends b.
func (w *World) AddObstacle(b Box) { w.Obstacles = append(w.Obstacles, b) }

// CastQuery returns the nearest ground or obstacle hit along direction
// from origin within maxDistance.
func (w *World) CastQuery(origin, direction geom.Vec3, maxDistance float64) pathsearch.Hit {
	d := direction.Normalize()
	if d == geom.Zero || !(maxDistance >= 0) {
		return pathsearch.Hit{}
	}

	best := pathsearch.Hit{Distance: math.Inf(1)}
	if t, ok := w.castGround(origin, d, maxDistance); ok {
		best = pathsearch.Hit{Hit: true, Point: origin.Add(d.Scale(t)), Distance: t, Walkable: true}
	}
	for _, b := range w.Obstacles {
		if t, ok := b.Intersect(origin, d, maxDistance); ok && t < best.Distance {
			best = pathsearch.Hit{Hit: true, Point: origin.Add(d.Scale(t)), Distance: t, Walkable: b.Walkable}
		}
	}
	if !best.Hit {
		return pathsearch.Hit{}
	}
	return best
}

// castGround finds where the ray crosses from above the ground to below it.
// A ray starting below the ground surface does not hit it.
func (w *World) castGround(o, d geom.Vec3, maxDist float64) (float64, bool) {
	g := w.Ground
	if g == nil {
		return 0, false
	}

	// Straight down: one sample.
	if d.X == 0 && d.Z == 0 && d.Y < 0 {
		if !g.Contains(o) {
			return 0, false
		}
		gh := g.SampleGroundHeight(o)
		if o.Y < gh {
			return 0, false
		}
		t := (o.Y - gh) / -d.Y
		return t, t <= maxDist
	}

	above := func(p geom.Vec3) bool { return !g.Contains(p) || p.Y >= g.SampleGroundHeight(p) }
	if !above(o) {
		return 0, false
	}
	dt := math.Min(g.cellSize()/4, maxDist)
	if !(dt > 0) {
		return 0, false
	}
	prev := 0.0
	for t := dt; ; t += dt {
		if t > maxDist {
			t = maxDist
		}
		if !above(o.Add(d.Scale(t))) {
			lo, hi := prev, t
			for i := 0; i < bisectSteps; i++ {
				mid := (lo + hi) / 2
				if above(o.Add(d.Scale(mid))) {
					lo = mid
				} else {
					hi = mid
				}
			}
			return hi, true
		}
		if t >= maxDist {
			return 0, false
		}
		prev = t
	}
}
