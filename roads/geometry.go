package roads

import "github.com/katalvlaran/roadnet/geom"

// Boundary computes the outline of the segment a -> b for the given width.
//
// The offset is the ground-plane perpendicular of the direction scaled by
// width/2. The anchor is chosen by scanning the corners in order and taking
// a corner whenever its X or its Z is smaller than the current pick. This
// is not a lexicographic minimum and is kept as is for compatibility with
// existing layouts.
func Boundary(a, b geom.Vec3, width float64) Geometry {
	dir := b.Sub(a).Normalize()
	off := dir.Perp().Scale(width / 2)

	g := Geometry{
		Direction: dir,
		Offset:    off,
		Left:      a.Sub(off),
		Right:     a.Add(off),
		Corners:   [4]geom.Vec3{a.Sub(off), a.Add(off), b.Sub(off), b.Add(off)},
	}
	g.Anchor = g.Corners[0]
	for _, c := range g.Corners[1:] {
		if c.X < g.Anchor.X || c.Z < g.Anchor.Z {
			g.Anchor = c
		}
	}
	return g
}

// Points returns the points a bounds check must accept: both endpoints and
// the four corners.
func (r Road) Points() []geom.Vec3 {
	return []geom.Vec3{r.A, r.B, r.Corners[0], r.Corners[1], r.Corners[2], r.Corners[3]}
}

// Midpoint returns the centre of the segment.
func (r Road) Midpoint() geom.Vec3 { return geom.Lerp(r.A, r.B, 0.5) }
