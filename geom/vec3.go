// SPDX-License-Identifier: MIT
// Package: roadnet/geom

package geom

import (
	"fmt"
	"math"
)

// normalizeEpsilon is the magnitude below which Normalize yields the zero vector.
const normalizeEpsilon = 1e-5

// angleEpsilon guards Angle against degenerate (near zero) inputs.
const angleEpsilon = 1e-15

// Vec3 is a float64 3D vector. Y is the vertical axis; the ground plane is X/Z.
type Vec3 struct {
	X, Y, Z float64
}

// Common axis vectors.
var (
	Zero    = Vec3{}
	Right   = Vec3{1, 0, 0}
	Left    = Vec3{-1, 0, 0}
	Up      = Vec3{0, 1, 0}
	Down    = Vec3{0, -1, 0}
	Forward = Vec3{0, 0, 1}
	Back    = Vec3{0, 0, -1}
)

// V returns Vec3{x, y, z}.
func V(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar product.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LengthSq returns the squared magnitude.
func (v Vec3) LengthSq() float64 { return v.Dot(v) }

// Length returns the Euclidean magnitude.
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSq()) }

// Distance returns |v - o|.
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Length() }

// Normalize returns v scaled to unit length, or Zero when |v| is below 1e-5.
func (v Vec3) Normalize() Vec3 {
	mag := v.Length()
	if mag <= normalizeEpsilon {
		return Zero
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Abs returns the component-wise absolute value.
func (v Vec3) Abs() Vec3 { return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// Perp returns the ground-plane perpendicular (z, 0, -x) of v.
// For a unit direction on the X/Z plane the result is also unit length.
func (v Vec3) Perp() Vec3 { return Vec3{v.Z, 0, -v.X} }

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 { return Vec3{v.X, 0, v.Z} }

// WithY returns v with its vertical component replaced.
func (v Vec3) WithY(y float64) Vec3 { return Vec3{v.X, y, v.Z} }

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// String formats v as "(x, y, z)".
func (v Vec3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }

// AngleRad returns the unsigned angle between a and b in radians, in [0, π].
// Degenerate inputs yield 0.
func AngleRad(a, b Vec3) float64 {
	den := math.Sqrt(a.LengthSq() * b.LengthSq())
	if den < angleEpsilon {
		return 0
	}
	c := a.Dot(b) / den
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// Angle returns the unsigned angle between a and b in degrees, in [0, 180].
func Angle(a, b Vec3) float64 { return AngleRad(a, b) * 180 / math.Pi }

// Lerp interpolates linearly between a and b by t.
func Lerp(a, b Vec3, t float64) Vec3 { return a.Add(b.Sub(a).Scale(t)) }
