package xform

import (
	"fmt"
	"math"
)

// Vec3 is a direction or a surface normal. Unlike [Point3], vectors ignore
// the translation part of a [Matrix].
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the vector ⟨x, y, z⟩.
func Vec(x, y, z float64) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

// Splat returns the vector's x, y and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float64 {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1 with the same direction as v,
// together with the magnitude v had before normalization. A zero vector is
// returned unchanged with a length of 0.
func (v Vec3) Normalize() (Vec3, float64) {
	l := v.Hypot()
	if l == 0 {
		return v, 0
	}
	return v.Div(l), l
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

// Mul returns v scaled by f.
func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

// Div returns v divided by f.
func (v Vec3) Div(f float64) Vec3 {
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with the signs of x, y and z flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Transform applies the linear part of m to v. Translation is ignored.
func (v Vec3) Transform(m Matrix) Vec3 {
	l := &m.Linear
	return Vec3{
		X: v.X*l[0][0] + v.Y*l[1][0] + v.Z*l[2][0],
		Y: v.X*l[0][1] + v.Y*l[1][1] + v.Z*l[2][1],
		Z: v.X*l[0][2] + v.Y*l[1][2] + v.Z*l[2][2],
	}
}

// TransformNormal transforms v as a surface normal and renormalizes the
// result.
//
// Normals are covariant: inv must be the inverse of the matrix that
// transforms points, and v is multiplied by the transpose of its linear
// part.
func (v Vec3) TransformNormal(inv Matrix) Vec3 {
	l := &inv.Linear
	out := Vec3{
		X: v.X*l[0][0] + v.Y*l[0][1] + v.Z*l[0][2],
		Y: v.X*l[1][0] + v.Y*l[1][1] + v.Z*l[1][2],
		Z: v.X*l[2][0] + v.Y*l[2][1] + v.Z*l[2][2],
	}
	out, _ = out.Normalize()
	return out
}
