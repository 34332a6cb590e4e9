package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Conversions between this package's row-vector convention and mgl64's
// column-vector, column-major convention. mgl64 matrices are the transpose
// of ours.

// Mgl converts v to an mgl64 vector.
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Vec3FromMgl converts an mgl64 vector.
func Vec3FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Linear3 returns the linear part of m as an mgl64 matrix acting on column
// vectors.
func (m Matrix) Linear3() mgl64.Mat3 {
	var out mgl64.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Set(r, c, m.Linear[c][r])
		}
	}
	return out
}

// Mat4 returns m as a homogeneous mgl64 matrix acting on column vectors,
// suitable for handing to OpenGL-style consumers.
func (m Matrix) Mat4() mgl64.Mat4 {
	out := mgl64.Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Set(r, c, m.Linear[c][r])
		}
	}
	out.Set(0, 3, m.Translate.X)
	out.Set(1, 3, m.Translate.Y)
	out.Set(2, 3, m.Translate.Z)
	return out
}

// MatrixFromMat4 converts a homogeneous mgl64 matrix. It fails if the
// bottom row isn't (0, 0, 0, 1), as projective transforms can't be
// represented.
func MatrixFromMat4(in mgl64.Mat4) (Matrix, error) {
	row := in.Row(3)
	if math.Abs(row[0]) >= Epsilon || math.Abs(row[1]) >= Epsilon ||
		math.Abs(row[2]) >= Epsilon || math.Abs(row[3]-1) >= Epsilon {
		return Matrix{}, errors.Errorf("not an affine matrix: bottom row is %v", row)
	}
	var m Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Linear[c][r] = in.At(r, c)
		}
	}
	m.Translate = Vec3FromMgl(in.Col(3).Vec3())
	return m, nil
}
