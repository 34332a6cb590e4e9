package xform

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Epsilon is the tolerance used for approximate comparisons: clock
// staleness, degenerate axes and scale factors, and, squared, singular
// determinants.
const Epsilon = 1e-5

// Matrix describes an affine transform in 3D as a 3×3 linear part and a
// translation.
//
// Points and vectors are treated as row vectors that are multiplied from the
// left, so a point p is mapped to
//
//	p' = p · Linear + Translate
//
// and Linear[row][col] is indexed accordingly. Under this convention,
// composing transforms multiplies them in the order they are applied; see
// [Matrix.Mul].
//
// The zero value is not the identity; use [Identity].
type Matrix struct {
	Linear    [3][3]float64
	Translate Vec3
}

// Identity is the identity transform.
var Identity = Matrix{
	Linear: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	},
}

// ScaleMatrix creates a matrix representing non-uniform scaling along the
// three axes.
func ScaleMatrix(x, y, z float64) Matrix {
	return Matrix{
		Linear: [3][3]float64{
			{x, 0, 0},
			{0, y, 0},
			{0, 0, z},
		},
	}
}

// TranslationMatrix creates a matrix representing translation by v.
func TranslationMatrix(v Vec3) Matrix {
	m := Identity
	m.Translate = v
	return m
}

// RotationMatrix creates a matrix representing a rotation of theta radians
// about axis, which must be of unit length.
//
// The rotation is right-handed: rotating ⟨1, 0, 0⟩ by π/2 about ⟨0, 0, 1⟩
// yields ⟨0, 1, 0⟩.
func RotationMatrix(axis Vec3, theta float64) Matrix {
	x, y, z := axis.Splat()
	sin, cos := math.Sincos(theta)
	omc := 1 - cos
	return Matrix{
		Linear: [3][3]float64{
			{x*x + (1-x*x)*cos, x*y*omc + z*sin, x*z*omc - y*sin},
			{x*y*omc - z*sin, y*y + (1-y*y)*cos, y*z*omc + x*sin},
			{x*z*omc + y*sin, y*z*omc - x*sin, z*z + (1-z*z)*cos},
		},
	}
}

func (m Matrix) String() string {
	l := &m.Linear
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g | %g %g %g]",
		l[0][0], l[0][1], l[0][2],
		l[1][0], l[1][1], l[1][2],
		l[2][0], l[2][1], l[2][2],
		m.Translate.X, m.Translate.Y, m.Translate.Z)
}

// Mul composes m and o into a transform that applies m first and o second.
//
//	p.Transform(m.Mul(o)) == p.Transform(m).Transform(o)
//
// Matrices are values, so the receiver and the argument may be the same
// matrix, and the result may be assigned back to either.
func (m Matrix) Mul(o Matrix) Matrix {
	var res Matrix
	a, b := &m.Linear, &o.Linear
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res.Linear[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	res.Translate = m.Translate.Transform(o).Add(o.Translate)
	return res
}

// Determinant computes the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	l := &m.Linear
	return l[0][0]*(l[1][1]*l[2][2]-l[1][2]*l[2][1]) -
		l[0][1]*(l[1][0]*l[2][2]-l[1][2]*l[2][0]) +
		l[0][2]*(l[1][0]*l[2][1]-l[1][1]*l[2][0])
}

// Invert computes the inverse transform using the adjugate of the linear
// part.
//
// It returns an error wrapping [ErrSingular] if the absolute value of the
// determinant is less than Epsilon².
func (m Matrix) Invert() (Matrix, error) {
	l := &m.Linear

	// Minors of the first row. The cofactor signs are applied below by
	// dividing by +d or -d.
	a00 := l[1][1]*l[2][2] - l[1][2]*l[2][1]
	a01 := l[1][0]*l[2][2] - l[1][2]*l[2][0]
	a02 := l[1][0]*l[2][1] - l[1][1]*l[2][0]

	d := l[0][0]*a00 - l[0][1]*a01 + l[0][2]*a02
	if math.Abs(d) < Epsilon*Epsilon {
		return Matrix{}, errors.Wrapf(ErrSingular, "determinant %g", d)
	}

	a10 := l[0][1]*l[2][2] - l[0][2]*l[2][1]
	a11 := l[0][0]*l[2][2] - l[0][2]*l[2][0]
	a12 := l[0][0]*l[2][1] - l[0][1]*l[2][0]
	a20 := l[0][1]*l[1][2] - l[0][2]*l[1][1]
	a21 := l[0][0]*l[1][2] - l[0][2]*l[1][0]
	a22 := l[0][0]*l[1][1] - l[0][1]*l[1][0]

	var inv Matrix
	inv.Linear = [3][3]float64{
		{a00 / d, a10 / -d, a20 / d},
		{a01 / -d, a11 / d, a21 / -d},
		{a02 / d, a12 / -d, a22 / d},
	}
	inv.Translate = m.Translate.Transform(inv).Negate()
	return inv, nil
}

// IsIdentity reports whether m is the identity within Epsilon.
func (m Matrix) IsIdentity() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m.Linear[i][j]-Identity.Linear[i][j]) >= Epsilon {
				return false
			}
		}
	}
	return m.Translate.Hypot() < Epsilon
}

// IsNaN reports whether any coefficient of m is NaN.
func (m Matrix) IsNaN() bool {
	for i := 0; i < 3; i++ {
		if vecFromRow(m.Linear[i]).IsNaN() {
			return true
		}
	}
	return m.Translate.IsNaN()
}

func vecFromRow(row [3]float64) Vec3 {
	return Vec3{row[0], row[1], row[2]}
}
