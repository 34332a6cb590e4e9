package xform

import (
	"math"

	"github.com/pkg/errors"
)

// Rotate is a rotation of Theta degrees about the axis ⟨X, Y, Z⟩, which
// needn't be of unit length.
type Rotate struct {
	X, Y, Z float64
	Theta   float64
}

func (r *Rotate) Kind() Kind { return KindRotate }

// Axis returns the unnormalized rotation axis.
func (r *Rotate) Axis() Vec3 {
	return Vec(r.X, r.Y, r.Z)
}

// Propagate implements Variant.
//
// An axis of near-zero length is reported through [Warnf] and used as is.
func (r *Rotate) Propagate() (Transform, error) {
	axis, l := r.Axis().Normalize()
	if l < Epsilon {
		Warnf("degenerate rotation axis %s", r.Axis())
	}
	fwd := RotationMatrix(axis, r.Theta*math.Pi/180)
	inv, err := fwd.Invert()
	if err != nil {
		return Transform{}, errors.Wrapf(err, "rotation of %g° about %s", r.Theta, r.Axis())
	}
	return Transform{Forward: fwd, Inverse: inv}, nil
}

func (r *Rotate) field(p Param) *float64 {
	switch p {
	case RotateX:
		return &r.X
	case RotateY:
		return &r.Y
	case RotateZ:
		return &r.Z
	case RotateTheta:
		return &r.Theta
	default:
		return nil
	}
}
