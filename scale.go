package xform

import (
	"math"

	"github.com/pkg/errors"
)

// Scale is a non-uniform scale by X, Y and Z along the respective axes.
type Scale struct {
	X, Y, Z float64
}

func (s *Scale) Kind() Kind { return KindScale }

// Propagate implements Variant. It fails with [ErrDegenerateScale] if any
// factor is within Epsilon of zero.
func (s *Scale) Propagate() (Transform, error) {
	if math.Abs(s.X) < Epsilon || math.Abs(s.Y) < Epsilon || math.Abs(s.Z) < Epsilon {
		return Transform{}, errors.Wrapf(ErrDegenerateScale, "scale %g %g %g", s.X, s.Y, s.Z)
	}
	return Transform{
		Forward: ScaleMatrix(s.X, s.Y, s.Z),
		Inverse: ScaleMatrix(1/s.X, 1/s.Y, 1/s.Z),
	}, nil
}

func (s *Scale) field(p Param) *float64 {
	switch p {
	case ScaleX:
		return &s.X
	case ScaleY:
		return &s.Y
	case ScaleZ:
		return &s.Z
	default:
		return nil
	}
}
