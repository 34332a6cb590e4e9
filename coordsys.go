package xform

import (
	"math"

	"github.com/pkg/errors"
)

// CoordSys returns the transform that maps a canonical primitive (aligned
// with +Z, of unit radius and unit length, based at the origin) to one based
// at origin, aligned with up, of radius r and length length.
//
// up must be normalized. The primitive is scaled, then rotated so that +Z
// points along up, then translated. The inverse is computed by inverting the
// composed matrix.
func CoordSys(origin Point3, up Vec3, r, length float64) (Transform, error) {
	fwd := ScaleMatrix(r, r, length)

	var axis Vec3
	if 1-math.Abs(up.Z) < Epsilon {
		// up is (anti)parallel to Z and up × Z vanishes.
		axis = Vec(1, 0, 0)
	} else {
		axis, _ = Vec(up.Y, -up.X, 0).Normalize()
	}
	fwd = fwd.Mul(RotationMatrix(axis, -math.Acos(clamp(up.Z, -1, 1))))
	fwd = fwd.Mul(TranslationMatrix(Vec3(origin)))

	inv, err := fwd.Invert()
	if err != nil {
		return Transform{}, errors.Wrapf(err, "coordinate system at %s along %s", origin, up)
	}
	return Transform{Forward: fwd, Inverse: inv}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
