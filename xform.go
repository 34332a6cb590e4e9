package xform

import "github.com/pkg/errors"

// Xform is an arbitrary affine transform whose matrix is given cell by cell,
// see [XformX0] through [XformZt].
type Xform struct {
	M Matrix
}

func (x *Xform) Kind() Kind { return KindXform }

// Propagate implements Variant. It fails if M is singular.
func (x *Xform) Propagate() (Transform, error) {
	inv, err := x.M.Invert()
	if err != nil {
		return Transform{}, errors.Wrapf(err, "transform %s", x.M)
	}
	return Transform{Forward: x.M, Inverse: inv}, nil
}

func (x *Xform) field(p Param) *float64 {
	switch {
	case p >= XformX0 && p <= XformZ2:
		i := int(p - XformX0)
		return &x.M.Linear[i/3][i%3]
	case p == XformXt:
		return &x.M.Translate.X
	case p == XformYt:
		return &x.M.Translate.Y
	case p == XformZt:
		return &x.M.Translate.Z
	default:
		return nil
	}
}
