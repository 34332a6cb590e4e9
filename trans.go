package xform

import (
	"github.com/pkg/errors"
)

// Transform is a resolved affine transform from object space to world space
// (Forward) together with its inverse (Inverse).
type Transform struct {
	Forward Matrix
	Inverse Matrix
}

// IdentityTransform is the identity transform.
var IdentityTransform = Transform{Forward: Identity, Inverse: Identity}

// Compose returns the transform that applies a first and b second.
//
// The inverse of the composition applies the inverses in reverse order:
// (AB)⁻¹ = B⁻¹A⁻¹.
func Compose(a, b Transform) Transform {
	return Transform{
		Forward: a.Forward.Mul(b.Forward),
		Inverse: b.Inverse.Mul(a.Inverse),
	}
}

// Invert returns the inverse transform. It doesn't compute anything.
func (t Transform) Invert() Transform {
	return Transform{Forward: t.Inverse, Inverse: t.Forward}
}

// PointToWorld maps a point from object space to world space.
func (t Transform) PointToWorld(p Point3) Point3 { return p.Transform(t.Forward) }

// PointToObject maps a point from world space to object space.
func (t Transform) PointToObject(p Point3) Point3 { return p.Transform(t.Inverse) }

// VecToWorld maps a vector from object space to world space.
func (t Transform) VecToWorld(v Vec3) Vec3 { return v.Transform(t.Forward) }

// VecToObject maps a vector from world space to object space.
func (t Transform) VecToObject(v Vec3) Vec3 { return v.Transform(t.Inverse) }

// NormalToWorld maps a surface normal from object space to world space and
// renormalizes it.
func (t Transform) NormalToWorld(n Vec3) Vec3 { return n.TransformNormal(t.Inverse) }

// NormalToObject maps a surface normal from world space to object space and
// renormalizes it.
func (t Transform) NormalToObject(n Vec3) Vec3 { return n.TransformNormal(t.Forward) }

// RayToWorld maps a ray from object space to world space. See [Ray.Transform]
// for the meaning of the returned length.
func (t Transform) RayToWorld(r Ray) (Ray, float64) { return r.Transform(t.Forward) }

// RayToObject maps a ray from world space to object space. See [Ray.Transform]
// for the meaning of the returned length.
func (t Transform) RayToObject(r Ray) (Ray, float64) { return r.Transform(t.Inverse) }

type binding struct {
	lhs  *float64
	expr ExprID
}

// Trans is an elementary transform: a variant, its resolved matrices, and
// the time-varying expressions bound to the variant's parameters.
//
// The matrices are the identity until [Trans.Propagate] runs, and are
// mutual inverses afterwards.
type Trans struct {
	Transform
	Variant Variant

	bindings []binding
}

// NewTrans returns a transform of the given kind with default parameters and
// identity matrices. Like [NewVariant], it panics if k isn't one of the Kind
// constants.
func NewTrans(k Kind) *Trans {
	return &Trans{
		Transform: IdentityTransform,
		Variant:   NewVariant(k),
	}
}

// NewRotate returns a new rotation.
func NewRotate() *Trans { return NewTrans(KindRotate) }

// NewScale returns a new scale.
func NewScale() *Trans { return NewTrans(KindScale) }

// NewTranslate returns a new translation.
func NewTranslate() *Trans { return NewTrans(KindTranslate) }

// NewXform returns a new arbitrary matrix transform.
func NewXform() *Trans { return NewTrans(KindXform) }

func (t *Trans) Kind() Kind { return t.Variant.Kind() }

// Animated reports whether any of the transform's parameters is bound to a
// time-varying expression.
func (t *Trans) Animated() bool { return len(t.bindings) > 0 }

// Assoc binds the storage at lhs, which should be a parameter of t's
// variant, to the expression e of graph g.
//
// If e isn't time-varying, its value is stored at lhs immediately and the
// expression isn't referenced afterwards. Otherwise, the binding is
// recorded, and every call to [Chain.Resolve] reevaluates e and stores the
// result at lhs.
func (t *Trans) Assoc(g *Graph, lhs *float64, e ExprID) error {
	n, err := g.node(e)
	if err != nil {
		return err
	}
	if !n.timevary {
		*lhs = n.value
		return nil
	}
	t.bindings = append(t.bindings, binding{lhs: lhs, expr: e})
	return nil
}

// Set binds the parameter p of t's variant to the expression e of graph g,
// as if by [Trans.Assoc]. It fails with [ErrParam] if the variant doesn't
// have the parameter.
func (t *Trans) Set(g *Graph, p Param, e ExprID) error {
	lhs := t.Variant.field(p)
	if lhs == nil {
		return errors.Wrapf(ErrParam, "%s on %s", p, t.Kind())
	}
	return t.Assoc(g, lhs, e)
}

// SetValue sets the parameter p of t's variant to a constant.
func (t *Trans) SetValue(p Param, v float64) error {
	lhs := t.Variant.field(p)
	if lhs == nil {
		return errors.Wrapf(ErrParam, "%s on %s", p, t.Kind())
	}
	*lhs = v
	return nil
}

// Propagate recomputes the matrices from the variant's current parameters.
// On failure, the matrices are left unchanged.
func (t *Trans) Propagate() error {
	tr, err := t.Variant.Propagate()
	if err != nil {
		return err
	}
	t.Transform = tr
	return nil
}

// resolve evaluates all bindings at clock c and propagates.
func (t *Trans) resolve(g *Graph, c Clock) error {
	for _, b := range t.bindings {
		v, err := g.Eval(b.expr, c)
		if err != nil {
			return err
		}
		*b.lhs = v
	}
	return t.Propagate()
}
