package xform

import "fmt"

// Kind identifies the variant of an elementary transform.
type Kind uint8

const (
	KindRotate Kind = iota + 1
	KindScale
	KindTranslate
	KindXform
)

func (k Kind) String() string {
	switch k {
	case KindRotate:
		return "rotate"
	case KindScale:
		return "scale"
	case KindTranslate:
		return "translate"
	case KindXform:
		return "transform"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Param names a scalar parameter of a transform variant that can be bound
// to an expression with [Trans.Set].
type Param uint8

const (
	RotateX Param = iota
	RotateY
	RotateZ
	RotateTheta

	ScaleX
	ScaleY
	ScaleZ

	TranslateX
	TranslateY
	TranslateZ

	// XformX0 through XformZ2 address the rows (X, Y, Z) and columns (0, 1,
	// 2) of the linear part of an [Xform]'s matrix; XformXt through XformZt
	// address its translation.
	XformX0
	XformX1
	XformX2
	XformY0
	XformY1
	XformY2
	XformZ0
	XformZ1
	XformZ2
	XformXt
	XformYt
	XformZt

	numParams
)

var paramNames = [numParams]string{
	"RotateX", "RotateY", "RotateZ", "RotateTheta",
	"ScaleX", "ScaleY", "ScaleZ",
	"TranslateX", "TranslateY", "TranslateZ",
	"XformX0", "XformX1", "XformX2",
	"XformY0", "XformY1", "XformY2",
	"XformZ0", "XformZ1", "XformZ2",
	"XformXt", "XformYt", "XformZt",
}

func (p Param) String() string {
	if p < numParams {
		return paramNames[p]
	}
	return fmt.Sprintf("Param(%d)", p)
}

// Variant is the payload of an elementary transform. The set of variants is
// closed: [Rotate], [Scale], [Translate], and [Xform].
type Variant interface {
	Kind() Kind

	// Propagate computes the forward and inverse matrices from the
	// variant's current parameters.
	Propagate() (Transform, error)

	// field returns the storage of parameter p, or nil if the variant
	// doesn't have that parameter.
	field(p Param) *float64
}

var (
	_ Variant = (*Rotate)(nil)
	_ Variant = (*Scale)(nil)
	_ Variant = (*Translate)(nil)
	_ Variant = (*Xform)(nil)
)

// NewVariant returns a variant of the given kind with default parameters:
// a rotation by 0° about the Z axis, unit scale, no translation, and the
// identity matrix. It panics if k isn't one of the Kind constants.
func NewVariant(k Kind) Variant {
	switch k {
	case KindRotate:
		return &Rotate{Z: 1}
	case KindScale:
		return &Scale{X: 1, Y: 1, Z: 1}
	case KindTranslate:
		return &Translate{}
	case KindXform:
		return &Xform{M: Identity}
	default:
		panic(fmt.Sprintf("invalid transform kind %v", k))
	}
}
