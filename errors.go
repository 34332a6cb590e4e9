package xform

import (
	"log"

	"github.com/pkg/errors"
)

// Errors returned by this package. Each is fatal for the scene construction
// step that produced it: the transform or expression involved is not usable.
// Returned errors wrap these values with additional context and can be
// checked with errors.Is.
var (
	// ErrSingular is returned when inverting a matrix whose linear part has a
	// determinant too close to zero.
	ErrSingular = errors.New("singular matrix")
	// ErrDegenerateScale is returned for scale factors too close to zero.
	ErrDegenerateScale = errors.New("degenerate scale factor")
	// ErrArity is returned for builtin expressions with no arguments or more
	// than MaxArity arguments.
	ErrArity = errors.New("invalid number of expression arguments")
	// ErrFreed is returned when using an expression that has been freed.
	ErrFreed = errors.New("expression has been freed")
	// ErrUnknownExpr is returned for expression IDs that don't belong to the
	// graph.
	ErrUnknownExpr = errors.New("unknown expression")
	// ErrParam is returned when binding a parameter that the transform's
	// variant doesn't have.
	ErrParam = errors.New("parameter not supported by transform")
)

// Warnf reports non-fatal problems, such as a degenerate rotation axis.
// Computation continues after a warning, with a defined but possibly
// degenerate result.
//
// It may be replaced to route warnings elsewhere. It is not safe to replace
// it while transforms are being resolved.
var Warnf func(format string, args ...any) = log.Printf
