// Package xform provides animated 3D affine transformations for scene
// descriptions and renderers. Transforms may depend on an animation clock
// through scalar expressions, which are only reevaluated when the clock
// changes.
//
// # Matrices
//
// [Matrix] represents an affine transform as a 3×3 linear part and a
// translation. Points and vectors are row vectors, so composing transforms
// with [Matrix.Mul] multiplies them in the order in which they are applied.
// [Point3], [Vec3] and [Ray] have methods to transform them by a matrix; note
// that surface normals have to be transformed by the inverse matrix, see
// [Vec3.TransformNormal].
//
// [Transform] pairs a forward (object to world) matrix with its inverse and
// provides helpers for moving points, vectors, normals and rays between the
// two spaces.
//
// # Expressions
//
// A [Graph] holds scalar expressions: constants, the clock leaves
// [Graph.Time] and [Graph.Frame], and applications of numeric functions to up
// to [MaxArity] other expressions. Building an expression whose inputs are all
// constant evaluates it immediately and yields a constant ("constant
// folding"), so static parts of a scene cost nothing during animation.
// Time-varying expressions cache their value per [Clock] value; shared
// subexpressions are computed at most once per clock value.
//
// Named functions that scene descriptions can call are listed by
// [BuiltinNames]. [Symbols] maps names to expressions.
//
// # Transforms and chains
//
// [Trans] is an elementary transform: one of the variants [Rotate], [Scale],
// [Translate] and [Xform], plus its resolved matrices. Parameters of the
// variant are bound to expressions with [Trans.Set]. Constant parameters are
// stored once; time-varying ones are reevaluated on every call to
// [Chain.Resolve].
//
// [Chain] is the ordered list of elementary transforms applied to one
// primitive. Once per animation tick, a renderer sets the clock, resolves each
// chain, and composes it into a single [Transform] with [Chain.Compose].
//
// [CoordSys] builds the transform that places a canonical Z-aligned
// primitive, such as a cylinder or cone, in world space.
//
// # Errors
//
// Singular matrices, degenerate scale factors and malformed expressions are
// reported as errors that wrap one of the package's Err values. These errors
// mean that the scene being built is unusable. Degenerate rotation axes are
// merely reported through [Warnf].
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Resolving chains
// mutates both the transforms and the expression graph's caches.
package xform
