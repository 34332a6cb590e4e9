package xform

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// MaxArity is the maximum number of arguments of a builtin expression.
const MaxArity = 5

// ExprID identifies an expression node in a [Graph]. The zero value
// identifies no expression.
//
// The low 32 bits hold the node's slot plus one, the high 32 bits the slot's
// generation. Freeing an expression bumps the generation, so IDs of freed
// expressions stay invalid after their slot has been reused.
type ExprID uint64

func makeExprID(slot int, gen uint32) ExprID {
	return ExprID(gen)<<32 | ExprID(slot+1)
}

func (id ExprID) slot() int   { return int(uint32(id)) - 1 }
func (id ExprID) gen() uint32 { return uint32(id >> 32) }

func (id ExprID) String() string {
	if id.gen() == 0 {
		return fmt.Sprintf("#%d", id.slot()+1)
	}
	return fmt.Sprintf("#%d.%d", id.slot()+1, id.gen())
}

// Func is a pure numeric function. It is called with exactly as many
// arguments as the expression it belongs to has parameters.
type Func func(args []float64) float64

// Ownership describes who is responsible for freeing an expression.
type Ownership uint8

const (
	// Owned expressions are released by [Graph.Free].
	Owned Ownership = iota
	// SymbolTableBorrowed expressions belong to a symbol table and are
	// ignored by [Graph.Free].
	SymbolTableBorrowed
)

func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case SymbolTableBorrowed:
		return "borrowed"
	default:
		return "Ownership(?)"
	}
}

type exprKind uint8

const (
	exprFree exprKind = iota
	exprConst
	exprTime
	exprFrame
	exprBuiltin
)

type exprNode struct {
	kind     exprKind
	timevary bool
	owner    Ownership
	gen      uint32
	// For constants, the literal. For builtins, the result of the last
	// evaluation, which is valid while stamp matches the clock.
	value  float64
	stamp  Clock
	fn     Func
	params []ExprID
}

// Graph is an arena of scalar expressions. Expressions are either constant
// leaves, the clock leaves returned by [Graph.Time] and [Graph.Frame], or
// applications of a builtin function to between one and MaxArity other
// expressions.
//
// Builtin expressions cache their value together with the clock it was
// computed for, and are only recomputed when evaluated against a different
// clock. An expression that is shared by several parents is therefore
// computed at most once per clock value.
//
// A Graph must not be used concurrently.
type Graph struct {
	nodes []exprNode
	free  []int
	time  ExprID
	frame ExprID
}

// NewGraph returns an empty expression graph.
func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) alloc(n exprNode) ExprID {
	if len(g.free) > 0 {
		slot := g.free[len(g.free)-1]
		g.free = g.free[:len(g.free)-1]
		n.gen = g.nodes[slot].gen
		g.nodes[slot] = n
		return makeExprID(slot, n.gen)
	}
	g.nodes = append(g.nodes, n)
	return makeExprID(len(g.nodes)-1, 0)
}

func (g *Graph) node(id ExprID) (*exprNode, error) {
	slot := id.slot()
	if slot < 0 || slot >= len(g.nodes) {
		return nil, errors.Wrapf(ErrUnknownExpr, "expression %v", id)
	}
	n := &g.nodes[slot]
	if id.gen() > n.gen {
		return nil, errors.Wrapf(ErrUnknownExpr, "expression %v", id)
	}
	if n.kind == exprFree || id.gen() < n.gen {
		return nil, errors.Wrapf(ErrFreed, "expression %v", id)
	}
	return n, nil
}

// Float creates a constant leaf. A time-varying leaf still never changes its
// value, but makes every expression built from it time-varying.
func (g *Graph) Float(v float64, timevary bool) ExprID {
	return g.alloc(exprNode{
		kind:     exprConst,
		timevary: timevary,
		value:    v,
		stamp:    staleClock,
	})
}

// Time returns the leaf whose value is the current time of the clock that
// the graph is evaluated against. There is one such leaf per graph.
func (g *Graph) Time() ExprID {
	if g.time == 0 {
		g.time = g.alloc(exprNode{kind: exprTime, timevary: true, owner: SymbolTableBorrowed})
	}
	return g.time
}

// Frame returns the leaf whose value is the current frame of the clock that
// the graph is evaluated against. There is one such leaf per graph.
func (g *Graph) Frame() ExprID {
	if g.frame == 0 {
		g.frame = g.alloc(exprNode{kind: exprFrame, timevary: true, owner: SymbolTableBorrowed})
	}
	return g.frame
}

// Resolve creates the application of fn to args.
//
// If timevary is false and none of args is time-varying, fn is called
// immediately, the arguments are freed, and a constant leaf holding the
// result is returned. Otherwise, a builtin expression is returned that
// calls fn lazily from [Graph.Eval]. The builtin owns its list of
// arguments, but not the argument expressions themselves.
func (g *Graph) Resolve(fn Func, timevary bool, args ...ExprID) (ExprID, error) {
	if len(args) == 0 || len(args) > MaxArity {
		return 0, errors.Wrapf(ErrArity, "expression with %d args", len(args))
	}
	if fn == nil {
		return 0, errors.New("expression without function")
	}

	var vals [MaxArity]float64
	for i, arg := range args {
		n, err := g.node(arg)
		if err != nil {
			return 0, errors.Wrapf(err, "argument %d", i)
		}
		timevary = timevary || n.timevary
		vals[i] = n.value
	}

	if !timevary {
		v := fn(vals[:len(args)])
		for _, arg := range args {
			g.Free(arg)
		}
		return g.Float(v, false), nil
	}

	return g.alloc(exprNode{
		kind:     exprBuiltin,
		timevary: true,
		stamp:    staleClock,
		fn:       fn,
		params:   slices.Clone(args),
	}), nil
}

// Resolve1 is like [Graph.Resolve] for a function of one argument.
func (g *Graph) Resolve1(a ExprID, fn func(float64) float64, timevary bool) (ExprID, error) {
	return g.Resolve(func(args []float64) float64 {
		return fn(args[0])
	}, timevary, a)
}

// Resolve2 is like [Graph.Resolve] for a function of two arguments.
func (g *Graph) Resolve2(a, b ExprID, fn func(float64, float64) float64, timevary bool) (ExprID, error) {
	return g.Resolve(func(args []float64) float64 {
		return fn(args[0], args[1])
	}, timevary, a, b)
}

// Resolve3 is like [Graph.Resolve] for a function of three arguments.
func (g *Graph) Resolve3(a, b, c ExprID, fn func(float64, float64, float64) float64, timevary bool) (ExprID, error) {
	return g.Resolve(func(args []float64) float64 {
		return fn(args[0], args[1], args[2])
	}, timevary, a, b, c)
}

// Resolve4 is like [Graph.Resolve] for a function of four arguments.
func (g *Graph) Resolve4(a, b, c, d ExprID, fn func(float64, float64, float64, float64) float64, timevary bool) (ExprID, error) {
	return g.Resolve(func(args []float64) float64 {
		return fn(args[0], args[1], args[2], args[3])
	}, timevary, a, b, c, d)
}

// Resolve5 is like [Graph.Resolve] for a function of five arguments.
func (g *Graph) Resolve5(a, b, c, d, e ExprID, fn func(float64, float64, float64, float64, float64) float64, timevary bool) (ExprID, error) {
	return g.Resolve(func(args []float64) float64 {
		return fn(args[0], args[1], args[2], args[3], args[4])
	}, timevary, a, b, c, d, e)
}

// Eval returns the value of the expression at clock c.
//
// Constant leaves return their literal. Builtin expressions return their
// cached value if it was computed for a clock equal to c within Epsilon, and
// otherwise evaluate their arguments, call their function and cache the
// result. Both fields of the clock count: changing only the frame recomputes
// cached values just like changing the time does.
func (g *Graph) Eval(id ExprID, c Clock) (float64, error) {
	n, err := g.node(id)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case exprTime:
		return c.Time, nil
	case exprFrame:
		return c.Frame, nil
	}
	if !n.timevary || len(n.params) == 0 {
		return n.value, nil
	}
	if n.stamp.near(c) {
		return n.value, nil
	}
	if len(n.params) > MaxArity {
		return 0, errors.Wrapf(ErrArity, "expression with %d args", len(n.params))
	}

	var args [MaxArity]float64
	for i, p := range n.params {
		v, err := g.Eval(p, c)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	// Evaluating the arguments doesn't allocate nodes, so n is still valid.
	n.value = n.fn(args[:len(n.params)])
	n.stamp = c
	return n.value, nil
}

// Free releases the expression. Expressions borrowed by a symbol table are
// left alone, as are the graph's clock leaves. The arguments of a builtin
// expression are not freed; whoever owns them has to free them separately.
// Freeing an expression twice has no effect. Afterwards, id and every copy of
// it are invalid, even once the graph reuses the expression's storage.
func (g *Graph) Free(id ExprID) {
	n, err := g.node(id)
	if err != nil {
		return
	}
	if n.owner == SymbolTableBorrowed {
		return
	}
	*n = exprNode{kind: exprFree, gen: n.gen + 1}
	g.free = append(g.free, id.slot())
}

// Borrow marks the expression as owned by a symbol table, which makes
// [Graph.Free] ignore it.
func (g *Graph) Borrow(id ExprID) error {
	n, err := g.node(id)
	if err != nil {
		return err
	}
	n.owner = SymbolTableBorrowed
	return nil
}

// Ownership returns who owns the expression.
func (g *Graph) Ownership(id ExprID) (Ownership, error) {
	n, err := g.node(id)
	if err != nil {
		return 0, err
	}
	return n.owner, nil
}

// TimeVarying reports whether the expression's value depends on the clock.
// It returns false for invalid IDs.
func (g *Graph) TimeVarying(id ExprID) bool {
	n, err := g.node(id)
	return err == nil && n.timevary
}

// Arity returns the number of arguments of the expression, which is zero
// for leaves and for invalid IDs.
func (g *Graph) Arity(id ExprID) int {
	n, err := g.node(id)
	if err != nil {
		return 0
	}
	return len(n.params)
}

// Len returns the number of live expressions in the graph.
func (g *Graph) Len() int {
	return len(g.nodes) - len(g.free)
}
