package xform

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Builtin is a named numeric function that scene descriptions can apply to
// expressions.
type Builtin struct {
	Name  string
	Arity int
	Fn    Func
}

func fn1(f func(float64) float64) Func {
	return func(args []float64) float64 { return f(args[0]) }
}

func fn2(f func(float64, float64) float64) Func {
	return func(args []float64) float64 { return f(args[0], args[1]) }
}

// linear interpolates from v0 at t0 to v1 at t1, holding the end values
// outside of that range.
func linear(args []float64) float64 {
	t0, v0, t1, v1, t := args[0], args[1], args[2], args[3], args[4]
	switch {
	case t <= t0:
		return v0
	case t >= t1:
		return v1
	default:
		return v0 + (v1-v0)*(t-t0)/(t1-t0)
	}
}

var builtins = map[string]Builtin{}

func init() {
	for _, b := range []Builtin{
		{"sin", 1, fn1(math.Sin)},
		{"cos", 1, fn1(math.Cos)},
		{"tan", 1, fn1(math.Tan)},
		{"asin", 1, fn1(math.Asin)},
		{"acos", 1, fn1(math.Acos)},
		{"atan", 1, fn1(math.Atan)},
		{"sqrt", 1, fn1(math.Sqrt)},
		{"abs", 1, fn1(math.Abs)},
		{"deg", 1, fn1(func(r float64) float64 { return r * 180 / math.Pi })},
		{"rad", 1, fn1(func(d float64) float64 { return d * math.Pi / 180 })},
		{"atan2", 2, fn2(math.Atan2)},
		{"min", 2, fn2(math.Min)},
		{"max", 2, fn2(math.Max)},
		{"pow", 2, fn2(math.Pow)},
		{"mod", 2, fn2(math.Mod)},
		{"hypot", 2, fn2(math.Hypot)},
		{"linear", 5, linear},
	} {
		builtins[b.Name] = b
	}
}

// LookupBuiltin returns the builtin function called name.
func LookupBuiltin(name string) (Builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}

// BuiltinNames returns the names of all builtin functions, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call applies the builtin function called name to args, as if by
// [Graph.Resolve].
func (g *Graph) Call(name string, timevary bool, args ...ExprID) (ExprID, error) {
	b, ok := LookupBuiltin(name)
	if !ok {
		return 0, errors.Errorf("unknown function %q", name)
	}
	if len(args) != b.Arity {
		return 0, errors.Wrapf(ErrArity, "%s takes %d arguments, got %d", name, b.Arity, len(args))
	}
	return g.Resolve(b.Fn, timevary, args...)
}

// Symbols maps names to expressions. Expressions stored in a symbol table
// are borrowed by it, so that freeing a transform's expressions doesn't free
// named values that other transforms still refer to.
//
// A new symbol table defines "time" and "frame" as the graph's clock leaves.
type Symbols struct {
	g *Graph
	m map[string]ExprID
}

// NewSymbols returns a symbol table for expressions in g.
func NewSymbols(g *Graph) *Symbols {
	s := &Symbols{
		g: g,
		m: map[string]ExprID{},
	}
	s.m["time"] = g.Time()
	s.m["frame"] = g.Frame()
	return s
}

// Define binds name to the expression, replacing any previous binding.
func (s *Symbols) Define(name string, id ExprID) error {
	if err := s.g.Borrow(id); err != nil {
		return errors.Wrapf(err, "defining %q", name)
	}
	s.m[name] = id
	return nil
}

// Lookup returns the expression bound to name.
func (s *Symbols) Lookup(name string) (ExprID, bool) {
	id, ok := s.m[name]
	return id, ok
}
