package xform

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	DisableMethods:          true,
	SortKeys:                true,
}

func (k exprKind) String() string {
	switch k {
	case exprFree:
		return "free"
	case exprConst:
		return "const"
	case exprTime:
		return "time"
	case exprFrame:
		return "frame"
	case exprBuiltin:
		return "builtin"
	default:
		return fmt.Sprintf("exprKind(%d)", k)
	}
}

// Dump returns a human-readable description of every live expression in
// the graph, for debugging.
func (g *Graph) Dump() string {
	type entry struct {
		ID       ExprID
		Kind     string
		TimeVary bool
		Owner    string
		Value    float64
		Stamp    Clock
		Params   []ExprID
	}
	var entries []entry
	for i, n := range g.nodes {
		if n.kind == exprFree {
			continue
		}
		entries = append(entries, entry{
			ID:       makeExprID(i, n.gen),
			Kind:     n.kind.String(),
			TimeVary: n.timevary,
			Owner:    n.owner.String(),
			Value:    n.value,
			Stamp:    n.stamp,
			Params:   n.params,
		})
	}
	return spewConfig.Sdump(entries)
}

// Dump returns a human-readable description of every transform in the
// chain and its resolved matrices, for debugging.
func (ch Chain) Dump() string {
	var sb strings.Builder
	for i, t := range ch {
		fmt.Fprintf(&sb, "%d: %s animated=%t\n", i, t.Kind(), t.Animated())
		sb.WriteString(spewConfig.Sdump(t.Variant))
		fmt.Fprintf(&sb, "  forward %s\n  inverse %s\n", t.Forward, t.Inverse)
	}
	return sb.String()
}
