package xform

import "github.com/pkg/errors"

// Chain is an ordered sequence of elementary transforms applied to one
// primitive. The first transform is applied first.
//
// A chain is typically built once, set up with [Chain.Setup], and then
// resolved and composed once per animation tick:
//
//	clock.SetTime(t)
//	if err := chain.Resolve(g, clock); err != nil { ... }
//	net := chain.Compose()
type Chain []*Trans

// Setup propagates every transform in the chain once. Transforms without
// time-varying parameters keep the resulting matrices forever.
func (ch Chain) Setup() error {
	for i, t := range ch {
		if err := t.Propagate(); err != nil {
			return errors.Wrapf(err, "transform %d (%s)", i, t.Kind())
		}
	}
	return nil
}

// Resolve reevaluates the bound expressions of every animated transform in
// the chain at clock c and recomputes their matrices. Transforms that aren't
// animated are skipped.
//
// Resolve stops at the first error.
func (ch Chain) Resolve(g *Graph, c Clock) error {
	for i, t := range ch {
		if !t.Animated() {
			continue
		}
		if err := t.resolve(g, c); err != nil {
			return errors.Wrapf(err, "transform %d (%s) at %s", i, t.Kind(), c)
		}
	}
	return nil
}

// Animated reports whether any transform in the chain is animated.
func (ch Chain) Animated() bool {
	for _, t := range ch {
		if t.Animated() {
			return true
		}
	}
	return false
}

// Compose folds the chain into a single transform, in chain order. An empty
// chain composes to [IdentityTransform].
func (ch Chain) Compose() Transform {
	if len(ch) == 0 {
		return IdentityTransform
	}
	res := ch[0].Transform
	for _, t := range ch[1:] {
		res = Compose(res, t.Transform)
	}
	return res
}
