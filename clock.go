package xform

import (
	"fmt"
	"math"
)

// Clock is the animation clock that time-varying expressions are evaluated
// against. A renderer keeps a single clock, advances it once per animation
// tick and passes it to [Graph.Eval] and [Chain.Resolve].
type Clock struct {
	Time  float64
	Frame float64
}

// staleClock never compares equal to any clock, so expressions stamped with
// it are recomputed on their first evaluation.
var staleClock = Clock{Time: math.NaN(), Frame: math.NaN()}

// SetTime sets the current time.
func (c *Clock) SetTime(t float64) {
	c.Time = t
}

// SetFrame sets the current frame number.
func (c *Clock) SetFrame(f float64) {
	c.Frame = f
}

func (c Clock) String() string {
	return fmt.Sprintf("t=%g f=%g", c.Time, c.Frame)
}

// near reports whether c and o are equal within Epsilon.
func (c Clock) near(o Clock) bool {
	return math.Abs(c.Time-o.Time) < Epsilon && math.Abs(c.Frame-o.Frame) < Epsilon
}
