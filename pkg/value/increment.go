package value

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// UnitIncrement is a non-zero continuous increment in [-1, 1].
type UnitIncrement struct {
	v float64
}

// NewUnitIncrement validates x and wraps it as a UnitIncrement.
func NewUnitIncrement(x float64) (UnitIncrement, error) {
	if x == 0 {
		return UnitIncrement{}, ErrZeroIncrement
	}
	if math.IsNaN(x) || x < -1 || x > 1 {
		return UnitIncrement{}, fmt.Errorf("%w: %v", ErrUnitIncrementOutOfRange, x)
	}
	return UnitIncrement{v: x}, nil
}

// Float64 returns the raw increment.
func (i UnitIncrement) Float64() float64 { return i.v }

// Compare implements Bound.
func (i UnitIncrement) Compare(other UnitIncrement) int { return cmp.Compare(i.v, other.v) }

// Signum returns -1 or +1.
func (i UnitIncrement) Signum() int {
	if i.v < 0 {
		return -1
	}
	return 1
}

// Inverse flips the direction.
func (i UnitIncrement) Inverse() UnitIncrement { return UnitIncrement{v: -i.v} }

// Magnitude returns the absolute value of the increment.
func (i UnitIncrement) Magnitude() UnitValue { return unit(math.Abs(i.v)) }

// ClampToInterval limits the magnitude of i to the interval while keeping its
// direction. A zero interval minimum never produces a zero increment because
// the magnitude of i is always positive.
func (i UnitIncrement) ClampToInterval(in Interval[UnitValue]) UnitIncrement {
	m := in.Clamp(i.Magnitude())
	if m.v == 0 {
		return i
	}
	inc, _ := m.ToIncrement(i.Signum())
	return inc
}

// String formats the increment with an explicit sign.
func (i UnitIncrement) String() string {
	s := strconv.FormatFloat(i.v, 'f', -1, 64)
	if i.v > 0 {
		return "+" + s
	}
	return s
}
