package value

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// BaseEpsilon is the tolerance used when comparing unit values for equality.
const BaseEpsilon = 0.000_001

// UnitValue is a continuous value in the closed interval [0, 1].
type UnitValue struct {
	v float64
}

// Bounds of the unit interval.
var (
	UnitValueMin = UnitValue{v: 0}
	UnitValueMax = UnitValue{v: 1}
)

// NewUnitValue validates x and wraps it as a UnitValue.
func NewUnitValue(x float64) (UnitValue, error) {
	if math.IsNaN(x) || x < 0 || x > 1 {
		return UnitValue{}, fmt.Errorf("%w: %v", ErrUnitValueOutOfRange, x)
	}
	return UnitValue{v: x}, nil
}

// ClampUnitValue wraps x as a UnitValue, clamping it into [0, 1]. NaN maps to
// zero. This is the constructor for the per-event fast path.
func ClampUnitValue(x float64) UnitValue {
	switch {
	case math.IsNaN(x), x <= 0:
		return UnitValueMin
	case x >= 1:
		return UnitValueMax
	}
	return UnitValue{v: x}
}

// unit wraps x without validation. The caller guarantees 0 <= x <= 1.
func unit(x float64) UnitValue {
	return UnitValue{v: x}
}

// Float64 returns the raw value.
func (u UnitValue) Float64() float64 { return u.v }

// Compare implements Bound.
func (u UnitValue) Compare(other UnitValue) int { return cmp.Compare(u.v, other.v) }

// IsZero reports whether the value is exactly 0.
func (u UnitValue) IsZero() bool { return u.v == 0 }

// ApproxEqual reports whether u and other differ by less than BaseEpsilon.
func (u UnitValue) ApproxEqual(other UnitValue) bool {
	return math.Abs(u.v-other.v) < BaseEpsilon
}

// Inverse returns 1 - u.
func (u UnitValue) Inverse() UnitValue { return unit(1 - u.v) }

// MapToUnitIntervalFrom rescales u from the given interval into [0, 1].
// Values below the interval map to 0, values above it to 1. For a degenerate
// interval every value at or above its bound maps to 1.
func (u UnitValue) MapToUnitIntervalFrom(from Interval[UnitValue]) UnitValue {
	if u.v < from.min.v {
		return UnitValueMin
	}
	if u.v > from.max.v {
		return UnitValueMax
	}
	span := Span(from)
	if span == 0 {
		return UnitValueMax
	}
	return ClampUnitValue((u.v - from.min.v) / span)
}

// MapFromUnitIntervalTo rescales u from [0, 1] into the given interval.
func (u UnitValue) MapFromUnitIntervalTo(to Interval[UnitValue]) UnitValue {
	return ClampUnitValue(to.min.v + u.v*Span(to))
}

// AddRotatingAtBounds adds inc to u. If the sum leaves the interval, the result
// snaps to the opposite bound.
func (u UnitValue) AddRotatingAtBounds(inc UnitIncrement, in Interval[UnitValue]) UnitValue {
	sum := u.v + inc.v
	if sum < in.min.v {
		return in.max
	}
	if sum > in.max.v {
		return in.min
	}
	return unit(sum)
}

// AddClamping adds inc to u and clamps the sum to the interval.
func (u UnitValue) AddClamping(inc UnitIncrement, in Interval[UnitValue]) UnitValue {
	sum := u.v + inc.v
	if sum < in.min.v {
		return in.min
	}
	if sum > in.max.v {
		return in.max
	}
	return unit(sum)
}

// RoundByGridIntervalCount snaps u to the nearest of count equal subdivisions
// of [0, 1]. A count of zero returns u unchanged.
func (u UnitValue) RoundByGridIntervalCount(count uint32) UnitValue {
	if count == 0 {
		return u
	}
	n := float64(count)
	return ClampUnitValue(math.Round(u.v*n) / n)
}

// RoundByGridIntervalSize snaps u to the nearest multiple of step.
// A zero step returns u unchanged.
func (u UnitValue) RoundByGridIntervalSize(step UnitValue) UnitValue {
	if step.v == 0 {
		return u
	}
	return ClampUnitValue(math.Round(u.v/step.v) * step.v)
}

// FloorByGridIntervalSize snaps u to the next lower multiple of step.
// A zero step returns u unchanged.
func (u UnitValue) FloorByGridIntervalSize(step UnitValue) UnitValue {
	if step.v == 0 {
		return u
	}
	// The epsilon keeps exact multiples from falling one step short.
	return ClampUnitValue(math.Floor(u.v/step.v+BaseEpsilon) * step.v)
}

// ToDiscrete maps u onto the integer range [0, max], rounding to nearest.
func (u UnitValue) ToDiscrete(max uint32) uint32 {
	return uint32(math.Round(u.v * float64(max)))
}

// ToIncrement converts u into an increment with the given direction. It
// reports false if u is zero or signum is zero.
func (u UnitValue) ToIncrement(signum int) (UnitIncrement, bool) {
	if u.v == 0 || signum == 0 {
		return UnitIncrement{}, false
	}
	if signum < 0 {
		return UnitIncrement{v: -u.v}, true
	}
	return UnitIncrement{v: u.v}, true
}

// String formats the value in its shortest exact form.
func (u UnitValue) String() string {
	return strconv.FormatFloat(u.v, 'f', -1, 64)
}
