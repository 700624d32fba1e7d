package value

import (
	"cmp"
	"math"
	"strconv"
)

// DiscreteValue is a non-negative integer value, e.g. a step index.
type DiscreteValue struct {
	v uint32
}

// NewDiscreteValue wraps v. It cannot fail.
func NewDiscreteValue(v uint32) DiscreteValue { return DiscreteValue{v: v} }

// Get returns the raw value.
func (d DiscreteValue) Get() uint32 { return d.v }

// Compare implements Bound.
func (d DiscreteValue) Compare(other DiscreteValue) int { return cmp.Compare(d.v, other.v) }

// IsZero reports whether the value is 0.
func (d DiscreteValue) IsZero() bool { return d.v == 0 }

// String formats the value in decimal.
func (d DiscreteValue) String() string { return strconv.FormatUint(uint64(d.v), 10) }

// NewDiscreteInterval creates an interval of discrete values from raw bounds.
func NewDiscreteInterval(lo, hi uint32) (Interval[DiscreteValue], error) {
	return NewInterval(DiscreteValue{v: lo}, DiscreteValue{v: hi})
}

// DiscreteIncrement is a non-zero signed step count.
type DiscreteIncrement struct {
	v int32
}

// NewDiscreteIncrement validates v and wraps it as a DiscreteIncrement.
func NewDiscreteIncrement(v int32) (DiscreteIncrement, error) {
	if v == 0 {
		return DiscreteIncrement{}, ErrZeroIncrement
	}
	return DiscreteIncrement{v: v}, nil
}

// Get returns the raw increment.
func (d DiscreteIncrement) Get() int32 { return d.v }

// Compare implements Bound.
func (d DiscreteIncrement) Compare(other DiscreteIncrement) int { return cmp.Compare(d.v, other.v) }

// Signum returns -1 or +1.
func (d DiscreteIncrement) Signum() int {
	if d.v < 0 {
		return -1
	}
	return 1
}

// IsPositive reports whether the increment points upwards.
func (d DiscreteIncrement) IsPositive() bool { return d.v > 0 }

// Abs returns the magnitude of the increment.
func (d DiscreteIncrement) Abs() uint32 {
	if d.v < 0 {
		return uint32(-int64(d.v))
	}
	return uint32(d.v)
}

// Inverse flips the direction. The most negative int32 saturates at the most
// positive one.
func (d DiscreteIncrement) Inverse() DiscreteIncrement {
	if d.v == math.MinInt32 {
		return DiscreteIncrement{v: math.MaxInt32}
	}
	return DiscreteIncrement{v: -d.v}
}

// WithDirection returns an increment of the same magnitude pointing in the
// direction of signum. A zero signum keeps the current direction.
func (d DiscreteIncrement) WithDirection(signum int) DiscreteIncrement {
	if signum == 0 || (signum < 0) == (d.v < 0) {
		return d
	}
	return d.Inverse()
}

// ToUnitIncrement scales the increment by the atomic step size. The result is
// limited to [-1, 1]. It reports false for a zero step.
func (d DiscreteIncrement) ToUnitIncrement(step UnitValue) (UnitIncrement, bool) {
	if step.v == 0 {
		return UnitIncrement{}, false
	}
	x := float64(d.v) * step.v
	return UnitIncrement{v: math.Max(-1, math.Min(1, x))}, true
}

// ClampToInterval maps the magnitude of d onto a position inside a step count
// interval. The interval may straddle zero, in which case the zero position is
// skipped. Magnitude 1 selects the interval minimum, each further step moves
// one position up, and magnitudes beyond the interval saturate at its maximum.
func (d DiscreteIncrement) ClampToInterval(in Interval[DiscreteIncrement]) DiscreteIncrement {
	lo, hi := int64(in.min.v), int64(in.max.v)
	straddles := lo < 0 && hi > 0
	count := hi - lo + 1
	if straddles {
		count = hi - lo
	}
	addend := min(int64(d.Abs())-1, count-1)
	sum := lo + addend
	if straddles && sum >= 0 {
		sum++
	}
	return DiscreteIncrement{v: int32(min(sum, hi))}
}

// String formats the increment with an explicit sign.
func (d DiscreteIncrement) String() string {
	if d.v > 0 {
		return "+" + strconv.FormatInt(int64(d.v), 10)
	}
	return strconv.FormatInt(int64(d.v), 10)
}

// NewIncrementInterval creates a step count interval from raw bounds. Neither
// bound may be zero.
func NewIncrementInterval(lo, hi int32) (Interval[DiscreteIncrement], error) {
	l, err := NewDiscreteIncrement(lo)
	if err != nil {
		return Interval[DiscreteIncrement]{}, err
	}
	h, err := NewDiscreteIncrement(hi)
	if err != nil {
		return Interval[DiscreteIncrement]{}, err
	}
	return NewInterval(l, h)
}
