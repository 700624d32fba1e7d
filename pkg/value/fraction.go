package value

import "fmt"

// MinIsMaxBehavior decides how a value is normalized into a degenerate
// interval, where min equals max and the relative position is undefined.
type MinIsMaxBehavior uint8

const (
	// PreferZero maps a value sitting on the degenerate bound to 0.
	PreferZero MinIsMaxBehavior = iota
	// PreferOne maps a value sitting on the degenerate bound to 1.
	PreferOne
)

// String returns the behavior name.
func (b MinIsMaxBehavior) String() string {
	switch b {
	case PreferZero:
		return "PREFER_ZERO"
	case PreferOne:
		return "PREFER_ONE"
	default:
		return "UNKNOWN"
	}
}

// Fraction is a discrete value together with its soft maximum. Actual may
// exceed max; use ActualClamped where that matters.
type Fraction struct {
	actual uint32
	max    uint32
}

// NewFraction creates a fraction.
func NewFraction(actual, max uint32) Fraction {
	return Fraction{actual: actual, max: max}
}

// Actual returns the raw actual value.
func (f Fraction) Actual() uint32 { return f.actual }

// Max returns the soft maximum.
func (f Fraction) Max() uint32 { return f.max }

// ActualClamped returns actual limited to max.
func (f Fraction) ActualClamped() uint32 { return min(f.actual, f.max) }

// ToUnitValue returns actual/max as a unit value. A zero max yields 0.
func (f Fraction) ToUnitValue() UnitValue {
	if f.max == 0 {
		return UnitValueMin
	}
	return unit(float64(f.ActualClamped()) / float64(f.max))
}

// Normalize re-roots the fraction into a sub-interval of its natural range
// [0, max]. Actual values outside the interval are clamped to its bounds, so
// the result lies within [0, hi-lo]. A degenerate interval is resolved by b.
func (f Fraction) Normalize(in Interval[DiscreteValue], b MinIsMaxBehavior) Fraction {
	lo, hi := in.min.v, min(in.max.v, f.max)
	lo = min(lo, hi)
	if lo == hi {
		switch {
		case f.actual < lo:
			return Fraction{actual: 0, max: 1}
		case f.actual > hi:
			return Fraction{actual: 1, max: 1}
		case b == PreferOne:
			return Fraction{actual: 1, max: 1}
		default:
			return Fraction{actual: 0, max: 1}
		}
	}
	actual := max(lo, min(f.actual, hi))
	return Fraction{actual: actual - lo, max: hi - lo}
}

// Denormalize is the inverse of Normalize: it moves a fraction rooted at zero
// back into the interval. The result's max is the interval maximum.
func (f Fraction) Denormalize(in Interval[DiscreteValue]) Fraction {
	lo, hi := in.min.v, in.max.v
	actual := min(uint64(lo)+uint64(f.ActualClamped()), uint64(hi))
	return Fraction{actual: uint32(actual), max: hi}
}

// String formats the fraction as "actual/max".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.actual, f.max)
}
