package value

import "fmt"

// Bound is implemented by the types an Interval can span.
type Bound[T any] interface {
	// Compare returns -1, 0 or +1 depending on whether the receiver is less
	// than, equal to or greater than other.
	Compare(other T) int
}

// Interval is an inclusive range [min, max]. The zero value spans the zero
// value of T on both ends.
type Interval[T Bound[T]] struct {
	min T
	max T
}

// NewInterval creates an interval. It fails if lo is greater than hi.
func NewInterval[T Bound[T]](lo, hi T) (Interval[T], error) {
	if lo.Compare(hi) > 0 {
		return Interval[T]{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, lo, hi)
	}
	return Interval[T]{min: lo, max: hi}, nil
}

// MustInterval is like NewInterval but panics on error. It is intended for
// package-level defaults built from constants.
func MustInterval[T Bound[T]](lo, hi T) Interval[T] {
	i, err := NewInterval(lo, hi)
	if err != nil {
		panic(err)
	}
	return i
}

// Min returns the lower bound.
func (i Interval[T]) Min() T { return i.min }

// Max returns the upper bound.
func (i Interval[T]) Max() T { return i.max }

// Contains reports whether v lies within the interval, bounds included.
func (i Interval[T]) Contains(v T) bool {
	return i.min.Compare(v) <= 0 && v.Compare(i.max) <= 0
}

// Clamp returns v limited to the interval bounds.
func (i Interval[T]) Clamp(v T) T {
	if v.Compare(i.min) < 0 {
		return i.min
	}
	if v.Compare(i.max) > 0 {
		return i.max
	}
	return v
}

// IsDegenerate reports whether min equals max.
func (i Interval[T]) IsDegenerate() bool {
	return i.min.Compare(i.max) == 0
}

// String returns the interval as "[min, max]".
func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", i.min, i.max)
}

// UnitInterval returns the full interval [0, 1].
func UnitInterval() Interval[UnitValue] {
	return Interval[UnitValue]{min: UnitValueMin, max: UnitValueMax}
}

// NewUnitInterval creates a unit value interval from raw bounds.
func NewUnitInterval(lo, hi float64) (Interval[UnitValue], error) {
	l, err := NewUnitValue(lo)
	if err != nil {
		return Interval[UnitValue]{}, err
	}
	h, err := NewUnitValue(hi)
	if err != nil {
		return Interval[UnitValue]{}, err
	}
	return NewInterval(l, h)
}

// IsFull reports whether i covers the whole unit interval [0, 1].
func IsFull(i Interval[UnitValue]) bool {
	return i.min.v == 0 && i.max.v == 1
}

// Span returns max - min of a unit value interval.
func Span(i Interval[UnitValue]) float64 {
	return i.max.v - i.min.v
}
