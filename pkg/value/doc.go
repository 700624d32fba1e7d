// Package value implements the numeric value model of the mapping engine.
//
// All types are small immutable value structs. Their fields are unexported so
// that invariants are enforced by construction:
//
//	UnitValue          continuous, 0 <= v <= 1
//	UnitIncrement      continuous, v != 0, -1 <= v <= 1
//	DiscreteValue      non-negative integer
//	DiscreteIncrement  signed integer, v != 0
//	Fraction           (actual, max) pair, actual may exceed max
//	Interval[T]        inclusive [min, max] with min <= max
//
// # Constructors
//
// Validated constructors (NewUnitValue, NewUnitIncrement, NewDiscreteIncrement,
// NewInterval) return an error wrapping one of the Err* sentinels. They are
// meant for configuration and decoding, i.e. everything that happens before a
// value enters the mode engine.
//
// ClampUnitValue is the trusted fast path for per-event processing. It never
// fails: out-of-range input is clamped and NaN maps to zero. Callers that use it
// on untrusted input accept that malformed input is silently coerced.
//
// # Interval Arithmetic
//
// Absolute mappings are composed of two rescale halves:
//
//	u := v.MapToUnitIntervalFrom(source) // (v - min) / span
//	t := u.MapFromUnitIntervalTo(target) // min + u * span
//
// Relative mappings add increments either clamping (AddClamping) or rotating
// (AddRotatingAtBounds), the latter snapping to the opposite bound when the sum
// leaves the interval, which is what endless encoders expect.
package value
