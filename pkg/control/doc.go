// Package control defines the values exchanged between controller sources,
// the mode engine and targets.
//
// # Control Values
//
// A Value is the single normalized input of the mode engine. It is either
// absolute (a UnitValue, e.g. a fader position or button velocity) or relative
// (a DiscreteIncrement, e.g. an encoder turn).
//
// # Targets
//
// A Target is the parameter being controlled. It exposes its current value
// and a Type that describes how it wants to be controlled:
//
//	AbsoluteContinuous               any unit value
//	AbsoluteContinuousRetriggerable  like above, repeated values are not suppressed
//	AbsoluteContinuousRoundable      continuous, optionally snapped to a step
//	AbsoluteDiscrete                 values are multiples of a step
//	Relative                         wants increments, not positions
//	VirtualMulti, VirtualButton      virtual controls feeding other mappings
//
// Parameter is a simple in-memory Target used by tools and tests.
//
// # Feedback
//
// FeedbackValue is what is sent back to a controller display: nothing (Off), a
// numeric value, or text. The textual form of a numeric value is derived by
// formatting it.
package control
