// Package mode implements the mapping modes that turn control values into
// target values.
//
// A Mode wraps exactly one of three variants:
//
//   - AbsoluteMode maps positions through a source and a target interval,
//     optionally reversed, transformed and snapped to the target's step size.
//   - RelativeMode turns encoder increments into forwarded increments for
//     relative targets or into new absolute values for all other targets.
//   - ToggleMode flips a target between the bounds of its interval on every
//     button press.
//
// Processing returns (value, true) if the target must be updated and
// (zero, false) otherwise. "No output" is the normal outcome for suppressed
// repeats, button releases and ignored out-of-range input; it is never an
// error.
//
// Feedback runs the absolute forward path backwards, so that a target value
// reported back to the controller lands on the source position that would have
// produced it.
package mode
