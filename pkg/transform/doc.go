// Package transform provides value transformations applied by absolute
// modes between the source and the target side.
//
// A Transformation receives the normalized input and, as additional context,
// the target's current value. Implementations may fail; callers treat a
// failure as "no transformation" and keep the untransformed value.
//
// Lua transformations are small scripts defining a global function:
//
//	function transform(x, y)
//	  return 1 - x
//	end
//
// x is the input, y the current target value (0 if unknown). A script that
// sets the global wants_to_be_polled to true is re-evaluated periodically even
// without new input, e.g. for time based curves.
package transform
