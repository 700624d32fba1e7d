package transform

import "errors"

// Transformation errors.
var (
	ErrNoTransformFunction = errors.New("script defines no transform function")
	ErrNonNumericResult    = errors.New("transform returned a non-numeric result")
)

// Transformation maps a value to another value.
type Transformation interface {
	// Transform maps input using additional as context.
	Transform(input, additional float64) (float64, error)

	// WantsToBePolled reports whether the transformation must be evaluated
	// periodically.
	WantsToBePolled() bool
}

// Func adapts an ordinary function to the Transformation interface. It is
// never polled.
type Func func(input, additional float64) (float64, error)

// Transform implements Transformation.
func (f Func) Transform(input, additional float64) (float64, error) {
	return f(input, additional)
}

// WantsToBePolled implements Transformation.
func (f Func) WantsToBePolled() bool { return false }

// Compile-time interface checks.
var (
	_ Transformation = Func(nil)
	_ Transformation = (*Lua)(nil)
)
