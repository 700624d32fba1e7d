package value

import "errors"

// Construction errors.
var (
	ErrUnitValueOutOfRange     = errors.New("unit value out of range [0, 1]")
	ErrUnitIncrementOutOfRange = errors.New("unit increment out of range [-1, 1]")
	ErrZeroIncrement           = errors.New("increment must not be zero")
	ErrInvalidInterval         = errors.New("interval min must not exceed max")
)
