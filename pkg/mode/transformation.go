package mode

import (
	"errors"
	"fmt"
	"math"

	"github.com/ctlmap/ctlmap-go/pkg/transform"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// ErrNonFiniteResult is reported when a transformation returns NaN or an
// infinite value.
var ErrNonFiniteResult = errors.New("transformation returned a non-finite value")

// ErrorHandler receives transformation failures. The mode has already fallen
// back to the untransformed value when it is called.
type ErrorHandler func(err error)

// applyTransformation runs tr and clamps its result into [0, 1]. Any failure
// yields the input unchanged.
func applyTransformation(tr transform.Transformation, in, additional value.UnitValue, onErr ErrorHandler) value.UnitValue {
	if tr == nil {
		return in
	}
	out, err := tr.Transform(in.Float64(), additional.Float64())
	if err == nil && (math.IsNaN(out) || math.IsInf(out, 0)) {
		err = fmt.Errorf("%w: %v", ErrNonFiniteResult, out)
	}
	if err != nil {
		if onErr != nil {
			onErr(err)
		}
		return in
	}
	return value.ClampUnitValue(out)
}
