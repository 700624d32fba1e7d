package mode

import (
	"github.com/ctlmap/ctlmap-go/pkg/transform"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// Feedback maps a target value onto the source interval. It mirrors
// AbsoluteMode.Process: the value leaves the target interval, passes the
// transformation, is reversed and lands in the source interval. Reversing
// happens in unit space, not on the raw target value. A failing
// transformation is skipped.
func Feedback(
	targetValue value.UnitValue,
	reverse bool,
	tr transform.Transformation,
	sourceInterval, targetInterval value.Interval[value.UnitValue],
) value.UnitValue {
	return feedback(targetValue, reverse, tr, sourceInterval, targetInterval, nil)
}

func feedback(
	targetValue value.UnitValue,
	reverse bool,
	tr transform.Transformation,
	sourceInterval, targetInterval value.Interval[value.UnitValue],
	onErr ErrorHandler,
) value.UnitValue {
	u := targetValue.MapToUnitIntervalFrom(targetInterval)
	u = applyTransformation(tr, u, targetValue, onErr)
	if reverse {
		u = u.Inverse()
	}
	return u.MapFromUnitIntervalTo(sourceInterval)
}
