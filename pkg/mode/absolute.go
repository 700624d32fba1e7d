package mode

import (
	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/transform"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// AbsoluteMode maps absolute control values onto a target interval.
type AbsoluteMode struct {
	// SourceInterval is the part of the control range that is used.
	SourceInterval value.Interval[value.UnitValue]

	// TargetInterval is the part of the target range that is reached.
	TargetInterval value.Interval[value.UnitValue]

	// Reverse inverts the direction within the source interval.
	Reverse bool

	// Transformation is applied in unit space. Nil means none.
	Transformation transform.Transformation

	// OutOfRangeBehavior handles input outside SourceInterval.
	OutOfRangeBehavior OutOfRangeBehavior

	// Rounding applies to targets with a step size.
	Rounding Rounding

	// OnTransformationError is called when Transformation fails. Optional.
	OnTransformationError ErrorHandler
}

// NewAbsoluteMode returns an absolute mode spanning the full unit interval on
// both sides.
func NewAbsoluteMode() *AbsoluteMode {
	return &AbsoluteMode{
		SourceInterval: value.UnitInterval(),
		TargetInterval: value.UnitInterval(),
	}
}

// Process maps v onto the target in the order source interval to unit,
// reverse, transformation, unit to target interval. Reversing in unit space
// mirrors v within the source interval. It returns false if the input is
// ignored or if the result equals the target's current value and the target
// is not retriggerable.
func (m *AbsoluteMode) Process(v value.UnitValue, t control.Target) (control.Value, bool) {
	if !m.SourceInterval.Contains(v) {
		switch m.OutOfRangeBehavior {
		case OutOfRangeMin:
			v = m.SourceInterval.Min()
		case OutOfRangeIgnore:
			return control.Value{}, false
		default:
			v = m.SourceInterval.Clamp(v)
		}
	}

	u := v.MapToUnitIntervalFrom(m.SourceInterval)
	if m.Reverse {
		u = u.Inverse()
	}

	current, known := t.CurrentValue()
	var currentUnit value.UnitValue
	if known {
		currentUnit = current.ToUnitValue()
	}
	u = applyTransformation(m.Transformation, u, currentUnit, m.OnTransformationError)

	out := u.MapFromUnitIntervalTo(m.TargetInterval)
	typ := t.ControlType()
	if step, ok := typ.StepSize(); ok {
		out = snap(out, step, m.Rounding)
	}

	if known && !typ.IsRetriggerable() && out.ApproxEqual(currentUnit) {
		return control.Value{}, false
	}
	return control.Absolute(out), true
}

// Feedback maps a target value back onto the source interval. The order is
// target interval to unit, transformation, reverse, unit to source interval.
func (m *AbsoluteMode) Feedback(targetValue value.UnitValue) value.UnitValue {
	return feedback(targetValue, m.Reverse, m.Transformation, m.SourceInterval, m.TargetInterval, m.OnTransformationError)
}

// WantsToBePolled reports whether the transformation wants to be polled.
func (m *AbsoluteMode) WantsToBePolled() bool {
	return m.Transformation != nil && m.Transformation.WantsToBePolled()
}

func snap(u, step value.UnitValue, r Rounding) value.UnitValue {
	if r == RoundingFloor {
		return u.FloorByGridIntervalSize(step)
	}
	return u.RoundByGridIntervalSize(step)
}
