package mode

import (
	"errors"
	"fmt"

	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// ErrInvalidStepSize is returned by Validate for a zero step size.
var ErrInvalidStepSize = errors.New("relative mode step size must not be zero")

// DefaultStepSize is the atomic step for targets without a step size.
var DefaultStepSize = value.ClampUnitValue(0.01)

var singleStep, _ = value.NewDiscreteIncrement(1)

// RelativeMode applies increments to a target.
type RelativeMode struct {
	// StepCountInterval maps the magnitude of incoming increments onto a
	// step count. Negative positions collapse to a single step.
	StepCountInterval value.Interval[value.DiscreteIncrement]

	// StepSize is the atomic step for targets without a step size.
	StepSize value.UnitValue

	// TargetInterval bounds the values reached on absolute targets.
	TargetInterval value.Interval[value.UnitValue]

	// Rotate wraps around at the target interval bounds instead of clamping.
	Rotate bool

	// Reverse inverts the direction of every increment.
	Reverse bool
}

// NewRelativeMode returns a relative mode that moves one atomic step per
// increment over the full unit interval.
func NewRelativeMode() *RelativeMode {
	return &RelativeMode{
		StepCountInterval: value.MustInterval(singleStep, singleStep),
		StepSize:          DefaultStepSize,
		TargetInterval:    value.UnitInterval(),
	}
}

// Validate checks the configuration.
func (m *RelativeMode) Validate() error {
	if m.StepSize.IsZero() {
		return ErrInvalidStepSize
	}
	if m.StepCountInterval.Min().Get() == 0 || m.StepCountInterval.Max().Get() == 0 {
		return fmt.Errorf("%w: step count interval %v", value.ErrZeroIncrement, m.StepCountInterval)
	}
	return nil
}

// Process handles an increment or a button press. A non-zero absolute value
// acts as a single increment upwards, or downwards when reversed.
func (m *RelativeMode) Process(v control.Value, t control.Target) (control.Value, bool) {
	inc, ok := v.Relative()
	if !ok {
		u, _ := v.Absolute()
		if u.IsZero() {
			return control.Value{}, false
		}
		inc = singleStep
	}
	if m.Reverse {
		inc = inc.Inverse()
	}

	steps := m.stepCount(inc)
	typ := t.ControlType()
	if typ.IsRelative() {
		return control.Relative(steps), true
	}

	current, known := t.CurrentValue()
	if !known {
		return control.Value{}, false
	}
	step, ok := typ.StepSize()
	if !ok {
		step = m.StepSize
	}
	unitInc, ok := steps.ToUnitIncrement(step)
	if !ok {
		return control.Value{}, false
	}

	cur := m.TargetInterval.Clamp(current.ToUnitValue())
	var next value.UnitValue
	if m.Rotate {
		next = cur.AddRotatingAtBounds(unitInc, m.TargetInterval)
	} else {
		next = cur.AddClamping(unitInc, m.TargetInterval)
	}

	if !typ.IsRetriggerable() && next.ApproxEqual(current.ToUnitValue()) {
		return control.Value{}, false
	}
	return control.Absolute(next), true
}

// stepCount maps inc onto the step count interval, keeping its direction.
func (m *RelativeMode) stepCount(inc value.DiscreteIncrement) value.DiscreteIncrement {
	steps := inc.ClampToInterval(m.StepCountInterval)
	if !steps.IsPositive() {
		steps = singleStep
	}
	return steps.WithDirection(inc.Signum())
}

// Feedback maps a target value onto the unit interval.
func (m *RelativeMode) Feedback(targetValue value.UnitValue) value.UnitValue {
	u := targetValue.MapToUnitIntervalFrom(m.TargetInterval)
	if m.Reverse {
		return u.Inverse()
	}
	return u
}
