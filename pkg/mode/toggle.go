package mode

import (
	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// ToggleMode switches a target between the bounds of TargetInterval. The
// toggle state is read from the target, so external changes are respected.
type ToggleMode struct {
	TargetInterval value.Interval[value.UnitValue]
}

// NewToggleMode returns a toggle mode switching between 0 and 1.
func NewToggleMode() *ToggleMode {
	return &ToggleMode{TargetInterval: value.UnitInterval()}
}

// Process toggles on every non-zero value. Releases and targets without a
// known current value produce no output.
func (m *ToggleMode) Process(v value.UnitValue, t control.Target) (control.Value, bool) {
	if v.IsZero() {
		return control.Value{}, false
	}
	current, known := t.CurrentValue()
	if !known {
		return control.Value{}, false
	}
	lo, hi := m.TargetInterval.Min(), m.TargetInterval.Max()
	center := (lo.Float64() + hi.Float64()) / 2
	if current.ToUnitValue().Float64() > center {
		return control.Absolute(lo), true
	}
	return control.Absolute(hi), true
}

// Feedback maps a target value onto the unit interval.
func (m *ToggleMode) Feedback(targetValue value.UnitValue) value.UnitValue {
	return targetValue.MapToUnitIntervalFrom(m.TargetInterval)
}
