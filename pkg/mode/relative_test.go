package mode

import (
	"testing"

	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

func TestRelativeModeRelativeTarget(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  int32
		reverse bool
		in      int32
		want    int32
	}{
		{"DefaultUp", 1, 1, false, 5, 1},
		{"DefaultDown", 1, 1, false, -5, -1},
		{"Accelerated", 1, 4, false, 3, 3},
		{"Saturates", 1, 4, false, 10, 4},
		{"AcceleratedDown", 1, 4, false, -2, -2},
		{"Reverse", 1, 4, true, 2, -2},
		{"SlowDownCollapses", -3, 4, false, 1, 1},
		{"SlowDownCollapsesDown", -3, 4, false, -2, -1},
		{"StraddlingFast", -3, 4, false, 7, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRelativeMode()
			m.StepCountInterval = value.MustInterval(increment(t, tt.lo), increment(t, tt.hi))
			m.Reverse = tt.reverse

			got, ok := m.Process(control.Relative(increment(t, tt.in)), mockTarget(t, control.RelativeType))
			if !ok {
				t.Fatalf("Process(%d) = none", tt.in)
			}
			inc, isRel := got.Relative()
			if !isRel || inc.Get() != tt.want {
				t.Errorf("Process(%d) = %v, want Relative(%d)", tt.in, got, tt.want)
			}
		})
	}
}

func TestRelativeModeAbsoluteTarget(t *testing.T) {
	roundable, err := control.AbsoluteContinuousRoundable(value.ClampUnitValue(0.1))
	if err != nil {
		t.Fatalf("AbsoluteContinuousRoundable() error = %v", err)
	}

	tests := []struct {
		name     string
		typ      control.Type
		current  float64
		rotate   bool
		in       int32
		want     float64
		wantNone bool
	}{
		{"StepUp", control.AbsoluteContinuous, 0.5, false, 1, 0.51, false},
		{"StepDown", control.AbsoluteContinuous, 0.5, false, -1, 0.49, false},
		{"TargetStepSize", roundable, 0.5, false, 1, 0.6, false},
		{"ClampsAtMax", control.AbsoluteContinuous, 0.995, false, 1, 1, false},
		{"AtMaxSuppressed", control.AbsoluteContinuous, 1, false, 1, 0, true},
		{"AtMaxRetriggerable", control.AbsoluteContinuousRetriggerable, 1, false, 1, 1, false},
		{"RotatesAtMax", control.AbsoluteContinuous, 1, true, 1, 0, false},
		{"RotatesAtMin", control.AbsoluteContinuous, 0, true, -1, 1, false},
		{"UnknownCurrent", control.AbsoluteContinuous, -1, false, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRelativeMode()
			m.Rotate = tt.rotate

			got, ok := m.Process(control.Relative(increment(t, tt.in)), target(t, tt.typ, tt.current))
			if tt.wantNone {
				if ok {
					t.Errorf("Process() = %v, want none", got)
				}
				return
			}
			assertAbsolute(t, got, ok, tt.want)
		})
	}
}

func TestRelativeModeTargetInterval(t *testing.T) {
	m := NewRelativeMode()
	m.TargetInterval = interval(t, 0.2, 0.4)

	// A current value outside the interval is pulled into it first.
	got, ok := m.Process(control.Relative(increment(t, 1)), target(t, control.AbsoluteContinuous, 0.9))
	assertAbsolute(t, got, ok, 0.4)

	m.Rotate = true
	got, ok = m.Process(control.Relative(increment(t, 1)), target(t, control.AbsoluteContinuous, 0.4))
	assertAbsolute(t, got, ok, 0.2)
}

func TestRelativeModeButtonInput(t *testing.T) {
	m := NewRelativeMode()

	if got, ok := m.Process(control.Absolute(value.UnitValueMin), target(t, control.AbsoluteContinuous, 0.5)); ok {
		t.Errorf("Process(release) = %v, want none", got)
	}

	got, ok := m.Process(control.Absolute(value.UnitValueMax), target(t, control.AbsoluteContinuous, 0.5))
	assertAbsolute(t, got, ok, 0.51)

	m.Reverse = true
	got, ok = m.Process(control.Absolute(unit(t, 0.3)), target(t, control.AbsoluteContinuous, 0.5))
	assertAbsolute(t, got, ok, 0.49)

	got, ok = m.Process(control.Absolute(value.UnitValueMax), mockTarget(t, control.RelativeType))
	if inc, isRel := got.Relative(); !ok || !isRel || inc.Get() != -1 {
		t.Errorf("Process() = %v, %v, want Relative(-1)", got, ok)
	}
}

func TestRelativeModeValidate(t *testing.T) {
	if err := NewRelativeMode().Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	m := NewRelativeMode()
	m.StepSize = value.UnitValueMin
	if err := m.Validate(); err == nil {
		t.Error("Validate() with zero step size succeeded")
	}

	if err := (&RelativeMode{StepSize: DefaultStepSize}).Validate(); err == nil {
		t.Error("Validate() with zero step count interval succeeded")
	}
}

func TestRelativeModeFeedback(t *testing.T) {
	m := NewRelativeMode()
	m.TargetInterval = interval(t, 0.5, 1)

	if got := m.Feedback(unit(t, 0.75)); !got.ApproxEqual(unit(t, 0.5)) {
		t.Errorf("Feedback(0.75) = %v, want 0.5", got)
	}
	m.Reverse = true
	if got := m.Feedback(unit(t, 1)); !got.ApproxEqual(value.UnitValueMin) {
		t.Errorf("Feedback(1) = %v, want 0", got)
	}
}
