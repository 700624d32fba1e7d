package mode

import (
	"testing"

	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/control/mocks"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

func unit(t *testing.T, x float64) value.UnitValue {
	t.Helper()
	u, err := value.NewUnitValue(x)
	if err != nil {
		t.Fatalf("NewUnitValue(%v) error = %v", x, err)
	}
	return u
}

func interval(t *testing.T, lo, hi float64) value.Interval[value.UnitValue] {
	t.Helper()
	in, err := value.NewUnitInterval(lo, hi)
	if err != nil {
		t.Fatalf("NewUnitInterval(%v, %v) error = %v", lo, hi, err)
	}
	return in
}

func increment(t *testing.T, v int32) value.DiscreteIncrement {
	t.Helper()
	inc, err := value.NewDiscreteIncrement(v)
	if err != nil {
		t.Fatalf("NewDiscreteIncrement(%d) error = %v", v, err)
	}
	return inc
}

// target returns a parameter of the given type, with a current value if
// current is non-negative.
func target(t *testing.T, typ control.Type, current float64) *control.Parameter {
	t.Helper()
	p := control.NewParameter("test", typ)
	if current >= 0 {
		p.Set(control.Continuous(unit(t, current)))
	}
	return p
}

// mockTarget returns a mocked target without a known current value.
func mockTarget(t *testing.T, typ control.Type) *mocks.MockTarget {
	t.Helper()
	m := mocks.NewMockTarget(t)
	m.EXPECT().CurrentValue().Return(control.AbsoluteValue{}, false).Maybe()
	m.EXPECT().ControlType().Return(typ).Maybe()
	return m
}

func assertAbsolute(t *testing.T, got control.Value, ok bool, want float64) {
	t.Helper()
	if !ok {
		t.Fatalf("Process() = none, want Absolute(%v)", want)
	}
	u, isAbs := got.Absolute()
	if !isAbs {
		t.Fatalf("Process() = %v, want Absolute(%v)", got, want)
	}
	if !u.ApproxEqual(value.ClampUnitValue(want)) {
		t.Errorf("Process() = %v, want Absolute(%v)", got, want)
	}
}
