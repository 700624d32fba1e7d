package control

import "github.com/ctlmap/ctlmap-go/pkg/value"

// AbsoluteValue is a target value, either continuous or discrete.
type AbsoluteValue struct {
	discrete bool
	unit     value.UnitValue
	fraction value.Fraction
}

// Continuous creates a continuous absolute value.
func Continuous(u value.UnitValue) AbsoluteValue {
	return AbsoluteValue{unit: u}
}

// Discrete creates a discrete absolute value.
func Discrete(f value.Fraction) AbsoluteValue {
	return AbsoluteValue{discrete: true, fraction: f}
}

// IsDiscrete reports whether the value was created by Discrete.
func (a AbsoluteValue) IsDiscrete() bool { return a.discrete }

// Fraction returns the discrete representation, if any.
func (a AbsoluteValue) Fraction() (value.Fraction, bool) {
	return a.fraction, a.discrete
}

// ToUnitValue returns the value as a position in [0, 1].
func (a AbsoluteValue) ToUnitValue() value.UnitValue {
	if a.discrete {
		return a.fraction.ToUnitValue()
	}
	return a.unit
}

// String formats the value.
func (a AbsoluteValue) String() string {
	if a.discrete {
		return a.fraction.String()
	}
	return a.unit.String()
}
