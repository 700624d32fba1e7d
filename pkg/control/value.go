package control

import (
	"fmt"

	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// Kind distinguishes absolute from relative control values.
type Kind uint8

const (
	// KindAbsolute is a position in [0, 1].
	KindAbsolute Kind = iota
	// KindRelative is a signed step count.
	KindRelative
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsolute:
		return "ABSOLUTE"
	case KindRelative:
		return "RELATIVE"
	default:
		return "UNKNOWN"
	}
}

// Value is either Absolute(UnitValue) or Relative(DiscreteIncrement).
// The zero Value is Absolute(0).
type Value struct {
	kind     Kind
	absolute value.UnitValue
	relative value.DiscreteIncrement
}

// Absolute creates an absolute control value.
func Absolute(u value.UnitValue) Value {
	return Value{kind: KindAbsolute, absolute: u}
}

// Relative creates a relative control value.
func Relative(inc value.DiscreteIncrement) Value {
	return Value{kind: KindRelative, relative: inc}
}

// Kind returns which variant is active.
func (v Value) Kind() Kind { return v.kind }

// Absolute returns the unit value if v is absolute.
func (v Value) Absolute() (value.UnitValue, bool) {
	return v.absolute, v.kind == KindAbsolute
}

// Relative returns the increment if v is relative.
func (v Value) Relative() (value.DiscreteIncrement, bool) {
	return v.relative, v.kind == KindRelative
}

// String returns e.g. "Absolute(0.5)" or "Relative(-2)".
func (v Value) String() string {
	if v.kind == KindRelative {
		return fmt.Sprintf("Relative(%v)", v.relative)
	}
	return fmt.Sprintf("Absolute(%v)", v.absolute)
}
