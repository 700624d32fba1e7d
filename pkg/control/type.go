package control

import (
	"errors"
	"fmt"

	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// ErrInvalidStepSize is returned for step sizes outside (0, 1].
var ErrInvalidStepSize = errors.New("step size must be in (0, 1]")

// TypeKind enumerates the ways a target can be controlled.
type TypeKind uint8

const (
	TypeAbsoluteContinuous TypeKind = iota
	TypeAbsoluteContinuousRetriggerable
	TypeAbsoluteContinuousRoundable
	TypeAbsoluteDiscrete
	TypeRelative
	TypeVirtualMulti
	TypeVirtualButton
)

// String returns the kind name.
func (k TypeKind) String() string {
	switch k {
	case TypeAbsoluteContinuous:
		return "ABSOLUTE_CONTINUOUS"
	case TypeAbsoluteContinuousRetriggerable:
		return "ABSOLUTE_CONTINUOUS_RETRIGGERABLE"
	case TypeAbsoluteContinuousRoundable:
		return "ABSOLUTE_CONTINUOUS_ROUNDABLE"
	case TypeAbsoluteDiscrete:
		return "ABSOLUTE_DISCRETE"
	case TypeRelative:
		return "RELATIVE"
	case TypeVirtualMulti:
		return "VIRTUAL_MULTI"
	case TypeVirtualButton:
		return "VIRTUAL_BUTTON"
	default:
		return "UNKNOWN"
	}
}

// Type describes a target's control semantics. Roundable and discrete types
// carry an atomic step size. The zero Type is AbsoluteContinuous.
type Type struct {
	kind TypeKind
	step value.UnitValue
}

// Simple control types without a step size.
var (
	AbsoluteContinuous              = Type{kind: TypeAbsoluteContinuous}
	AbsoluteContinuousRetriggerable = Type{kind: TypeAbsoluteContinuousRetriggerable}
	RelativeType                    = Type{kind: TypeRelative}
	VirtualMulti                    = Type{kind: TypeVirtualMulti}
	VirtualButton                   = Type{kind: TypeVirtualButton}
)

// AbsoluteContinuousRoundable creates a continuous type that may be snapped to step.
func AbsoluteContinuousRoundable(step value.UnitValue) (Type, error) {
	if step.IsZero() {
		return Type{}, fmt.Errorf("%w: %v", ErrInvalidStepSize, step)
	}
	return Type{kind: TypeAbsoluteContinuousRoundable, step: step}, nil
}

// AbsoluteDiscrete creates a discrete type whose values are multiples of step.
func AbsoluteDiscrete(step value.UnitValue) (Type, error) {
	if step.IsZero() {
		return Type{}, fmt.Errorf("%w: %v", ErrInvalidStepSize, step)
	}
	return Type{kind: TypeAbsoluteDiscrete, step: step}, nil
}

// Kind returns the type kind.
func (t Type) Kind() TypeKind { return t.kind }

// StepSize returns the atomic step size of roundable and discrete types.
func (t Type) StepSize() (value.UnitValue, bool) {
	switch t.kind {
	case TypeAbsoluteContinuousRoundable, TypeAbsoluteDiscrete:
		return t.step, true
	default:
		return value.UnitValue{}, false
	}
}

// IsRetriggerable reports whether repeated identical values must still be
// sent to the target.
func (t Type) IsRetriggerable() bool {
	return t.kind == TypeAbsoluteContinuousRetriggerable
}

// IsRelative reports whether the target wants increments.
func (t Type) IsRelative() bool { return t.kind == TypeRelative }

// IsVirtual reports whether the target is a virtual control.
func (t Type) IsVirtual() bool {
	return t.kind == TypeVirtualMulti || t.kind == TypeVirtualButton
}

// String returns the kind name, with the step size where one exists.
func (t Type) String() string {
	if step, ok := t.StepSize(); ok {
		return fmt.Sprintf("%s{step=%v}", t.kind, step)
	}
	return t.kind.String()
}
