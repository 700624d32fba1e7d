package control

import (
	"math"

	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// Target is the parameter a mapping controls.
type Target interface {
	// CurrentValue returns the target's current value. It reports false if
	// the value is unknown, e.g. before the target has been read once.
	CurrentValue() (AbsoluteValue, bool)

	// ControlType describes how the target wants to be controlled.
	ControlType() Type
}

// DefaultParameterStep is the step a Parameter applies per increment when
// its control type has no step size of its own.
var DefaultParameterStep = value.ClampUnitValue(0.01)

// Parameter is an in-memory Target. It is not safe for concurrent use.
type Parameter struct {
	name    string
	typ     Type
	current AbsoluteValue
	known   bool
	steps   int64
}

// NewParameter creates a parameter with an unknown current value.
func NewParameter(name string, typ Type) *Parameter {
	return &Parameter{name: name, typ: typ}
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// CurrentValue implements Target.
func (p *Parameter) CurrentValue() (AbsoluteValue, bool) {
	return p.current, p.known
}

// ControlType implements Target.
func (p *Parameter) ControlType() Type { return p.typ }

// Set replaces the current value, e.g. after the parameter changed outside
// of any mapping.
func (p *Parameter) Set(v AbsoluteValue) {
	p.current = v
	p.known = true
}

// Steps returns the sum of all increments applied to a relative parameter.
func (p *Parameter) Steps() int64 { return p.steps }

// Apply applies a control value and reports whether the parameter changed.
// Retriggerable parameters report every absolute value as a change.
// Relative parameters accumulate increments. Other parameters store absolute
// values directly and move by their step size per increment.
func (p *Parameter) Apply(v Value) bool {
	if inc, ok := v.Relative(); ok {
		if p.typ.IsRelative() {
			p.steps += int64(inc.Get())
			return true
		}
		step, ok := p.typ.StepSize()
		if !ok {
			step = DefaultParameterStep
		}
		unitInc, ok := inc.ToUnitIncrement(step)
		if !ok {
			return false
		}
		current := p.current.ToUnitValue()
		return p.store(current.AddClamping(unitInc, value.UnitInterval()))
	}
	u, _ := v.Absolute()
	return p.store(u)
}

func (p *Parameter) store(u value.UnitValue) bool {
	next := Continuous(u)
	if p.typ.Kind() == TypeAbsoluteDiscrete {
		n := uint32(math.Round(1 / p.typ.step.Float64()))
		next = Discrete(value.NewFraction(u.ToDiscrete(n), n))
	}
	changed := !p.known || next != p.current || p.typ.IsRetriggerable()
	p.current = next
	p.known = true
	return changed
}

// Compile-time interface satisfaction check.
var _ Target = (*Parameter)(nil)
