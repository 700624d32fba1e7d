package mode

import (
	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// Kind identifies the active mode variant.
type Kind uint8

const (
	KindNone Kind = iota
	KindAbsolute
	KindRelative
	KindToggle
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NONE"
	case KindAbsolute:
		return "ABSOLUTE"
	case KindRelative:
		return "RELATIVE"
	case KindToggle:
		return "TOGGLE"
	default:
		return "UNKNOWN"
	}
}

// Mode holds exactly one mode variant. The zero Mode has none and never
// produces output.
type Mode struct {
	absolute *AbsoluteMode
	relative *RelativeMode
	toggle   *ToggleMode
}

// Absolute wraps an absolute mode.
func Absolute(m *AbsoluteMode) Mode { return Mode{absolute: m} }

// Relative wraps a relative mode.
func Relative(m *RelativeMode) Mode { return Mode{relative: m} }

// Toggle wraps a toggle mode.
func Toggle(m *ToggleMode) Mode { return Mode{toggle: m} }

// Kind returns the active variant.
func (m Mode) Kind() Kind {
	switch {
	case m.absolute != nil:
		return KindAbsolute
	case m.relative != nil:
		return KindRelative
	case m.toggle != nil:
		return KindToggle
	default:
		return KindNone
	}
}

// AbsoluteMode returns the wrapped absolute mode or nil.
func (m Mode) AbsoluteMode() *AbsoluteMode { return m.absolute }

// RelativeMode returns the wrapped relative mode or nil.
func (m Mode) RelativeMode() *RelativeMode { return m.relative }

// ToggleMode returns the wrapped toggle mode or nil.
func (m Mode) ToggleMode() *ToggleMode { return m.toggle }

// Process dispatches v to the active variant. Absolute and toggle modes only
// accept absolute values.
func (m Mode) Process(v control.Value, t control.Target) (control.Value, bool) {
	switch {
	case m.relative != nil:
		return m.relative.Process(v, t)
	case m.absolute != nil:
		if u, ok := v.Absolute(); ok {
			return m.absolute.Process(u, t)
		}
	case m.toggle != nil:
		if u, ok := v.Absolute(); ok {
			return m.toggle.Process(u, t)
		}
	}
	return control.Value{}, false
}

// Feedback maps a target value to the value sent back to the source.
func (m Mode) Feedback(targetValue value.UnitValue) value.UnitValue {
	switch {
	case m.absolute != nil:
		return m.absolute.Feedback(targetValue)
	case m.relative != nil:
		return m.relative.Feedback(targetValue)
	case m.toggle != nil:
		return m.toggle.Feedback(targetValue)
	default:
		return targetValue
	}
}

// WantsToBePolled reports whether the mode must be processed periodically.
func (m Mode) WantsToBePolled() bool {
	return m.absolute != nil && m.absolute.WantsToBePolled()
}
