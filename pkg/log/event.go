package log

import (
	"time"

	"github.com/ctlmap/ctlmap-go/pkg/control"
)

// Event is one traced control event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the session that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// MappingID identifies the mapping, if the event belongs to one.
	MappingID string `cbor:"3,keyasint,omitempty"`

	// Direction indicates control flow.
	Direction Direction `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Type-specific payload (one of these will be set).
	Input      *InputEvent      `cbor:"10,keyasint,omitempty"`
	Output     *OutputEvent     `cbor:"11,keyasint,omitempty"`
	Feedback   *FeedbackEvent   `cbor:"12,keyasint,omitempty"`
	Suppressed *SuppressedEvent `cbor:"13,keyasint,omitempty"`
	Error      *ErrorEventData  `cbor:"14,keyasint,omitempty"`
}

// Direction indicates whether an event travels from the controller to the
// target or back.
type Direction uint8

const (
	// DirectionControl is controller to target.
	DirectionControl Direction = 0
	// DirectionFeedback is target to controller.
	DirectionFeedback Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionControl:
		return "CONTROL"
	case DirectionFeedback:
		return "FEEDBACK"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	CategoryInput      Category = 0
	CategoryOutput     Category = 1
	CategoryFeedback   Category = 2
	CategorySuppressed Category = 3
	CategoryError      Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "INPUT"
	case CategoryOutput:
		return "OUTPUT"
	case CategoryFeedback:
		return "FEEDBACK"
	case CategorySuppressed:
		return "SUPPRESSED"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name as returned by String.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryInput; c <= CategoryError; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// ValueData is the encoded form of a control.Value.
type ValueData struct {
	// Kind is the control value kind.
	Kind control.Kind `cbor:"1,keyasint"`

	// Absolute is set for absolute values.
	Absolute *float64 `cbor:"2,keyasint,omitempty"`

	// Relative is set for relative values.
	Relative *int32 `cbor:"3,keyasint,omitempty"`
}

// NewValueData converts a control value.
func NewValueData(v control.Value) ValueData {
	d := ValueData{Kind: v.Kind()}
	if inc, ok := v.Relative(); ok {
		r := inc.Get()
		d.Relative = &r
	} else {
		u, _ := v.Absolute()
		a := u.Float64()
		d.Absolute = &a
	}
	return d
}

// String formats the value like control.Value does.
func (d ValueData) String() string {
	switch {
	case d.Relative != nil:
		return "Relative(" + formatInt(int64(*d.Relative)) + ")"
	case d.Absolute != nil:
		return "Absolute(" + formatFloat(*d.Absolute) + ")"
	default:
		return "-"
	}
}

// InputEvent captures a decoded MIDI message.
type InputEvent struct {
	// Source describes the control, e.g. "CC 1/7 RANGE".
	Source string `cbor:"1,keyasint"`

	// Raw is the MIDI message.
	Raw []byte `cbor:"2,keyasint,omitempty"`

	// Value is the decoded control value.
	Value ValueData `cbor:"3,keyasint"`
}

// OutputEvent captures a target update.
type OutputEvent struct {
	// Target is the target name.
	Target string `cbor:"1,keyasint"`

	// Mode is the mode kind that produced the value.
	Mode string `cbor:"2,keyasint"`

	// Value is the value applied to the target.
	Value ValueData `cbor:"3,keyasint"`
}

// FeedbackEvent captures a value sent back to the controller.
type FeedbackEvent struct {
	// Target is the target name.
	Target string `cbor:"1,keyasint"`

	// TargetValue is the target's current value.
	TargetValue float64 `cbor:"2,keyasint"`

	// SourceValue is the value after feedback mapping.
	SourceValue float64 `cbor:"3,keyasint"`

	// Raw is the outgoing MIDI message.
	Raw []byte `cbor:"4,keyasint,omitempty"`
}

// SuppressReason explains why input produced no target update.
type SuppressReason uint8

const (
	// SuppressedByMode: the mode produced no output.
	SuppressedByMode SuppressReason = 0
	// SuppressedByPressDuration: the press duration processor held the value back.
	SuppressedByPressDuration SuppressReason = 1
	// SuppressedByTarget: the target did not change.
	SuppressedByTarget SuppressReason = 2
)

// String returns the reason name.
func (r SuppressReason) String() string {
	switch r {
	case SuppressedByMode:
		return "MODE"
	case SuppressedByPressDuration:
		return "PRESS_DURATION"
	case SuppressedByTarget:
		return "TARGET"
	default:
		return "UNKNOWN"
	}
}

// SuppressedEvent captures input that did not update the target.
type SuppressedEvent struct {
	Reason SuppressReason `cbor:"1,keyasint"`
	Value  ValueData      `cbor:"2,keyasint"`
}

// Stage indicates where an error occurred.
type Stage uint8

const (
	StageDecode         Stage = 0
	StageTransformation Stage = 1
	StagePoll           Stage = 2
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageDecode:
		return "DECODE"
	case StageTransformation:
		return "TRANSFORMATION"
	case StagePoll:
		return "POLL"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures a non-fatal error.
type ErrorEventData struct {
	// Stage where the error occurred.
	Stage Stage `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what was being processed.
	Context string `cbor:"3,keyasint,omitempty"`
}
