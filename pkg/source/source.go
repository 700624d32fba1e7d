package source

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gitlab.com/gomidi/midi/v2"

	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/encoder"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// Source errors.
var (
	ErrNotMatched       = errors.New("message does not match source")
	ErrInvalidSource    = errors.New("invalid source")
	ErrUnknownCharacter = errors.New("unknown source character")
	ErrUnknownKind      = errors.New("unknown message kind")
)

// MIDI limits.
const (
	MaxChannel = 15
	MaxNumber  = 127
	MaxValue   = 127
)

// MessageKind is the MIDI message type a source listens to.
type MessageKind uint8

const (
	KindControlChange MessageKind = iota
	KindNote
)

// String returns the kind name.
func (k MessageKind) String() string {
	switch k {
	case KindControlChange:
		return "CC"
	case KindNote:
		return "NOTE"
	default:
		return "UNKNOWN"
	}
}

// ParseMessageKind parses "cc" or "note".
func ParseMessageKind(s string) (MessageKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CC", "CONTROL_CHANGE":
		return KindControlChange, nil
	case "NOTE":
		return KindNote, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Character says how a control's values are interpreted.
type Character uint8

const (
	CharacterRange Character = iota
	CharacterButton
	CharacterEncoder1
	CharacterEncoder2
	CharacterEncoder3
)

// String returns the character name.
func (c Character) String() string {
	switch c {
	case CharacterRange:
		return "RANGE"
	case CharacterButton:
		return "BUTTON"
	case CharacterEncoder1:
		return "ENCODER_1"
	case CharacterEncoder2:
		return "ENCODER_2"
	case CharacterEncoder3:
		return "ENCODER_3"
	default:
		return "UNKNOWN"
	}
}

// IsEncoder reports whether the character produces relative values.
func (c Character) IsEncoder() bool {
	_, ok := c.protocol()
	return ok
}

func (c Character) protocol() (encoder.Protocol, bool) {
	switch c {
	case CharacterEncoder1:
		return encoder.Protocol1, true
	case CharacterEncoder2:
		return encoder.Protocol2, true
	case CharacterEncoder3:
		return encoder.Protocol3, true
	default:
		return 0, false
	}
}

// ParseCharacter parses a character name as returned by String.
func ParseCharacter(s string) (Character, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for _, c := range []Character{CharacterRange, CharacterButton, CharacterEncoder1, CharacterEncoder2, CharacterEncoder3} {
		if name == c.String() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCharacter, s)
}

// Source is one MIDI control.
type Source struct {
	Kind      MessageKind
	Channel   uint8
	Number    uint8
	Character Character
}

// Validate checks ranges and combinations.
func (s Source) Validate() error {
	if s.Channel > MaxChannel {
		return fmt.Errorf("%w: channel %d", ErrInvalidSource, s.Channel)
	}
	if s.Number > MaxNumber {
		return fmt.Errorf("%w: number %d", ErrInvalidSource, s.Number)
	}
	if s.Kind == KindNote && s.Character.IsEncoder() {
		return fmt.Errorf("%w: notes cannot carry %v values", ErrInvalidSource, s.Character)
	}
	if s.Kind > KindNote {
		return fmt.Errorf("%w: %d", ErrUnknownKind, s.Kind)
	}
	if s.Character > CharacterEncoder3 {
		return fmt.Errorf("%w: %d", ErrUnknownCharacter, s.Character)
	}
	return nil
}

// String returns e.g. "CC 1/7 RANGE" with a 1-based channel.
func (s Source) String() string {
	return fmt.Sprintf("%s %d/%d %s", s.Kind, s.Channel+1, s.Number, s.Character)
}

// Decode converts msg into a control value. It returns ErrNotMatched for
// messages of other controls.
func (s Source) Decode(msg midi.Message) (control.Value, error) {
	raw, ok := s.match(msg)
	if !ok {
		return control.Value{}, ErrNotMatched
	}

	if p, ok := s.Character.protocol(); ok {
		inc, err := p.Decode(raw)
		if err != nil {
			return control.Value{}, err
		}
		return control.Relative(inc), nil
	}

	if s.Character == CharacterButton {
		if raw == 0 {
			return control.Absolute(value.UnitValueMin), nil
		}
		return control.Absolute(value.UnitValueMax), nil
	}
	return control.Absolute(FromSevenBit(raw)), nil
}

// match extracts the 7-bit payload if msg belongs to this source.
func (s Source) match(msg midi.Message) (uint8, bool) {
	var channel, number, val uint8
	switch s.Kind {
	case KindControlChange:
		if !msg.GetControlChange(&channel, &number, &val) {
			return 0, false
		}
	case KindNote:
		switch {
		case msg.GetNoteStart(&channel, &number, &val):
		case msg.GetNoteEnd(&channel, &number):
			val = 0
		default:
			return 0, false
		}
	default:
		return 0, false
	}
	if channel != s.Channel || number != s.Number {
		return 0, false
	}
	return val, true
}

// Feedback encodes a unit value as a message to this control.
func (s Source) Feedback(u value.UnitValue) midi.Message {
	v := ToSevenBit(u)
	if s.Kind == KindNote {
		return midi.NoteOn(s.Channel, s.Number, v)
	}
	return midi.ControlChange(s.Channel, s.Number, v)
}

// FromSevenBit scales a 7-bit value to [0, 1].
func FromSevenBit(v uint8) value.UnitValue {
	return value.ClampUnitValue(float64(v) / MaxValue)
}

// ToSevenBit scales a unit value to the nearest 7-bit value.
func ToSevenBit(u value.UnitValue) uint8 {
	return uint8(math.Round(u.Float64() * MaxValue))
}
