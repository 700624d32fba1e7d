package encoder

import (
	"errors"
	"fmt"

	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// Decoding errors.
var (
	ErrNoMovement      = errors.New("encoder value encodes no movement")
	ErrValueOutOfRange = errors.New("encoder value out of 7-bit range")
	ErrUnknownProtocol = errors.New("unknown encoder protocol")
)

// MaxValue is the largest 7-bit encoder value.
const MaxValue = 127

// Protocol selects one of the three relative encoding conventions.
type Protocol uint8

const (
	Protocol1 Protocol = iota + 1
	Protocol2
	Protocol3
)

// String returns the protocol name.
func (p Protocol) String() string {
	switch p {
	case Protocol1:
		return "ENCODER_1"
	case Protocol2:
		return "ENCODER_2"
	case Protocol3:
		return "ENCODER_3"
	default:
		return "UNKNOWN"
	}
}

// Decode decodes v according to the protocol.
func (p Protocol) Decode(v uint8) (value.DiscreteIncrement, error) {
	switch p {
	case Protocol1:
		return FromEncoder1Value(v)
	case Protocol2:
		return FromEncoder2Value(v)
	case Protocol3:
		return FromEncoder3Value(v)
	default:
		return value.DiscreteIncrement{}, fmt.Errorf("%w: %d", ErrUnknownProtocol, p)
	}
}

// FromEncoder1Value decodes 1..63 as +v and 64..127 as -(128-v).
func FromEncoder1Value(v uint8) (value.DiscreteIncrement, error) {
	if v > MaxValue {
		return value.DiscreteIncrement{}, fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
	}
	switch {
	case v == 0:
		return value.DiscreteIncrement{}, ErrNoMovement
	case v <= 63:
		return value.NewDiscreteIncrement(int32(v))
	default:
		return value.NewDiscreteIncrement(-(128 - int32(v)))
	}
}

// FromEncoder2Value decodes 65..127 as +(v-64) and 0..63 as -(64-v).
func FromEncoder2Value(v uint8) (value.DiscreteIncrement, error) {
	if v > MaxValue {
		return value.DiscreteIncrement{}, fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
	}
	switch {
	case v == 64:
		return value.DiscreteIncrement{}, ErrNoMovement
	case v > 64:
		return value.NewDiscreteIncrement(int32(v) - 64)
	default:
		return value.NewDiscreteIncrement(-(64 - int32(v)))
	}
}

// FromEncoder3Value decodes 1..64 as +v and 65..127 as -(v-64).
func FromEncoder3Value(v uint8) (value.DiscreteIncrement, error) {
	if v > MaxValue {
		return value.DiscreteIncrement{}, fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
	}
	switch {
	case v == 0:
		return value.DiscreteIncrement{}, ErrNoMovement
	case v <= 64:
		return value.NewDiscreteIncrement(int32(v))
	default:
		return value.NewDiscreteIncrement(-(int32(v) - 64))
	}
}
