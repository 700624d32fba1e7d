package mode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBehavior is returned when parsing an unknown enum name.
var ErrUnknownBehavior = errors.New("unknown behavior")

// OutOfRangeBehavior selects what happens to absolute input outside the
// source interval.
type OutOfRangeBehavior uint8

const (
	// OutOfRangeMinOrMax clamps to the nearer bound.
	OutOfRangeMinOrMax OutOfRangeBehavior = iota
	// OutOfRangeMin clamps to the interval minimum.
	OutOfRangeMin
	// OutOfRangeIgnore discards the input.
	OutOfRangeIgnore
)

// String returns the behavior name.
func (b OutOfRangeBehavior) String() string {
	switch b {
	case OutOfRangeMinOrMax:
		return "MIN_OR_MAX"
	case OutOfRangeMin:
		return "MIN"
	case OutOfRangeIgnore:
		return "IGNORE"
	default:
		return "UNKNOWN"
	}
}

// ParseOutOfRangeBehavior parses a behavior name as returned by String.
// Matching ignores case and accepts "-" for "_".
func ParseOutOfRangeBehavior(s string) (OutOfRangeBehavior, error) {
	for _, b := range []OutOfRangeBehavior{OutOfRangeMinOrMax, OutOfRangeMin, OutOfRangeIgnore} {
		if normalizeName(s) == b.String() {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: out of range %q", ErrUnknownBehavior, s)
}

// Rounding selects how values are snapped to a target's step size.
type Rounding uint8

const (
	// RoundingNearest snaps to the nearest step.
	RoundingNearest Rounding = iota
	// RoundingFloor snaps to the next lower step.
	RoundingFloor
)

// String returns the rounding name.
func (r Rounding) String() string {
	switch r {
	case RoundingNearest:
		return "NEAREST"
	case RoundingFloor:
		return "FLOOR"
	default:
		return "UNKNOWN"
	}
}

// ParseRounding parses a rounding name as returned by String.
func ParseRounding(s string) (Rounding, error) {
	for _, r := range []Rounding{RoundingNearest, RoundingFloor} {
		if normalizeName(s) == r.String() {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: rounding %q", ErrUnknownBehavior, s)
}

func normalizeName(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}
