package control

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FeedbackKind distinguishes the feedback variants.
type FeedbackKind uint8

const (
	// FeedbackOff switches the controller display or LED off.
	FeedbackOff FeedbackKind = iota
	// FeedbackNumeric carries a target value.
	FeedbackNumeric
	// FeedbackTextual carries display text.
	FeedbackTextual
)

// String returns the kind name.
func (k FeedbackKind) String() string {
	switch k {
	case FeedbackOff:
		return "OFF"
	case FeedbackNumeric:
		return "NUMERIC"
	case FeedbackTextual:
		return "TEXTUAL"
	default:
		return "UNKNOWN"
	}
}

// FeedbackValue is the value sent back to a controller. The zero value is Off.
type FeedbackValue struct {
	kind    FeedbackKind
	numeric AbsoluteValue
	text    string
}

// Off returns the "off" feedback value.
func Off() FeedbackValue { return FeedbackValue{} }

// NumericFeedback wraps a target value.
func NumericFeedback(v AbsoluteValue) FeedbackValue {
	return FeedbackValue{kind: FeedbackNumeric, numeric: v}
}

// TextualFeedback wraps explicit display text.
func TextualFeedback(text string) FeedbackValue {
	return FeedbackValue{kind: FeedbackTextual, text: text}
}

// Kind returns which variant is active.
func (f FeedbackValue) Kind() FeedbackKind { return f.kind }

// Numeric returns the numeric value if f is numeric.
func (f FeedbackValue) Numeric() (AbsoluteValue, bool) {
	return f.numeric, f.kind == FeedbackNumeric
}

// Text returns the display text. Numeric feedback is formatted: discrete
// values as "actual/max", continuous values as a percentage. Off yields "".
func (f FeedbackValue) Text() string {
	switch f.kind {
	case FeedbackTextual:
		return f.text
	case FeedbackNumeric:
		p := message.NewPrinter(language.English)
		if fr, ok := f.numeric.Fraction(); ok {
			return p.Sprintf("%d/%d", fr.Actual(), fr.Max())
		}
		return p.Sprintf("%.1f%%", f.numeric.ToUnitValue().Float64()*100)
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (f FeedbackValue) String() string {
	if f.kind == FeedbackOff {
		return "Off"
	}
	return f.Text()
}
