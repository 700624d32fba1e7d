package duration

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// Duration errors.
var (
	ErrInvalidWindow   = errors.New("invalid press duration window")
	ErrUnknownFireMode = errors.New("unknown fire mode")
)

// Infinite is the open upper end of a press window.
const Infinite = Length(math.MaxInt64)

// Length is a press duration usable as an interval bound.
type Length time.Duration

// Compare orders lengths.
func (l Length) Compare(other Length) int {
	switch {
	case l < other:
		return -1
	case l > other:
		return 1
	default:
		return 0
	}
}

// Duration converts l to a time.Duration.
func (l Length) Duration() time.Duration { return time.Duration(l) }

// String returns the duration, or "inf" for Infinite.
func (l Length) String() string {
	if l == Infinite {
		return "inf"
	}
	return time.Duration(l).String()
}

// NewWindow creates a press window [lo, hi]. Use Infinite as hi for an open
// window.
func NewWindow(lo, hi time.Duration) (value.Interval[Length], error) {
	if lo < 0 {
		return value.Interval[Length]{}, fmt.Errorf("%w: negative minimum %v", ErrInvalidWindow, lo)
	}
	w, err := value.NewInterval(Length(lo), Length(hi))
	if err != nil {
		return value.Interval[Length]{}, fmt.Errorf("%w: %w", ErrInvalidWindow, err)
	}
	return w, nil
}

// DisabledWindow returns the window [0, 0] which disables timing.
func DisabledWindow() value.Interval[Length] {
	return value.Interval[Length]{}
}

// FireMode selects when a press is passed on.
type FireMode uint8

const (
	// WhenButtonReleased fires on release within the window.
	WhenButtonReleased FireMode = iota
	// AfterTimeout fires once after the window minimum.
	AfterTimeout
	// AfterTimeoutKeepFiring fires repeatedly after the window minimum.
	AfterTimeoutKeepFiring
)

// String returns the fire mode name.
func (f FireMode) String() string {
	switch f {
	case WhenButtonReleased:
		return "WHEN_BUTTON_RELEASED"
	case AfterTimeout:
		return "AFTER_TIMEOUT"
	case AfterTimeoutKeepFiring:
		return "AFTER_TIMEOUT_KEEP_FIRING"
	default:
		return "UNKNOWN"
	}
}

// WantsToBePolled reports whether the fire mode depends on Poll.
func (f FireMode) WantsToBePolled() bool {
	return f == AfterTimeout || f == AfterTimeoutKeepFiring
}

// ParseFireMode parses a fire mode name as returned by String. Matching
// ignores case and accepts "-" for "_".
func ParseFireMode(s string) (FireMode, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for _, f := range []FireMode{WhenButtonReleased, AfterTimeout, AfterTimeoutKeepFiring} {
		if name == f.String() {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFireMode, s)
}

// Config configures a Processor.
type Config struct {
	FireMode FireMode
	Window   value.Interval[Length]
}

// DefaultConfig returns a configuration with timing disabled.
func DefaultConfig() Config {
	return Config{
		FireMode: WhenButtonReleased,
		Window:   DisabledWindow(),
	}
}

// Option configures optional Processor settings.
type Option func(*Processor)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.now = now }
}

// press is a remembered button press.
type press struct {
	at    time.Time
	value value.UnitValue
}

// Processor tracks the last button press of one mapping. It is not safe for
// concurrent use.
type Processor struct {
	config Config
	now    func() time.Time

	last    press
	pressed bool
}

// NewProcessor creates a processor.
func NewProcessor(config Config, opts ...Option) *Processor {
	p := &Processor{
		config: config,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the processor configuration.
func (p *Processor) Config() Config { return p.config }

// Enabled reports whether timing is active.
func (p *Processor) Enabled() bool {
	w := p.config.Window
	return w.Min() != 0 || w.Max() != 0
}

// WantsToBePolled reports whether Poll must be called periodically.
func (p *Processor) WantsToBePolled() bool {
	return p.Enabled() && p.config.FireMode.WantsToBePolled()
}

// Pending reports whether a press is remembered.
func (p *Processor) Pending() bool { return p.pressed }

// Process handles a button value. A non-zero value is a press, zero is a
// release. It returns the value to fire, if any.
func (p *Processor) Process(v value.UnitValue) (value.UnitValue, bool) {
	if !p.Enabled() {
		return v, true
	}

	if !v.IsZero() {
		p.last = press{at: p.now(), value: v}
		p.pressed = true
		return value.UnitValue{}, false
	}

	last, pressed := p.last, p.pressed
	p.Reset()
	if p.config.FireMode != WhenButtonReleased || !pressed {
		return value.UnitValue{}, false
	}
	if !p.config.Window.Contains(p.elapsed(last)) {
		return value.UnitValue{}, false
	}
	return last.value, true
}

// Poll fires a held press once the window minimum has elapsed. In
// AfterTimeoutKeepFiring mode the press stays remembered and fires on every
// subsequent Poll until the button is released.
func (p *Processor) Poll() (value.UnitValue, bool) {
	if !p.pressed || !p.WantsToBePolled() {
		return value.UnitValue{}, false
	}
	if p.elapsed(p.last) < p.config.Window.Min() {
		return value.UnitValue{}, false
	}
	fired := p.last.value
	if p.config.FireMode == AfterTimeout {
		p.Reset()
	}
	return fired, true
}

// Reset forgets any remembered press.
func (p *Processor) Reset() {
	p.last = press{}
	p.pressed = false
}

func (p *Processor) elapsed(pr press) Length {
	return Length(p.now().Sub(pr.at))
}
