// Package duration implements press duration handling for button sources.
//
// A Processor sits between a button and its mode. It decides, based on how
// long the button is held, whether and when a press is passed on.
//
// # Fire Modes
//
// WhenButtonReleased fires the pressed value on release, but only if the
// press lasted for a duration within the configured window. Short taps and
// long holds can so be mapped to different targets.
//
// AfterTimeout fires once the button has been held for the window minimum.
// Releasing the button earlier cancels the press.
//
// AfterTimeoutKeepFiring behaves like AfterTimeout but keeps firing on every
// Poll until the button is released ("turbo"). The repeat rate is set by the
// caller's poll cadence.
//
// # Disabled Window
//
// A window of [0, 0] disables timing: every input is passed on immediately.
//
// # Clock
//
// Processors read time.Now by default. Tests inject a clock with WithClock.
package duration
