// Package log provides a machine-readable trace of control events.
//
// This package defines the Logger interface and Event types for capturing
// what happens to every control value: how it was decoded, whether a target
// was updated, what feedback was sent and why input was dropped. It is
// separate from operational logging (slog).
//
// # Basic Usage
//
//	// During development: trace to the console via slog
//	session.Trace = log.NewSlogAdapter(slog.Default())
//
//	// Record to a binary file for later analysis
//	session.Trace, _ = log.NewFileLogger("session.ctlog")
//
//	// Both
//	session.Trace = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
//   - Input: a MIDI message decoded into a control value (InputEvent)
//   - Output: a control value applied to a target (OutputEvent)
//   - Feedback: a target value sent back to the controller (FeedbackEvent)
//   - Suppressed: input that produced no target update (SuppressedEvent)
//   - Error: decoding and transformation failures (ErrorEventData)
//
// # File Format
//
// Trace files are a sequence of CBOR encoded events with integer keys,
// conventionally with the .ctlog extension. The ctlmap-log tool views and
// summarizes them.
package log
