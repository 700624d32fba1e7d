// Package source adapts MIDI controls to control values.
//
// A Source identifies one control on a MIDI controller by message kind,
// channel and number, and says how its values are interpreted:
//
//   - Range: faders and knobs. The 7-bit value is scaled to [0, 1].
//   - Button: a non-zero value is a press (1), zero is a release (0).
//   - Encoder1, Encoder2, Encoder3: endless encoders sending relative
//     increments in one of the encoder protocols of package encoder.
//
// Feedback goes the other way: a unit value is scaled back to 7 bits and sent
// as a control change or note-on message to light up LEDs or move motor
// faders.
package source
