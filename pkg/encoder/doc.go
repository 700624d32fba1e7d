// Package encoder decodes relative encoder values.
//
// Endless encoders send a single 7-bit value per movement. Its magnitude
// encodes the turn speed, and three conventions exist for encoding the
// direction:
//
//	Protocol1  1..63 -> +v        64..127 -> -(128-v)   0 is no movement
//	Protocol2  65..127 -> +(v-64) 0..63 -> -(64-v)      64 is no movement
//	Protocol3  1..64 -> +v        65..127 -> -(v-64)    0 is no movement
//
// The "no movement" code is rejected with ErrNoMovement, so a decoded
// increment is never zero.
package encoder
