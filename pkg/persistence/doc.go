// Package persistence stores target values across simulator restarts.
//
// The state file is JSON. It holds the last known value of every absolute
// target, keyed by target name.
package persistence
