// File: internal/debug/debug_off.go
//go:build !hioloaddebug

package debug

// Enabled reports whether consistency assertions are compiled in.
const Enabled = false
