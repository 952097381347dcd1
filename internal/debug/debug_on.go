// File: internal/debug/debug_on.go
//go:build hioloaddebug

// Package debug
// Author: momentics <momentics@gmail.com>
//
// Build-tag switched consistency assertions. Enabled with -tags hioloaddebug.

package debug

// Enabled reports whether consistency assertions are compiled in.
const Enabled = true
