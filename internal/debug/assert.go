// File: internal/debug/assert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Assertion helper shared by the cursor-carrying structures. The checks
// guard internal consistency (filled <= initialized <= capacity) on every
// mutating path; they are a development aid, not the safety boundary. The
// real boundary is the documented Region contract.

package debug

import "fmt"

// Assert panics with a formatted message when cond is false and assertions
// are compiled in. A no-op in default builds; the condition expression is
// still evaluated, so keep it to plain comparisons.
func Assert(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic("hioload-buf: assertion failed: " + fmt.Sprintf(format, args...))
	}
}
