// SPDX-License-Identifier: Unlicense OR MIT

// Package assert provides programming-error checks that are compiled
// in only when the assert build tag is set. Release builds must keep
// rendering, so callers pair every assertion with a safe fallback.
package assert

import "fmt"

// That panics if cond is false. Without the assert build tag it does
// nothing.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
