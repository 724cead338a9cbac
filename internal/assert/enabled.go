// SPDX-License-Identifier: Unlicense OR MIT

//go:build assert

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true
