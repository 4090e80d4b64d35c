//go:build !charsetdebug

// Package debug provides zero-cost-unless-enabled assertions shared across
// the charset packages.
//
// Build with the charsetdebug tag to turn Assert into a real check; the
// default build compiles it away entirely so release builds pay nothing for
// it, matching the debug-assert/release split described by spec.md for
// CharRange.CmpChar.
package debug

// Enabled reports whether assertions are compiled into this binary.
const Enabled = false

// Assert panics with msg if cond is false and the charsetdebug build tag is
// set. It is a no-op otherwise.
func Assert(cond bool, msg string) {}
