// Package clock provides a tiny time abstraction.
//
// TOTP codes depend on the wall clock, which makes them awkward to test
// directly. Code that depends on the Clocker interface instead of calling
// time.Now() can swap in a Fixed clock and generate deterministic codes.
package clock
