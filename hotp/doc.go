// Package hotp implements the HMAC-based One-Time Password algorithm from
// RFC 4226.
//
// HOTP is the counter-driven primitive underneath TOTP: the shared secret
// keys an HMAC over an 8-byte counter, and dynamic truncation reduces the
// digest to a short decimal code. Most callers want package totp instead,
// which derives the counter from the clock.
package hotp
