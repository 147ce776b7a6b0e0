// Package totp implements the Time-based One-Time Password algorithm from
// RFC 6238.
//
// This is the code behind 2FA/MFA authenticator apps: both sides share a
// Base32-encoded secret, derive a counter from the wall clock, and compare
// short decimal codes. A TOTP value generates codes and verifies
// user-supplied ones within a configurable clock-drift window.
package totp
