// Package recovery generates and matches MFA recovery (backup) codes.
//
// Recovery codes are the fallback when a user loses the device holding
// their TOTP secret. Generate a batch at enrollment, store only bcrypt
// hashes of them, and verify user input against the stored hashes. Storage
// itself is the caller's concern.
package recovery
