// Package base32 implements the RFC 4648 Base32 encoding used for sharing
// OTP secrets with authenticator apps.
//
// It differs from encoding/base32 in the profile authenticators expect:
// Encode never emits '=' padding, and Decode is permissive — it uppercases
// its input, ignores trailing padding, and skips characters outside the
// alphabet instead of failing.
package base32
