package totp

import (
	"hash"

	"github.com/shandysiswandi/gotp/clock"
)

// Option configures a TOTP instance.
type Option func(*TOTP)

// WithPeriod sets the time-step length in seconds. Zero keeps the common
// 30-second period.
func WithPeriod(seconds uint) Option {
	return func(t *TOTP) {
		if seconds > 0 {
			t.period = seconds
		}
	}
}

// WithSkew sets how many adjacent time steps Verify accepts on each side of
// the current one, to tolerate client/server clock drift. Zero means only
// the current step is checked.
func WithSkew(steps uint) Option {
	return func(t *TOTP) {
		t.skew = steps
	}
}

// WithDigits sets the code width. Values outside 1-8 keep the default 6.
func WithDigits(n int) Option {
	return func(t *TOTP) {
		if n >= 1 && n <= 8 {
			t.digits = n
		}
	}
}

// WithHash sets the constructor for the HMAC's underlying hash function.
// Authenticator apps assume SHA-1, the default.
func WithHash(newHash func() hash.Hash) Option {
	return func(t *TOTP) {
		if newHash != nil {
			t.newHash = newHash
		}
	}
}

// WithClock replaces the wall clock, mainly so tests can pin time.
func WithClock(c clock.Clocker) Option {
	return func(t *TOTP) {
		if c != nil {
			t.clock = c
		}
	}
}
