package totp

import (
	"crypto/sha1"
	"hash"
	"time"

	"github.com/shandysiswandi/gotp/base32"
	"github.com/shandysiswandi/gotp/clock"
	"github.com/shandysiswandi/gotp/hotp"
)

// TOTP generates and verifies time-based one-time passwords.
//
// The zero-option instance uses the profile authenticator apps expect:
// SHA-1, 6 digits, a 30-second period, and a verification skew of one step
// on each side. A TOTP value is immutable after New and safe for concurrent
// use.
type TOTP struct {
	period  uint
	skew    uint
	digits  int
	newHash func() hash.Hash
	clock   clock.Clocker
}

// New constructs a TOTP instance with sensible defaults, adjusted by opts.
func New(opts ...Option) *TOTP {
	t := &TOTP{
		period:  30,
		skew:    1,
		digits:  6,
		newHash: sha1.New,
		clock:   clock.New(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// GenerateCode returns the code for secret at the current time.
//
// secret is Base32 text as shared with an authenticator app; it is decoded
// leniently (case-insensitive, padding optional).
func (t *TOTP) GenerateCode(secret string) (string, error) {
	return t.GenerateCodeAt(secret, t.clock.Now())
}

// GenerateCodeAt returns the code for secret at the given time.
func (t *TOTP) GenerateCodeAt(secret string, at time.Time) (string, error) {
	return hotp.Compute(base32.Decode(secret), t.timeStep(at),
		hotp.WithDigits(t.digits), hotp.WithHash(t.newHash))
}

// timeStep converts a wall-clock instant into the number of whole periods
// elapsed since the Unix epoch, flooring toward negative infinity so that
// pre-epoch instants still land on step boundaries consistently.
func (t *TOTP) timeStep(at time.Time) uint64 {
	sec := at.Unix()
	period := int64(t.period)

	step := sec / period
	if sec%period != 0 && sec < 0 {
		step--
	}
	return uint64(step)
}
