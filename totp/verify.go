package totp

import (
	"crypto/subtle"
	"strings"
	"time"
)

// Result is the outcome of a single verification.
type Result struct {
	// Matched reports whether the candidate code matched any step in the
	// window. A false Matched is a normal outcome, not an error.
	Matched bool

	// Drift is the signed number of time steps between the step that
	// matched and the current one: 0 for the current step, -1 for one
	// step in the past, +1 for one step in the future. Zero when Matched
	// is false.
	Drift int
}

// Verify checks a user-supplied code against secret at the current time.
//
// The candidate is left-padded with zeros to the configured digit width, so
// a code typed without its leading zeros still verifies. Each step in the
// window [-skew, +skew] is checked in ascending order and the earliest
// match wins; every step is compared in constant time, and the whole window
// is always scanned so a mismatch is indistinguishable from a malformed
// code.
func (t *TOTP) Verify(secret, code string) (Result, error) {
	return t.VerifyAt(secret, code, t.clock.Now())
}

// VerifyAt checks a user-supplied code against secret at the given time.
func (t *TOTP) VerifyAt(secret, code string, at time.Time) (Result, error) {
	candidate := t.normalize(code)

	var res Result
	for w := -int(t.skew); w <= int(t.skew); w++ {
		offset := time.Duration(w) * time.Duration(t.period) * time.Second
		generated, err := t.GenerateCodeAt(secret, at.Add(offset))
		if err != nil {
			return Result{}, err
		}
		if subtle.ConstantTimeCompare([]byte(generated), []byte(candidate)) == 1 && !res.Matched {
			res = Result{Matched: true, Drift: w}
		}
	}
	return res, nil
}

// normalize re-pads a candidate code to the configured width. Users often
// drop leading zeros when copying a code by hand.
func (t *TOTP) normalize(code string) string {
	code = strings.TrimSpace(code)
	for len(code) < t.digits {
		code = "0" + code
	}
	return code
}
