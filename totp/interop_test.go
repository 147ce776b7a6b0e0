package totp_test

import (
	"fmt"
	"testing"
	"time"

	cotp "github.com/creachadair/otp"
	"github.com/creachadair/otp/otpauth"
	"github.com/pquerna/otp"
	ptotp "github.com/pquerna/otp/totp"

	"github.com/shandysiswandi/gotp/totp"
)

const interopSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

var pquernaOpts = ptotp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// TestAgreesWithPquerna pins code generation to an independent, widely
// deployed implementation.
func TestAgreesWithPquerna(t *testing.T) {
	g := totp.New()
	for _, unix := range []int64{59, 1111111109, 1700000015, 2000000000} {
		at := time.Unix(unix, 0)

		ours, err := g.GenerateCodeAt(interopSecret, at)
		if err != nil {
			t.Fatalf("GenerateCodeAt(T=%d): unexpected error: %v", unix, err)
		}
		theirs, err := ptotp.GenerateCodeCustom(interopSecret, at, pquernaOpts)
		if err != nil {
			t.Fatalf("pquerna GenerateCodeCustom(T=%d): unexpected error: %v", unix, err)
		}
		if ours != theirs {
			t.Errorf("T=%d: got %q, pquerna produced %q", unix, ours, theirs)
		}
	}
}

// TestVerifyInterop checks acceptance in both directions: our verifier
// accepts pquerna codes and pquerna accepts ours.
func TestVerifyInterop(t *testing.T) {
	at := time.Unix(1700000015, 0)
	g := totp.New()

	theirs, err := ptotp.GenerateCodeCustom(interopSecret, at, pquernaOpts)
	if err != nil {
		t.Fatalf("pquerna GenerateCodeCustom: unexpected error: %v", err)
	}
	res, err := g.VerifyAt(interopSecret, theirs, at)
	if err != nil {
		t.Fatalf("VerifyAt: unexpected error: %v", err)
	}
	if !res.Matched || res.Drift != 0 {
		t.Errorf("VerifyAt(pquerna code): got %+v, want Matched=true Drift=0", res)
	}

	ours, err := g.GenerateCodeAt(interopSecret, at)
	if err != nil {
		t.Fatalf("GenerateCodeAt: unexpected error: %v", err)
	}
	ok, err := ptotp.ValidateCustom(ours, interopSecret, at, pquernaOpts)
	if err != nil {
		t.Fatalf("pquerna ValidateCustom: unexpected error: %v", err)
	}
	if !ok {
		t.Errorf("pquerna rejected our code %q", ours)
	}
}

// TestProvisioningURIContract checks that generated secrets survive the
// otpauth:// template used for provisioning QR codes, by round-tripping
// one through an independent otpauth parser and key reader.
func TestProvisioningURIContract(t *testing.T) {
	secret, err := totp.NewSecret(0)
	if err != nil {
		t.Fatalf("NewSecret: unexpected error: %v", err)
	}

	uri := fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s&algorithm=SHA1&digits=6&period=30",
		"Example", "alice", secret, "Example")
	u, err := otpauth.ParseURL(uri)
	if err != nil {
		t.Fatalf("ParseURL(%q): unexpected error: %v", uri, err)
	}
	if u.RawSecret != secret {
		t.Fatalf("parsed secret %q does not match generated %q", u.RawSecret, secret)
	}

	var cfg cotp.Config
	if err := cfg.ParseKey(u.RawSecret); err != nil {
		t.Fatalf("ParseKey(%q): unexpected error: %v", u.RawSecret, err)
	}

	at := time.Unix(1700000015, 0)
	ours, err := totp.New().GenerateCodeAt(secret, at)
	if err != nil {
		t.Fatalf("GenerateCodeAt: unexpected error: %v", err)
	}
	if theirs := cfg.HOTP(uint64(at.Unix()) / 30); theirs != ours {
		t.Errorf("code mismatch for provisioned secret: got %q, reference produced %q", ours, theirs)
	}
}
