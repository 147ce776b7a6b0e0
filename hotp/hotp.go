package hotp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"errors"
	"hash"
	"strconv"
)

// ErrEmptySecret indicates a zero-length secret key.
//
// HMAC itself accepts an empty key, but an empty key here always means the
// caller passed a secret that decoded to nothing, so it is rejected before
// hashing.
var ErrEmptySecret = errors.New("hotp: empty secret")

type options struct {
	// digits is the width of the generated code.
	digits int

	// newHash constructs the HMAC's underlying hash function.
	newHash func() hash.Hash
}

// Option configures code generation (digit width and hash algorithm).
type Option func(*options)

func newOptions(opts ...Option) options {
	o := options{digits: 6, newHash: sha1.New}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	return o
}

// WithDigits sets the width of the generated code. Values outside 1-8 fall
// back to the default 6; authenticator apps only use 6 or 8.
func WithDigits(n int) Option {
	return func(o *options) {
		if n >= 1 && n <= 8 {
			o.digits = n
		}
	}
}

// WithHash sets the constructor for the HMAC's underlying hash function.
// The default is crypto/sha1, the algorithm in the RFC 4226 test suite and
// the one authenticator apps assume.
func WithHash(newHash func() hash.Hash) Option {
	return func(o *options) {
		if newHash != nil {
			o.newHash = newHash
		}
	}
}

// Compute returns the HOTP code for the given secret and counter value.
//
// The counter is serialized as 8 big-endian bytes and signed with
// HMAC(hash, secret); RFC 4226 dynamic truncation then selects 31 bits of
// the digest, which are reduced modulo 10^digits and left-padded with
// zeros. The result is a pure function of (secret, counter, options).
func Compute(secret []byte, counter uint64, opts ...Option) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}

	o := newOptions(opts...)

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(o.newHash, secret)
	mac.Write(msg[:])
	digest := mac.Sum(nil)

	return format(truncate(digest), o.digits), nil
}

// truncate applies RFC 4226 dynamic truncation: the low nibble of the last
// digest byte picks an offset, and 4 bytes from that offset form a
// big-endian value with the sign bit masked off.
func truncate(digest []byte) uint32 {
	offset := digest[len(digest)-1] & 0x0f
	return uint32(digest[offset]&0x7f)<<24 |
		uint32(digest[offset+1])<<16 |
		uint32(digest[offset+2])<<8 |
		uint32(digest[offset+3])
}

func format(code uint32, digits int) string {
	mod := uint32(1)
	for i := 0; i < digits; i++ {
		mod *= 10
	}

	s := strconv.FormatUint(uint64(code%mod), 10)
	for len(s) < digits {
		s = "0" + s
	}
	return s
}
