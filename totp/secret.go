package totp

import (
	"crypto/rand"
	"fmt"

	"github.com/shandysiswandi/gotp/base32"
)

// defaultSecretSize is the 20-byte key length recommended by RFC 4226/6238.
const defaultSecretSize = 20

// NewSecret returns a new random shared secret of size bytes, Base32-encoded
// for sharing with an authenticator app (e.g. inside an otpauth:// URI).
// A size of zero or less uses the recommended 20 bytes.
//
// The raw bytes never leave this function; callers hold only the encoded
// form and must take care never to log it.
func NewSecret(size int) (string, error) {
	if size <= 0 {
		size = defaultSecretSize
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("totp: reading random source: %w", err)
	}
	return base32.Encode(buf), nil
}
