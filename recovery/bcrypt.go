package recovery

import "golang.org/x/crypto/bcrypt"

// Hasher hashes recovery codes for storage and verifies user input.
type Hasher interface {
	// Hash returns a one-way hash of code suitable for storage.
	Hash(code string) ([]byte, error)
	// Verify reports whether code matches the stored hash.
	Verify(hashed []byte, code string) bool
}

// Bcrypt implements Hasher using bcrypt.
//
// Recovery codes already carry enough entropy that a pepper adds little, so
// unlike password hashing only the cost is configurable.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a bcrypt-based hasher. cost controls the hashing work
// factor; values outside bcrypt's valid range fall back to its default.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash hashes a recovery code using bcrypt.
func (h *Bcrypt) Hash(code string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(code), h.cost)
}

// Verify reports whether code matches the hashed value.
func (h *Bcrypt) Verify(hashed []byte, code string) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(code)) == nil
}
