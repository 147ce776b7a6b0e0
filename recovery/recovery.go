package recovery

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// alphabet is the character set used for recovery code generation.
//
// Digits plus both letter cases give 62 symbols, high entropy per character
// while staying easy to type.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Generator produces batches of cryptographically secure recovery codes
// formatted as dash-separated groups, e.g. XXXX-XXXX-XXXX.
type Generator struct {
	count    int
	groups   int
	groupLen int
}

// Option configures a Generator.
type Option func(*Generator)

// WithCount sets how many codes Generate returns. Values below 1 keep the
// default of 10.
func WithCount(n int) Option {
	return func(g *Generator) {
		if n >= 1 {
			g.count = n
		}
	}
}

// WithGroups sets the number of groups per code and the characters per
// group. Non-positive values keep the defaults (3 groups of 4).
func WithGroups(groups, groupLen int) Option {
	return func(g *Generator) {
		if groups > 0 {
			g.groups = groups
		}
		if groupLen > 0 {
			g.groupLen = groupLen
		}
	}
}

// New returns a Generator. The defaults produce 10 codes of the form
// XXXX-XXXX-XXXX.
func New(opts ...Option) *Generator {
	g := &Generator{count: 10, groups: 3, groupLen: 4}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// Generate produces a batch of unique recovery codes using crypto/rand.
func (g *Generator) Generate() ([]string, error) {
	out := make([]string, 0, g.count)
	seen := make(map[string]struct{}, g.count)

	for len(out) < g.count {
		code, err := g.generate()
		if err != nil {
			return nil, err
		}

		// extremely unlikely, but prevents accidental duplicates
		if _, ok := seen[code]; ok {
			continue
		}

		seen[code] = struct{}{}
		out = append(out, code)
	}

	return out, nil
}

func (g *Generator) generate() (string, error) {
	parts := make([]string, 0, g.groups)
	for i := 0; i < g.groups; i++ {
		group, err := randomString(g.groupLen)
		if err != nil {
			return "", err
		}
		parts = append(parts, group)
	}
	return strings.Join(parts, "-"), nil
}

func randomString(n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)

	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("recovery: reading random source: %w", err)
		}
		sb.WriteByte(alphabet[idx.Int64()])
	}

	return sb.String(), nil
}
