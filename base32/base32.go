package base32

import "strings"

// Alphabet is the 32-character set defined by RFC 4648 section 6.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// Encode returns the Base32 text for src without padding characters.
//
// The input is consumed as a continuous bitstream, most significant bit
// first. The output length is always ceil(len(src)*8/5).
func Encode(src []byte) string {
	var sb strings.Builder
	sb.Grow((len(src)*8 + 4) / 5)

	// acc needs at least 13 bits of headroom: one input byte plus up to
	// four leftover bits. uint is 32 bits at minimum, so it is safe even
	// on 32-bit platforms.
	var acc uint
	var bits uint

	for _, b := range src {
		acc = acc<<8 | uint(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			sb.WriteByte(Alphabet[acc>>bits&0x1f])
		}
	}

	if bits > 0 {
		// 1-4 leftover bits fill the high end of one last group.
		sb.WriteByte(Alphabet[acc<<(5-bits)&0x1f])
	}

	return sb.String()
}

// Decode returns the bytes represented by the Base32 text s.
//
// Decode is permissive: lowercase letters are accepted, trailing '='
// padding is ignored, and any other character outside the alphabet is
// skipped rather than rejected. It never fails; on well-formed RFC 4648
// input it is the exact inverse of Encode. Trailing bits that do not fill
// a whole byte are padding artifacts and are discarded.
func Decode(s string) []byte {
	s = strings.TrimRight(strings.ToUpper(s), "=")

	out := make([]byte, 0, len(s)*5/8)

	var acc uint
	var bits uint

	for i := 0; i < len(s); i++ {
		v := strings.IndexByte(Alphabet, s[i])
		if v < 0 {
			continue
		}
		acc = acc<<5 | uint(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
	}

	return out
}
