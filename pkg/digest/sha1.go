package digest

import "math/bits"

// SHA1 (FIPS 180-4).
var sha1Desc = &Descriptor[uint32]{
	Name:      "SHA-1",
	Size:      20,
	BigEndian: true,
	IV:        []uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0},
	Compress:  sha1Block,
}

// NewSHA1 returns a hasher computing SHA-1.
func NewSHA1() *Hasher[uint32] { return New(sha1Desc) }

func sha1Block(s []uint32, x *[16]uint32) {
	var w [80]uint32
	copy(w[:], x[:])
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch i / 20 {
		case 0:
			f, k = (b&(c^d))^d, 0x5A827999
		case 1:
			f, k = b^c^d, 0x6ED9EBA1
		case 2:
			f, k = (b&c)|((b^c)&d), 0x8F1BBCDC
		default:
			f, k = b^c^d, 0xCA62C1D6
		}
		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
}
