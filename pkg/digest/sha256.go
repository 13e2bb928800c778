package digest

import "math/bits"

// SHA224 and SHA256 (FIPS 180-4) share the 32-bit SHA-2 compression.
var (
	sha224Desc = &Descriptor[uint32]{
		Name:      "SHA-224",
		Size:      28,
		BigEndian: true,
		IV: []uint32{
			0xC1059ED8, 0x367CD507, 0x3070DD17, 0xF70E5939,
			0xFFC00B31, 0x68581511, 0x64F98FA7, 0xBEFA4FA4,
		},
		Compress: sha256Block,
	}
	sha256Desc = &Descriptor[uint32]{
		Name:      "SHA-256",
		Size:      32,
		BigEndian: true,
		IV: []uint32{
			0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
			0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
		},
		Compress: sha256Block,
	}
)

// NewSHA224 returns a hasher computing SHA-224.
func NewSHA224() *Hasher[uint32] { return New(sha224Desc) }

// NewSHA256 returns a hasher computing SHA-256.
func NewSHA256() *Hasher[uint32] { return New(sha256Desc) }

var sha256K = [64]uint32{
	0x428A2F98, 0x71374491, 0xB5C0FBCF, 0xE9B5DBA5, 0x3956C25B, 0x59F111F1, 0x923F82A4, 0xAB1C5ED5,
	0xD807AA98, 0x12835B01, 0x243185BE, 0x550C7DC3, 0x72BE5D74, 0x80DEB1FE, 0x9BDC06A7, 0xC19BF174,
	0xE49B69C1, 0xEFBE4786, 0x0FC19DC6, 0x240CA1CC, 0x2DE92C6F, 0x4A7484AA, 0x5CB0A9DC, 0x76F988DA,
	0x983E5152, 0xA831C66D, 0xB00327C8, 0xBF597FC7, 0xC6E00BF3, 0xD5A79147, 0x06CA6351, 0x14292967,
	0x27B70A85, 0x2E1B2138, 0x4D2C6DFC, 0x53380D13, 0x650A7354, 0x766A0ABB, 0x81C2C92E, 0x92722C85,
	0xA2BFE8A1, 0xA81A664B, 0xC24B8B70, 0xC76C51A3, 0xD192E819, 0xD6990624, 0xF40E3585, 0x106AA070,
	0x19A4C116, 0x1E376C08, 0x2748774C, 0x34B0BCB5, 0x391C0CB3, 0x4ED8AA4A, 0x5B9CCA4F, 0x682E6FF3,
	0x748F82EE, 0x78A5636F, 0x84C87814, 0x8CC70208, 0x90BEFFFA, 0xA4506CEB, 0xBEF9A3F7, 0xC67178F2,
}

func sha256Block(s []uint32, x *[16]uint32) {
	var w [64]uint32
	copy(w[:], x[:])
	for i := 16; i < 64; i++ {
		v1, v2 := w[i-15], w[i-2]
		sigma0 := bits.RotateLeft32(v1, -7) ^ bits.RotateLeft32(v1, -18) ^ v1>>3
		sigma1 := bits.RotateLeft32(v2, -17) ^ bits.RotateLeft32(v2, -19) ^ v2>>10
		w[i] = w[i-16] + sigma0 + w[i-7] + sigma1
	}

	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
	for i := 0; i < 64; i++ {
		t1 := h + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
			((e & (f ^ g)) ^ g) + sha256K[i] + w[i]
		t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
			((a & b) | ((a ^ b) & c))
		a, b, c, d, e, f, g, h = t1+t2, a, b, c, d+t1, e, f, g
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
	s[5] += f
	s[6] += g
	s[7] += h
}
