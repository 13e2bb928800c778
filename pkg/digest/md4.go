package digest

import "math/bits"

// MD4 (RFC 1320). Broken; kept for legacy formats such as NTLM.
var md4Desc = &Descriptor[uint32]{
	Name:     "MD4",
	Size:     16,
	IV:       []uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476},
	Compress: md4Block,
}

// NewMD4 returns a hasher computing MD4.
func NewMD4() *Hasher[uint32] { return New(md4Desc) }

var (
	md4Order2 = [16]uint8{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
	md4Order3 = [16]uint8{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

	md4Shift1 = [4]int{3, 7, 11, 19}
	md4Shift2 = [4]int{3, 5, 9, 13}
	md4Shift3 = [4]int{3, 9, 11, 15}
)

func md4Block(s []uint32, x *[16]uint32) {
	a, b, c, d := s[0], s[1], s[2], s[3]

	for i := 0; i < 16; i++ {
		f := (b & (c ^ d)) ^ d
		a, b, c, d = d, bits.RotateLeft32(a+f+x[i], md4Shift1[i%4]), b, c
	}
	for i := 0; i < 16; i++ {
		g := (b & c) | ((b ^ c) & d)
		a, b, c, d = d, bits.RotateLeft32(a+g+0x5A827999+x[md4Order2[i]], md4Shift2[i%4]), b, c
	}
	for i := 0; i < 16; i++ {
		h := b ^ c ^ d
		a, b, c, d = d, bits.RotateLeft32(a+h+0x6ED9EBA1+x[md4Order3[i]], md4Shift3[i%4]), b, c
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
}
