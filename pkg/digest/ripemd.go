package digest

import "math/bits"

// RIPEMD128, RIPEMD160, RIPEMD256 and RIPEMD320 (Dobbertin, Bosselaers,
// Preneel). Each runs two parallel lines over the block. The 128 and 160
// variants fold both lines into one state; the 256 and 320 variants keep
// the lines apart and exchange one register between them after every round.
var (
	ripemd128Desc = &Descriptor[uint32]{
		Name:     "RIPEMD-128",
		Size:     16,
		IV:       []uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476},
		Compress: ripemd128.compress,
	}
	ripemd160Desc = &Descriptor[uint32]{
		Name:     "RIPEMD-160",
		Size:     20,
		IV:       []uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0},
		Compress: ripemd160.compress,
	}
	ripemd256Desc = &Descriptor[uint32]{
		Name: "RIPEMD-256",
		Size: 32,
		IV: []uint32{
			0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476,
			0x76543210, 0xFEDCBA98, 0x89ABCDEF, 0x01234567,
		},
		Compress: ripemd256.compress,
	}
	ripemd320Desc = &Descriptor[uint32]{
		Name: "RIPEMD-320",
		Size: 40,
		IV: []uint32{
			0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0,
			0x76543210, 0xFEDCBA98, 0x89ABCDEF, 0x01234567, 0x3C2D1E0F,
		},
		Compress: ripemd320.compress,
	}
)

func NewRIPEMD128() *Hasher[uint32] { return New(ripemd128Desc) }
func NewRIPEMD160() *Hasher[uint32] { return New(ripemd160Desc) }
func NewRIPEMD256() *Hasher[uint32] { return New(ripemd256Desc) }
func NewRIPEMD320() *Hasher[uint32] { return New(ripemd320Desc) }

// ripemdVariant selects the line width and how the two lines meet.
type ripemdVariant struct {
	words int // registers per line
	kr    []uint32
	// swap lists, per round, the line position exchanged between the two
	// lines once the round is done. Nil means both lines start from the
	// same state and are folded together at the end.
	swap []int
}

var (
	ripemd128 = &ripemdVariant{words: 4, kr: ripemdKR4[:]}
	ripemd160 = &ripemdVariant{words: 5, kr: ripemdKR5[:]}
	ripemd256 = &ripemdVariant{words: 4, kr: ripemdKR4[:], swap: []int{0, 1, 2, 3}}
	ripemd320 = &ripemdVariant{words: 5, kr: ripemdKR5[:], swap: []int{1, 3, 0, 2, 4}}
)

var (
	ripemdKL  = [5]uint32{0x00000000, 0x5A827999, 0x6ED9EBA1, 0x8F1BBCDC, 0xA953FD4E}
	ripemdKR5 = [5]uint32{0x50A28BE6, 0x5C4DD124, 0x6D703EF3, 0x7A6D76E9, 0x00000000}
	ripemdKR4 = [4]uint32{0x50A28BE6, 0x5C4DD124, 0x6D703EF3, 0x00000000}

	ripemdRL = [5][16]uint8{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		{7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8},
		{3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12},
		{1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2},
		{4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13},
	}
	ripemdRR = [5][16]uint8{
		{5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12},
		{6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2},
		{15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13},
		{8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14},
		{12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11},
	}
	ripemdSL = [5][16]uint8{
		{11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8},
		{7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12},
		{11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5},
		{11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12},
		{9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6},
	}
	ripemdSR = [5][16]uint8{
		{8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6},
		{9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11},
		{9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5},
		{15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8},
		{8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11},
	}
)

func ripemdF(round int, x, y, z uint32) uint32 {
	switch round {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y &^ z)
	default:
		return x ^ (y | ^z)
	}
}

// ripemdStep runs one step on a line. The registers shift one position per
// step, so v[0] always holds the register being replaced.
func ripemdStep(v []uint32, f, x, k uint32, s uint8) {
	if len(v) == 4 {
		t := bits.RotateLeft32(v[0]+f+x+k, int(s))
		v[0], v[1], v[2], v[3] = v[3], t, v[1], v[2]
		return
	}
	t := bits.RotateLeft32(v[0]+f+x+k, int(s)) + v[4]
	v[0], v[1], v[2], v[3], v[4] = v[4], t, v[1], bits.RotateLeft32(v[2], 10), v[3]
}

func (r *ripemdVariant) compress(s []uint32, x *[16]uint32) {
	n := r.words

	var left, right [5]uint32
	l, rr := left[:n], right[:n]
	copy(l, s[:n])
	if r.swap != nil {
		copy(rr, s[n:2*n])
	} else {
		copy(rr, s[:n])
	}

	for j := range r.kr {
		r.round(j, l, rr, x)
		r.exchange(j, l, rr)
	}

	if r.swap != nil {
		for i := 0; i < n; i++ {
			s[i] += l[i]
			s[i+n] += rr[i]
		}
		return
	}

	t := s[1] + l[2] + rr[3]
	for i := 1; i < n-1; i++ {
		s[i] = s[i+1] + l[(i+2)%n] + rr[(i+3)%n]
	}
	s[n-1] = s[0] + l[1] + rr[2]
	s[0] = t
}

// round runs the sixteen steps of round j on both lines.
func (r *ripemdVariant) round(j int, l, rr []uint32, x *[16]uint32) {
	last := len(r.kr) - 1
	for i := 0; i < 16; i++ {
		ripemdStep(l, ripemdF(j, l[1], l[2], l[3]), x[ripemdRL[j][i]], ripemdKL[j], ripemdSL[j][i])
		ripemdStep(rr, ripemdF(last-j, rr[1], rr[2], rr[3]), x[ripemdRR[j][i]], r.kr[j], ripemdSR[j][i])
	}
}

// exchange swaps the line registers scheduled after round j.
func (r *ripemdVariant) exchange(j int, l, rr []uint32) {
	if r.swap == nil {
		return
	}
	p := r.swap[j]
	l[p], rr[p] = rr[p], l[p]
}
