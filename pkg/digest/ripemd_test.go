package digest

import "testing"

func testBlock() *[16]uint32 {
	var x [16]uint32
	for i := range x {
		x[i] = uint32(i)*0x9E3779B9 + 1
	}
	return &x
}

// Line registers A..E after each round group and its exchange, for
// testBlock compressed from the IV. Computed with the register-named
// description of RIPEMD-256/320 in Dobbertin, Bosselaers and Preneel.
var ripemdGroupStates = []struct {
	r           *ripemdVariant
	iv          []uint32
	left, right [][]uint32
}{
	{
		r:  ripemd256,
		iv: ripemd256Desc.IV,
		left: [][]uint32{
			{0xF7985101, 0x8FADAE8A, 0x2BE86DA0, 0xF33A72E2},
			{0xF29282EB, 0x82638644, 0xB8CC9B75, 0x5D16F6A1},
			{0xD48F24C7, 0x046D9A13, 0x65DA1CFA, 0x3D7CFEE7},
			{0xFCF916BC, 0xECFB874C, 0xC70EB525, 0xF4B56E3C},
		},
		right: [][]uint32{
			{0x87D9357E, 0x06D67C22, 0x1500B42F, 0x45EFEA51},
			{0x5A1BFD7F, 0x6275AC99, 0xE5EAA40B, 0x0E679BF6},
			{0x41F56AA7, 0x0D571A4E, 0x775F8F05, 0x00858165},
			{0x5780841A, 0x3D463AB8, 0x67BDB378, 0x24E2D564},
		},
	},
	{
		r:  ripemd320,
		iv: ripemd320Desc.IV,
		left: [][]uint32{
			{0x7A4B76EE, 0xC5BCD745, 0x8028C593, 0x33EE1AA8, 0x0A6FD101},
			{0x58745DD3, 0x4C8DD8A2, 0x907E1E94, 0x185550CC, 0x0B36EB26},
			{0x985C649B, 0xAD8983F7, 0x8599F2AD, 0x2F16D997, 0x8E7C238D},
			{0x51C9D7AB, 0x2ECBF0A6, 0x6926C941, 0x97373039, 0x0D338194},
			{0x2BEE9E25, 0x13EB470E, 0x41693705, 0x32CDD628, 0x453D896F},
		},
		right: [][]uint32{
			{0x6A042362, 0x862D39F6, 0x82D99D16, 0x00FF893D, 0x6C8B1A92},
			{0xE28C775C, 0x5DBA4018, 0x47A1BD9D, 0xF7E66F9D, 0x09FA2B25},
			{0x932ECF25, 0x9606534B, 0x727DA9A7, 0xF34C8355, 0x3332EA30},
			{0xBD9CC8C1, 0xCF143CE3, 0xA9B006B8, 0x410B41EF, 0xE0045F56},
			{0x57A3B053, 0x71E568FA, 0xF2A66B4F, 0x2A7B81B2, 0x9C3488B2},
		},
	},
}

func TestRIPEMDRoundGroups(t *testing.T) {
	for _, tc := range ripemdGroupStates {
		n := tc.r.words
		x := testBlock()

		var left, right [5]uint32
		l, rr := left[:n], right[:n]
		copy(l, tc.iv[:n])
		copy(rr, tc.iv[n:])

		for j := range tc.r.kr {
			tc.r.round(j, l, rr, x)
			tc.r.exchange(j, l, rr)
			for i := 0; i < n; i++ {
				if l[i] != tc.left[j][i] || rr[i] != tc.right[j][i] {
					t.Fatalf("%d-word lines after round %d: register %c = %08x/%08x, want %08x/%08x",
						n, j, 'A'+i, l[i], rr[i], tc.left[j][i], tc.right[j][i])
				}
			}
		}

		got := append([]uint32(nil), tc.iv...)
		tc.r.compress(got, testBlock())
		for i := 0; i < n; i++ {
			if got[i] != tc.iv[i]+l[i] || got[i+n] != tc.iv[i+n]+rr[i] {
				t.Fatalf("%d-word compress disagrees with the round groups at word %d", n, i)
			}
		}
	}
}

func TestRIPEMDMergedVariantsNeverExchange(t *testing.T) {
	for _, r := range []*ripemdVariant{ripemd128, ripemd160} {
		l := []uint32{1, 2, 3, 4, 5}[:r.words]
		rr := []uint32{6, 7, 8, 9, 10}[:r.words]
		for j := range r.kr {
			r.exchange(j, l, rr)
		}
		if l[0] != 1 || rr[0] != 6 {
			t.Fatalf("%d-word merged variant exchanged registers", r.words)
		}
	}
}

// Dropping the exchanges must change the output; otherwise the wide
// variants would silently degrade to two independent narrow lines.
func TestRIPEMDExchangeAffectsOutput(t *testing.T) {
	noSwap := &ripemdVariant{words: 4, kr: ripemdKR4[:]}
	a := append([]uint32(nil), ripemd256Desc.IV...)
	ripemd256.compress(a, testBlock())

	x := testBlock()
	var l, rr [4]uint32
	copy(l[:], ripemd256Desc.IV[:4])
	copy(rr[:], ripemd256Desc.IV[4:])
	for j := range noSwap.kr {
		noSwap.round(j, l[:], rr[:], x)
	}
	same := true
	for i := 0; i < 4; i++ {
		if a[i] != ripemd256Desc.IV[i]+l[i] || a[i+4] != ripemd256Desc.IV[i+4]+rr[i] {
			same = false
		}
	}
	if same {
		t.Fatalf("RIPEMD-256 output does not depend on the line exchanges")
	}
}
