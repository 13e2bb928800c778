package hashes

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu/digestkit/internal/vectors"
)

func TestGetUnknown(t *testing.T) {
	_, err := Get("sha257")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)

	a, err := Get("  SHA256 ")
	require.NoError(t, err)
	assert.Equal(t, "sha256", a.Name)
	assert.Equal(t, 32, a.Size)
	assert.Equal(t, 64, a.BlockSize)
	assert.True(t, a.Native)
}

func TestListIsSortedAndComplete(t *testing.T) {
	names := List()
	assert.IsIncreasing(t, names)
	for _, want := range []string{
		"md4", "md5", "sha1", "sha224", "sha256", "sha384", "sha512",
		"sha512-224", "sha512-256", "ripemd128", "ripemd160", "ripemd256",
		"ripemd320", "ntlm", "sha3-256", "blake2b-512", "sm3", "whirlpool",
		"streebog-256", "gost94",
	} {
		assert.Contains(t, names, want)
	}
	assert.Len(t, All(), len(names))
}

func TestSumPublishedVectors(t *testing.T) {
	for _, v := range vectors.Published {
		if v.Repeat != 1 {
			continue
		}
		sum, err := Sum(v.Algorithm, []byte(v.Input))
		require.NoError(t, err)
		assert.Equal(t, v.Digest, hex.EncodeToString(sum), "%s(%q)", v.Algorithm, v.Input)
	}
}

func TestSumReader(t *testing.T) {
	sum, err := SumReader("md5", bytes.NewReader([]byte("abc")))
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hex.EncodeToString(sum))
}

func TestExternalAlgorithms(t *testing.T) {
	cases := map[string]string{
		"sha3-256":    "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		"blake2b-256": "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319",
		"blake2s-256": "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982",
		"sm3":         "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0",
	}
	for name, want := range cases {
		sum, err := Sum(name, []byte("abc"))
		require.NoError(t, err)
		assert.Equal(t, want, hex.EncodeToString(sum), name)
	}
	for _, a := range All() {
		h := a.New()
		assert.Equal(t, a.Size, h.Size(), a.Name)
		assert.Len(t, h.Sum(nil), a.Size, a.Name)
	}
}

func TestNewHMAC(t *testing.T) {
	m, err := NewHMAC("sha256", []byte("key"))
	require.NoError(t, err)
	m.Write([]byte("The quick brown fox jumps over the lazy dog"))
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", hex.EncodeToString(m.Sum(nil)))

	_, err = NewHMAC("sha3-256", []byte("key"))
	require.ErrorIs(t, err, ErrNoHMAC)
	_, err = NewHMAC("nope", nil)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestNativeMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, a := range All() {
		if !a.Native {
			continue
		}
		ref, err := Reference(a.Name)
		require.NoError(t, err, a.Name)
		for n := 0; n < 300; n += 17 {
			msg := make([]byte, n)
			rng.Read(msg)
			h, r := a.New(), ref()
			h.Write(msg)
			r.Write(msg)
			require.Equal(t, r.Sum(nil), h.Sum(nil), "%s over %d bytes", a.Name, n)
		}
	}
	_, err := Reference("whirlpool")
	assert.Error(t, err)
}

func TestMD5Batch(t *testing.T) {
	msgs := [][]byte{[]byte(""), []byte("abc"), bytes.Repeat([]byte("x"), 1000)}
	sums := MD5Batch(msgs)
	require.Len(t, sums, len(msgs))
	for i, m := range msgs {
		want, _ := Sum("md5", m)
		assert.Equal(t, want, sums[i])
	}
}
