package hashes

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const abcSHA256 = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestFormatHexAndOCI(t *testing.T) {
	sum, err := Sum("sha256", []byte("abc"))
	require.NoError(t, err)

	s, err := Format("sha256", sum, "")
	require.NoError(t, err)
	assert.Equal(t, abcSHA256, s)

	s, err = Format("SHA256", sum, FormatOCI)
	require.NoError(t, err)
	assert.Equal(t, "sha256:"+abcSHA256, s)

	md5sum, err := Sum("md5", []byte("abc"))
	require.NoError(t, err)
	_, err = Format("md5", md5sum, FormatOCI)
	assert.ErrorIs(t, err, ErrFormatUnsupported)

	_, err = Format("sha256", sum, "base64")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatOCIRejectsWrongLength(t *testing.T) {
	_, err := Format("sha512", make([]byte, 32), FormatOCI)
	assert.Error(t, err)
}

func TestMultihashRoundTrip(t *testing.T) {
	for _, name := range []string{"md5", "sha1", "sha256", "sha512", "sha3-256", "blake2b-256", "blake2s-256"} {
		t.Run(name, func(t *testing.T) {
			sum, err := Sum(name, []byte("The quick brown fox"))
			require.NoError(t, err)
			s, err := Format(name, sum, FormatMultihash)
			require.NoError(t, err)

			got, back, err := ParseDigest(s)
			require.NoError(t, err)
			assert.Equal(t, name, got)
			assert.Equal(t, sum, back)
		})
	}

	sum, _ := Sum("sha256", []byte("abc"))
	s, err := Format("sha256", sum, FormatMultihash)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "Qm"), s)

	_, err = Format("ripemd160", make([]byte, 20), FormatMultihash)
	assert.ErrorIs(t, err, ErrFormatUnsupported)
}

func TestParseDigest(t *testing.T) {
	want, _ := hex.DecodeString(abcSHA256)

	alg, sum, err := ParseDigest(" " + abcSHA256 + "\n")
	require.NoError(t, err)
	assert.Empty(t, alg)
	assert.Equal(t, want, sum)

	alg, sum, err = ParseDigest("sha256:" + abcSHA256)
	require.NoError(t, err)
	assert.Equal(t, "sha256", alg)
	assert.Equal(t, want, sum)

	for _, bad := range []string{"sha256:" + abcSHA256[:10], "sha256:XYZ", "0OIl", "abc"} {
		_, _, err := ParseDigest(bad)
		assert.ErrorIs(t, err, ErrMalformedDigest, bad)
	}
}
