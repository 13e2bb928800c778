package hashes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRanking(t *testing.T) {
	got := Detect("900150983cd24fb0d6963f7d28e17f72")
	require.NotEmpty(t, got)
	assert.Equal(t, "md5", got[0])
	assert.Contains(t, got, "ntlm")
	assert.Contains(t, got, "ripemd128")

	got = Detect(strings.ToUpper("8846f7eaee8fb117ad06bdd830b7586c"))
	require.NotEmpty(t, got)
	assert.Equal(t, "ntlm", got[0])

	got = Detect("a9993e364706816aba3e25717850c26c9cd0d89d")
	assert.Equal(t, []string{"sha1", "ripemd160"}, got)

	got = Detect(strings.Repeat("ab", 32))
	require.NotEmpty(t, got)
	assert.Equal(t, "sha256", got[0])
	assert.Contains(t, got, "sha512-256")
	assert.Contains(t, got, "ripemd256")
	assert.Contains(t, got, "streebog-256")
}

func TestDetectRejectsNonHex(t *testing.T) {
	assert.Nil(t, Detect(""))
	assert.Nil(t, Detect("not a digest"))
	assert.Empty(t, Detect("abc"))
}

func TestValidate(t *testing.T) {
	ok, note := Validate("sha1", "a9993e364706816aba3e25717850c26c9cd0d89d")
	assert.True(t, ok)
	assert.Empty(t, note)

	ok, note = Validate("sha1", "a9993e")
	assert.False(t, ok)
	assert.Equal(t, "sha1 must be 40 hex chars", note)

	ok, note = Validate("md5", "900150983CD24FB0D6963F7D28E17F72")
	assert.True(t, ok)
	assert.Contains(t, note, "NTLM")

	ok, _ = Validate("ripemd320", strings.Repeat("zz", 40))
	assert.False(t, ok)

	ok, note = Validate("whatever", "00")
	assert.False(t, ok)
	assert.Contains(t, note, "unknown algorithm")
}
