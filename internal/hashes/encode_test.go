package hashes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		enc  string
		text string
		want []byte
	}{
		{"", "abc", []byte("abc")},
		{"UTF8", "é", []byte{0xc3, 0xa9}},
		{"utf-16le", "aé", []byte{'a', 0, 0xe9, 0}},
		{"utf-16be", "a", []byte{0, 'a'}},
		{"cp850", "é", []byte{0x82}},
		{"cp437", "é", []byte{0x82}},
		{"latin1", "é", []byte{0xe9}},
		{"windows-1252", "€", []byte{0x80}},
	}
	for _, c := range cases {
		got, err := Encode(c.text, c.enc)
		require.NoError(t, err, c.enc)
		assert.Equal(t, c.want, got, c.enc)
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode("x", "ebcdic")
	require.ErrorIs(t, err, ErrUnknownEncoding)

	_, err = Encode("€", "latin1")
	assert.Error(t, err)

	assert.Contains(t, Encodings(), "cp850")
}
