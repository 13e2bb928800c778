package mask

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse("id?d?l")
	require.NoError(t, err)
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, uint64(260), m.Count())

	m, err = Parse("a??b")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), m.Count())
	assert.Equal(t, "a?b", string(m.At(0, make([]byte, m.Len()))))

	for _, bad := range []string{"", "abc?", "?x"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}

	_, err = Parse("?a?a?a?a?a?a?a?a?a?a?a")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAtMatchesEach(t *testing.T) {
	m, err := Parse("?d-?u?d")
	require.NoError(t, err)
	buf := make([]byte, m.Len())

	var seen []string
	require.NoError(t, m.Each(context.Background(), 0, m.Count(), func(i uint64, msg []byte) bool {
		assert.Equal(t, string(m.At(i, buf)), string(msg))
		seen = append(seen, string(msg))
		return true
	}))
	require.Len(t, seen, 2600)
	assert.Equal(t, "0-A0", seen[0])
	assert.Equal(t, "0-A1", seen[1])
	assert.Equal(t, "0-B0", seen[10])
	assert.Equal(t, "9-Z9", seen[2599])
}

func TestEachRange(t *testing.T) {
	m, err := Parse("?d?d")
	require.NoError(t, err)

	var got []string
	require.NoError(t, m.Each(context.Background(), 42, 1000, func(_ uint64, msg []byte) bool {
		got = append(got, string(msg))
		return len(got) < 3
	}))
	assert.Equal(t, []string{"42", "43", "44"}, got)

	n := 0
	require.NoError(t, m.Each(context.Background(), 95, 1000, func(uint64, []byte) bool { n++; return true }))
	assert.Equal(t, 5, n)
}

func TestEachCancelled(t *testing.T) {
	m, err := Parse("?a?a?a")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = m.Each(ctx, 0, m.Count(), func(uint64, []byte) bool { return true })
	assert.ErrorIs(t, err, context.Canceled)
}
