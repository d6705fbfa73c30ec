package bitvector

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialization(t *testing.T) {
	v, err := NewWithSize(1000)
	require.NoError(t, err)
	require.NoError(t, v.Set(1, true))
	require.NoError(t, v.Set(500, true))
	require.NoError(t, v.Set(999, true))

	var buf bytes.Buffer
	n, err := v.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(8+16*8), n) // length header + 16 words

	v2, err := New()
	require.NoError(t, err)
	_, err = v2.ReadFrom(&buf)
	require.NoError(t, err)

	assert.Equal(t, 1000, v2.Len())
	assert.Equal(t, 3, v2.Count())
	assert.True(t, mustBit(t, v2, 1))
	assert.True(t, mustBit(t, v2, 500))
	assert.True(t, mustBit(t, v2, 999))
}

// WriteTo resolves the lazy flags into the bits, so the round trip
// preserves the observable view, not the internal representation.
func TestSerializationNormalizesFlags(t *testing.T) {
	v, err := New()
	require.NoError(t, err)
	for _, b := range []bool{true, false, true, true, false} {
		v.Append(b)
	}
	v.Prepend(true)
	v.Reverse()
	v.Complement()

	want := toBools(t, v)

	var buf bytes.Buffer
	_, err = v.WriteTo(&buf)
	require.NoError(t, err)

	v2, err := New()
	require.NoError(t, err)
	_, err = v2.ReadFrom(&buf)
	require.NoError(t, err)

	assert.Equal(t, want, toBools(t, v2))
	assert.False(t, v2.reversed)
	assert.False(t, v2.complemented)
	assert.Equal(t, 0, v2.headBit)
}

func TestSerializationEmpty(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = v.WriteTo(&buf)
	require.NoError(t, err)

	v2, err := NewWithSize(10)
	require.NoError(t, err)
	_, err = v2.ReadFrom(&buf)
	require.NoError(t, err)

	assert.Equal(t, 0, v2.Len())
}

func TestReadFromTruncated(t *testing.T) {
	v, err := NewWithSize(200)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = v.WriteTo(&buf)
	require.NoError(t, err)

	truncated := bytes.NewReader(buf.Bytes()[:12])
	v2, err := New()
	require.NoError(t, err)
	_, err = v2.ReadFrom(truncated)
	require.Error(t, err)
}
