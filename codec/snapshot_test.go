package codec

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dsgo/bitvector"
)

func buildVector(t *testing.T, n int, seed int64) *bitvector.BitVector {
	t.Helper()
	v, err := bitvector.NewWithSize(n)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		if rng.Intn(3) == 0 {
			require.NoError(t, v.Set(i, true))
		}
	}
	return v
}

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		ct   CompressionType
	}{
		{name: "none", ct: CompressionNone},
		{name: "lz4", ct: CompressionLZ4},
		{name: "zstd", ct: CompressionZSTD},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := buildVector(t, 5000, 42)

			var buf bytes.Buffer
			n, err := EncodeBitVector(&buf, v, tc.ct)
			require.NoError(t, err)
			assert.Equal(t, int64(buf.Len()), n)

			got, err := DecodeBitVector(&buf)
			require.NoError(t, err)

			require.Equal(t, v.Len(), got.Len())
			assert.Equal(t, v.ToWords(), got.ToWords())
		})
	}
}

func TestRoundTripEmpty(t *testing.T) {
	v, err := bitvector.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = EncodeBitVector(&buf, v, CompressionZSTD)
	require.NoError(t, err)

	got, err := DecodeBitVector(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

// Flags are resolved on encode: the decoded vector shows the same bits
// without carrying reversal or complement state.
func TestRoundTripResolvesFlags(t *testing.T) {
	v, err := bitvector.NewWithSize(100)
	require.NoError(t, err)
	for i := 0; i < 100; i += 4 {
		require.NoError(t, v.Set(i, true))
	}
	v.Reverse()
	v.Complement()

	var buf bytes.Buffer
	_, err = EncodeBitVector(&buf, v, CompressionLZ4)
	require.NoError(t, err)

	got, err := DecodeBitVector(&buf)
	require.NoError(t, err)

	require.Equal(t, 100, got.Len())
	assert.Equal(t, v.Count(), got.Count())
	for i := 0; i < 100; i++ {
		want, err := v.Get(i)
		require.NoError(t, err)
		b, err := got.Get(i)
		require.NoError(t, err)
		require.Equal(t, want, b, "bit %d", i)
	}
}

// A sparse vector should shrink noticeably under compression.
func TestCompressionReducesSize(t *testing.T) {
	v, err := bitvector.NewWithSize(1 << 16)
	require.NoError(t, err)
	require.NoError(t, v.Set(100, true))
	require.NoError(t, v.Set(60000, true))

	var raw, compressed bytes.Buffer
	_, err = EncodeBitVector(&raw, v, CompressionNone)
	require.NoError(t, err)
	_, err = EncodeBitVector(&compressed, v, CompressionZSTD)
	require.NoError(t, err)

	assert.Less(t, compressed.Len(), raw.Len()/4)
}

func TestDecodeErrors(t *testing.T) {
	v := buildVector(t, 256, 7)
	var buf bytes.Buffer
	_, err := EncodeBitVector(&buf, v, CompressionZSTD)
	require.NoError(t, err)
	good := buf.Bytes()

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte{}, good...)
		data[0] = 'X'
		_, err := DecodeBitVector(bytes.NewReader(data))
		require.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("bad version", func(t *testing.T) {
		data := append([]byte{}, good...)
		data[4] = 99
		_, err := DecodeBitVector(bytes.NewReader(data))
		require.ErrorIs(t, err, ErrBadVersion)
	})

	t.Run("unknown compression", func(t *testing.T) {
		data := append([]byte{}, good...)
		data[5] = 42
		_, err := DecodeBitVector(bytes.NewReader(data))
		require.ErrorIs(t, err, ErrUnknownCompression)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := DecodeBitVector(bytes.NewReader(good[:3]))
		require.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("corrupt block", func(t *testing.T) {
		_, err := DecodeBitVector(bytes.NewReader(good[:10]))
		require.Error(t, err)
	})
}

func TestEncodeUnknownCompression(t *testing.T) {
	v := buildVector(t, 64, 1)
	var buf bytes.Buffer
	_, err := EncodeBitVector(&buf, v, CompressionType(200))
	require.ErrorIs(t, err, ErrUnknownCompression)
}
