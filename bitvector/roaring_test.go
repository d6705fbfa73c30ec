package bitvector

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRoaring(t *testing.T) {
	v, err := NewWithSize(300)
	require.NoError(t, err)
	for _, i := range []int{0, 7, 64, 65, 299} {
		require.NoError(t, v.Set(i, true))
	}

	rb := v.ToRoaring()
	assert.Equal(t, uint64(5), rb.GetCardinality())
	for _, i := range []int{0, 7, 64, 65, 299} {
		assert.True(t, rb.Contains(uint32(i)))
	}
	assert.False(t, rb.Contains(1))
}

// The export reflects the logical view, so flags are resolved first.
func TestToRoaringHonorsFlags(t *testing.T) {
	v, err := New()
	require.NoError(t, err)
	for _, b := range []bool{true, false, false, true} {
		v.Append(b)
	}

	v.Reverse() // view: [true, false, false, true] -> unchanged (palindrome)
	v.Complement()

	rb := v.ToRoaring()
	assert.Equal(t, uint64(2), rb.GetCardinality())
	assert.True(t, rb.Contains(1))
	assert.True(t, rb.Contains(2))
}

func TestFromRoaring(t *testing.T) {
	rb := roaring.BitmapOf(2, 3, 100)

	v, err := FromRoaring(rb, 128)
	require.NoError(t, err)

	assert.Equal(t, 128, v.Len())
	assert.Equal(t, 3, v.Count())
	assert.True(t, mustBit(t, v, 2))
	assert.True(t, mustBit(t, v, 100))
	assert.False(t, mustBit(t, v, 4))
}

func TestFromRoaringMemberOutOfRange(t *testing.T) {
	rb := roaring.BitmapOf(5, 200)

	_, err := FromRoaring(rb, 100)
	require.Error(t, err)

	_, err = FromRoaring(rb, -1)
	require.Error(t, err)
}

func TestRoaringRoundTrip(t *testing.T) {
	v, err := NewWithSize(1000)
	require.NoError(t, err)
	for i := 0; i < 1000; i += 7 {
		require.NoError(t, v.Set(i, true))
	}

	v2, err := FromRoaring(v.ToRoaring(), v.Len())
	require.NoError(t, err)

	assert.Equal(t, v.Count(), v2.Count())
	for i := 0; i < 1000; i++ {
		require.Equal(t, mustBit(t, v, i), mustBit(t, v2, i))
	}
}
