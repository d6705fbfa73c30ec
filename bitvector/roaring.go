package bitvector

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/dsgo"
)

// ToRoaring exports the positions of the logical one bits as a roaring
// bitmap, for interchange with systems that consume compressed posting
// sets. Flags are resolved during the walk; the bitmap carries no notion
// of the vector's length.
func (v *BitVector) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i, b := range v.All() {
		if b {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// FromRoaring builds an n-bit vector with the bitmap's members set.
// Members at or beyond n are rejected rather than truncated.
func FromRoaring(rb *roaring.Bitmap, n int, optFns ...func(*options)) (*BitVector, error) {
	if n < 0 || n > math.MaxUint32 {
		return nil, dsgo.NewInvalidConfiguration("bitLength", n)
	}

	v, err := NewWithSize(n, optFns...)
	if err != nil {
		return nil, err
	}

	it := rb.Iterator()
	for it.HasNext() {
		i := it.Next()
		if err := v.Set(int(i), true); err != nil {
			return nil, err
		}
	}
	return v, nil
}
