package bitvector

import (
	"iter"
	"math/bits"

	"github.com/hupe1980/dsgo"
	"github.com/hupe1980/dsgo/dynarray"
)

// WordWidth is the number of bits per storage word.
const WordWidth = 64

// BitVector is a sequence of bits packed into 64-bit words.
//
// Construct with New, NewWithSize or FromRoaring; the zero value is not
// usable.
type BitVector struct {
	words *dynarray.DynamicArray[uint64]

	// bitLen is the logical bit length.
	bitLen int

	// headBit is the physical position of unreversed bit 0 within the word
	// run, in [0, WordWidth). Prepending claims positions below it instead
	// of shifting every bit up; a fresh word is prepended to the array only
	// when it reaches zero. Consequence: the word count satisfies
	// ceil((headBit+bitLen)/WordWidth) rather than plain ceil(bitLen/64),
	// collapsing to the latter whenever headBit is zero.
	headBit int

	reversed     bool
	complemented bool
}

// New creates an empty bit vector.
func New(optFns ...func(*options)) (*BitVector, error) {
	opts := options{
		logger: dsgo.NopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.wordCapacity < 0 {
		return nil, dsgo.NewInvalidConfiguration("wordCapacity", opts.wordCapacity)
	}

	words, err := dynarray.New[uint64](
		dynarray.WithCapacity(opts.wordCapacity),
		dynarray.WithLogger(opts.logger),
	)
	if err != nil {
		return nil, err
	}

	return &BitVector{words: words}, nil
}

// NewWithSize creates a bit vector of n zero bits.
func NewWithSize(n int, optFns ...func(*options)) (*BitVector, error) {
	if n < 0 {
		return nil, dsgo.NewInvalidConfiguration("bitLength", n)
	}

	v, err := New(optFns...)
	if err != nil {
		return nil, err
	}

	for w := 0; w < (n+WordWidth-1)/WordWidth; w++ {
		v.words.Append(0)
	}
	v.bitLen = n

	return v, nil
}

// NewWithOnes creates a bit vector of n one bits. It is the complement of
// a zero vector, so no word is touched beyond allocation.
func NewWithOnes(n int, optFns ...func(*options)) (*BitVector, error) {
	v, err := NewWithSize(n, optFns...)
	if err != nil {
		return nil, err
	}
	v.Complement()
	return v, nil
}

// Len returns the logical bit length.
func (v *BitVector) Len() int { return v.bitLen }

// IsEmpty reports whether the vector holds no bits.
func (v *BitVector) IsEmpty() bool { return v.bitLen == 0 }

// Words returns the number of storage words currently held.
func (v *BitVector) Words() int { return v.words.Len() }

// physPos translates logical bit i into its physical bit position within
// the word run. The reversal flag flips the direction; headBit shifts the
// origin.
func (v *BitVector) physPos(i int) int {
	if v.reversed {
		i = v.bitLen - 1 - i
	}
	return v.headBit + i
}

// rawBit reads the stored bit at physical position p, without complement.
func (v *BitVector) rawBit(p int) bool {
	w, err := v.words.Get(p / WordWidth)
	if err != nil {
		panic("bitvector: word index out of sync with bit length: " + err.Error())
	}
	return (w>>(p%WordWidth))&1 == 1
}

// writeRaw stores bit b at physical position p.
func (v *BitVector) writeRaw(p int, b bool) {
	idx := p / WordWidth
	w, err := v.words.Get(idx)
	if err != nil {
		panic("bitvector: word index out of sync with bit length: " + err.Error())
	}
	mask := uint64(1) << (p % WordWidth)
	if b {
		w |= mask
	} else {
		w &^= mask
	}
	if err := v.words.Set(idx, w); err != nil {
		panic("bitvector: word index out of sync with bit length: " + err.Error())
	}
}

// Get returns the logical value of bit i.
func (v *BitVector) Get(i int) (bool, error) {
	if i < 0 || i >= v.bitLen {
		return false, dsgo.NewIndexOutOfRange(i, v.bitLen)
	}
	return v.rawBit(v.physPos(i)) != v.complemented, nil
}

// Set assigns the logical value of bit i. The complement flag is folded
// into the stored bit so a subsequent Get returns b.
func (v *BitVector) Set(i int, b bool) error {
	if i < 0 || i >= v.bitLen {
		return dsgo.NewIndexOutOfRange(i, v.bitLen)
	}
	v.writeRaw(v.physPos(i), b != v.complemented)
	return nil
}

// pushBack claims the physical position after the current run and stores
// the raw bit there, appending a fresh word when the run hits the boundary.
func (v *BitVector) pushBack(raw bool) {
	p := v.headBit + v.bitLen
	if p == v.words.Len()*WordWidth {
		v.words.Append(0)
	}
	v.writeRaw(p, raw)
}

// pushFront claims the physical position before the current run, prepending
// a fresh word when word 0 is exhausted.
func (v *BitVector) pushFront(raw bool) {
	if v.headBit == 0 {
		v.words.Prepend(0)
		v.headBit = WordWidth
	}
	v.headBit--
	v.writeRaw(v.headBit, raw)
}

// Append adds a bit after the logical last one. Amortized O(1); word
// allocation is inherited from the array's growth policy.
func (v *BitVector) Append(b bool) {
	raw := b != v.complemented
	if v.reversed {
		// The logical end sits at the physical front while reversed.
		v.pushFront(raw)
	} else {
		v.pushBack(raw)
	}
	v.bitLen++
}

// Prepend adds a bit before logical bit 0. Amortized O(1).
func (v *BitVector) Prepend(b bool) {
	raw := b != v.complemented
	if v.reversed {
		v.pushBack(raw)
	} else {
		v.pushFront(raw)
	}
	v.bitLen++
}

// Reverse reverses the logical bit order in O(1) by toggling the reversal
// flag. Words are not reordered; the index translation composes the flag
// with the head-bit offset instead.
func (v *BitVector) Reverse() {
	v.reversed = !v.reversed
}

// Complement logically inverts every bit in O(1). Storage is untouched;
// reads and writes XOR the flag from here on.
func (v *BitVector) Complement() {
	v.complemented = !v.complemented
}

// liveMask masks the physical positions of word k that fall inside the
// live run [headBit, headBit+bitLen). Bits outside it are stale and must
// never be interpreted.
func (v *BitVector) liveMask(k int) uint64 {
	lo := k * WordWidth
	start, end := v.headBit, v.headBit+v.bitLen
	if start < lo {
		start = lo
	}
	if end > lo+WordWidth {
		end = lo + WordWidth
	}
	if start >= end {
		return 0
	}
	m := ^uint64(0) << (start - lo)
	if end < lo+WordWidth {
		m &= 1<<(end-lo) - 1
	}
	return m
}

// Count returns the number of logical one bits. Reversal does not affect
// the count; complement inverts it against the bit length.
func (v *BitVector) Count() int {
	raw := 0
	for k := 0; k < v.words.Len(); k++ {
		w, err := v.words.Get(k)
		if err != nil {
			panic("bitvector: word index out of sync with bit length: " + err.Error())
		}
		raw += bits.OnesCount64(w & v.liveMask(k))
	}
	if v.complemented {
		return v.bitLen - raw
	}
	return raw
}

// All iterates the logical bits in order.
func (v *BitVector) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < v.bitLen; i++ {
			if !yield(i, v.rawBit(v.physPos(i)) != v.complemented) {
				return
			}
		}
	}
}

// ToWords materializes the logical view as packed words, bit i at word
// i/64, offset i%64. Flags and the head offset are resolved, and the slack
// in the final word is zeroed so no stale bits leak out.
func (v *BitVector) ToWords() []uint64 {
	out := make([]uint64, (v.bitLen+WordWidth-1)/WordWidth)
	for i, b := range v.All() {
		if b {
			out[i/WordWidth] |= 1 << (i % WordWidth)
		}
	}
	return out
}
