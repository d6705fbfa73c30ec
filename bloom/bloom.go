package bloom

import (
	"github.com/hupe1980/dsgo"
	"github.com/hupe1980/dsgo/bitvector"
	"github.com/hupe1980/dsgo/internal/hash"
)

type options struct {
	bitsPerKey int
	k          int
}

// Option configures Filter construction.
type Option func(*options)

// WithBitsPerKey overrides the per-key bit budget. More bits per key lower
// the false positive rate.
func WithBitsPerKey(n int) Option {
	return func(o *options) {
		o.bitsPerKey = n
	}
}

// WithK overrides the probe count. Defaults to OptimalK of the bit budget.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// Filter is a bloom filter over a zero-initialized bit vector.
//
// Construct with New; the zero value is not usable.
type Filter struct {
	bits *bitvector.BitVector
	m    int
	k    int

	// inserted counts insert calls, not distinct set bits.
	inserted int
}

// New creates a filter sized for maxKeys expected insertions.
func New(maxKeys int, optFns ...func(*options)) (*Filter, error) {
	if maxKeys <= 0 {
		return nil, dsgo.NewInvalidConfiguration("maxKeys", maxKeys)
	}

	opts := options{
		bitsPerKey: DefaultBitsPerKey,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.bitsPerKey <= 0 {
		return nil, dsgo.NewInvalidConfiguration("bitsPerKey", opts.bitsPerKey)
	}
	if opts.k == 0 {
		opts.k = OptimalK(opts.bitsPerKey)
	}
	if opts.k < 0 {
		return nil, dsgo.NewInvalidConfiguration("k", opts.k)
	}

	m := BitsFor(maxKeys, opts.bitsPerKey)
	bits, err := bitvector.NewWithSize(m)
	if err != nil {
		return nil, err
	}

	return &Filter{
		bits: bits,
		m:    m,
		k:    opts.k,
	}, nil
}

// probes yields the k bit positions for key via double hashing. h2 is
// forced odd so the probe stride never collapses to zero.
func (f *Filter) probes(key []byte, visit func(pos int) bool) {
	pair := hash.Pair64(key)
	h1 := pair >> 32
	h2 := pair&0xffffffff | 1

	for i := 0; i < f.k; i++ {
		pos := int((h1 + uint64(i)*h2) % uint64(f.m))
		if !visit(pos) {
			return
		}
	}
}

// Insert adds key to the filter. O(k).
func (f *Filter) Insert(key []byte) {
	f.probes(key, func(pos int) bool {
		if err := f.bits.Set(pos, true); err != nil {
			panic("bloom: probe position out of range: " + err.Error())
		}
		return true
	})
	f.inserted++
}

// Contains reports whether key may have been inserted. A false result is
// definitive; a true result may be a false positive.
func (f *Filter) Contains(key []byte) bool {
	all := true
	f.probes(key, func(pos int) bool {
		b, err := f.bits.Get(pos)
		if err != nil {
			panic("bloom: probe position out of range: " + err.Error())
		}
		if !b {
			all = false
			return false
		}
		return true
	})
	return all
}

// Len returns the number of insert calls performed.
func (f *Filter) Len() int { return f.inserted }

// IsEmpty reports whether nothing was inserted yet.
func (f *Filter) IsEmpty() bool { return f.inserted == 0 }

// Capacity returns the filter size in bits.
func (f *Filter) Capacity() int { return f.m }

// K returns the probe count.
func (f *Filter) K() int { return f.k }

// EstimatedFalsePositiveRate estimates the current false positive rate
// from the insert count.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return FalsePositiveRate(f.inserted, f.m, f.k)
}
