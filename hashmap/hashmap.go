package hashmap

import (
	"context"
	"errors"
	"iter"
	"math/rand"

	"github.com/hupe1980/dsgo"
	"github.com/hupe1980/dsgo/dynarray"
	"github.com/hupe1980/dsgo/internal/hash"
	"github.com/hupe1980/dsgo/linkedlist"
)

// ErrNilHasher is returned when a map is constructed without a hasher.
var ErrNilHasher = errors.New("hashmap: hasher must not be nil")

// maxLoadFactor triggers a rehash into the next prime capacity.
const maxLoadFactor = 0.9

// primeCapacities is the table growth schedule. Prime bucket counts keep
// the MAD compression well distributed.
var primeCapacities = []int{
	557, 1667, 4597, 7741, 14411, 52361,
	107581, 313297, 619331, 828547,
	999983, 1513199, 3000061,
}

// Hasher prehashes a key into the 32-bit universe.
type Hasher[K any] func(K) uint32

// StringHasher prehashes string keys with CRC32C.
func StringHasher(k string) uint32 {
	return hash.CRC32C([]byte(k))
}

// IntHasher prehashes integer keys with CRC32C over their little-endian
// bytes.
func IntHasher[K ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](k K) uint32 {
	return hash.CRC32C(hash.Uint64Bytes(uint64(k)))
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map is a chained hash map with linked-list buckets.
//
// Construct with New; the zero value is not usable.
type Map[K comparable, V any] struct {
	buckets *dynarray.DynamicArray[*linkedlist.List[entry[K, V]]]
	size    int
	hasher  Hasher[K]
	mad     hash.MAD

	// resizes indexes the next entry of primeCapacities to adopt.
	resizes int

	logger *dsgo.Logger
}

// New creates an empty map using hasher to prehash keys.
func New[K comparable, V any](hasher Hasher[K], optFns ...func(*options)) (*Map[K, V], error) {
	if hasher == nil {
		return nil, ErrNilHasher
	}

	opts := options{
		logger: dsgo.NopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var rng *rand.Rand
	if opts.seeded {
		rng = rand.New(rand.NewSource(opts.seed))
	}

	return &Map[K, V]{
		buckets: emptyBuckets[K, V](primeCapacities[0]),
		hasher:  hasher,
		mad:     hash.NewMAD(rng),
		logger:  opts.logger,
	}, nil
}

func emptyBuckets[K comparable, V any](capacity int) *dynarray.DynamicArray[*linkedlist.List[entry[K, V]]] {
	return dynarray.FromSlice(make([]*linkedlist.List[entry[K, V]], capacity))
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int { return m.size }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Capacity returns the current bucket count.
func (m *Map[K, V]) Capacity() int { return m.buckets.Len() }

// LoadFactor returns size divided by bucket count.
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(m.buckets.Len())
}

func (m *Map[K, V]) bucketIndex(k K) int {
	return m.mad.Compress(m.hasher(k), m.buckets.Len())
}

func (m *Map[K, V]) bucketAt(i int) *linkedlist.List[entry[K, V]] {
	b, err := m.buckets.Get(i)
	if err != nil {
		panic("hashmap: bucket index out of sync with table: " + err.Error())
	}
	return b
}

// Set associates v with k. If k was present, the previous value is
// returned with replaced true. Amortized O(1).
func (m *Map[K, V]) Set(k K, v V) (V, bool) {
	if m.LoadFactor() >= maxLoadFactor {
		m.rehash()
	}

	idx := m.bucketIndex(k)
	bucket := m.bucketAt(idx)
	if bucket == nil {
		bucket = linkedlist.New[entry[K, V]]()
		if err := m.buckets.Set(idx, bucket); err != nil {
			panic("hashmap: bucket index out of sync with table: " + err.Error())
		}
	}

	match := func(e entry[K, V]) bool { return e.key == k }
	if old, ok := bucket.FindFunc(match); ok {
		bucket.UpdateFunc(match, entry[K, V]{key: k, value: v})
		return old.value, true
	}

	bucket.PushFront(entry[K, V]{key: k, value: v})
	m.size++

	var zero V
	return zero, false
}

// Get returns the value associated with k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	bucket := m.bucketAt(m.bucketIndex(k))
	if bucket == nil {
		var zero V
		return zero, false
	}
	e, ok := bucket.FindFunc(func(e entry[K, V]) bool { return e.key == k })
	return e.value, ok
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	bucket := m.bucketAt(m.bucketIndex(k))
	if bucket == nil {
		return false
	}
	if bucket.RemoveFunc(func(e entry[K, V]) bool { return e.key == k }) {
		m.size--
		return true
	}
	return false
}

// rehash adopts the next prime capacity and reinserts every entry. The
// last schedule entry caps the table; beyond it chains simply grow.
func (m *Map[K, V]) rehash() {
	if m.resizes+1 >= len(primeCapacities) {
		return
	}
	m.resizes++
	newCap := primeCapacities[m.resizes]

	old := m.buckets
	m.buckets = emptyBuckets[K, V](newCap)

	for _, bucket := range old.All() {
		if bucket == nil {
			continue
		}
		for e := range bucket.All() {
			idx := m.bucketIndex(e.key)
			target := m.bucketAt(idx)
			if target == nil {
				target = linkedlist.New[entry[K, V]]()
				if err := m.buckets.Set(idx, target); err != nil {
					panic("hashmap: bucket index out of sync with table: " + err.Error())
				}
			}
			target.PushFront(e)
		}
	}

	m.logger.DebugGrow(context.Background(), "hashmap", old.Len(), newCap, m.size)
}

// Keys iterates the stored keys in unspecified order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// All iterates the stored entries in unspecified order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets.All() {
			if bucket == nil {
				continue
			}
			for e := range bucket.All() {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
