package dynarray

import (
	"context"
	"iter"

	"github.com/hupe1980/dsgo"
)

// Stats counts storage events over the lifetime of an array. The element
// copy total stays O(n) across n appends under the doubling policy.
type Stats struct {
	Grows         int
	ElementCopies int
}

// DynamicArray is a growable array with amortized O(1) append and prepend
// and O(1) logical reversal.
//
// The zero value is not usable; construct with New, FromSlice or Clone.
type DynamicArray[T any] struct {
	blk      *block[T]
	length   int
	head     int
	reversed bool
	logger   *dsgo.Logger
	stats    Stats
}

// New creates an empty array. By default no storage is allocated until the
// first append; use WithCapacity to pre-size the block.
func New[T any](optFns ...func(*options)) (*DynamicArray[T], error) {
	opts := options{
		logger: dsgo.NopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.capacity < 0 {
		return nil, dsgo.NewInvalidConfiguration("capacity", opts.capacity)
	}

	return &DynamicArray[T]{
		blk:    newBlock[T](opts.capacity),
		logger: opts.logger,
	}, nil
}

// FromSlice creates an array holding a copy of values in order.
func FromSlice[T any](values []T) *DynamicArray[T] {
	blk := newBlock[T](len(values))
	copy(blk.slots, values)
	return &DynamicArray[T]{
		blk:    blk,
		length: len(values),
		logger: dsgo.NopLogger(),
	}
}

// Len returns the logical length.
func (a *DynamicArray[T]) Len() int { return a.length }

// Cap returns the capacity of the current storage block.
func (a *DynamicArray[T]) Cap() int { return a.blk.cap() }

// IsEmpty reports whether the array holds no elements.
func (a *DynamicArray[T]) IsEmpty() bool { return a.length == 0 }

// Stats returns cumulative storage event counters.
func (a *DynamicArray[T]) Stats() Stats { return a.stats }

func (a *DynamicArray[T]) slot(i int) int {
	return slotFor(a.head, a.blk.cap(), a.length, a.reversed, i)
}

// Get returns the element at logical index i.
func (a *DynamicArray[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.length {
		var zero T
		return zero, dsgo.NewIndexOutOfRange(i, a.length)
	}
	return a.blk.get(a.slot(i)), nil
}

// Set overwrites the element at logical index i in place.
func (a *DynamicArray[T]) Set(i int, v T) error {
	if i < 0 || i >= a.length {
		return dsgo.NewIndexOutOfRange(i, a.length)
	}
	a.blk.set(a.slot(i), v)
	return nil
}

// Append adds v after the current last element. Amortized O(1); a growth
// step copies all live elements into a doubled block.
func (a *DynamicArray[T]) Append(v T) {
	a.ensureFree()
	if a.reversed {
		// The head slot holds the logical last element, so the new last
		// goes one slot before it.
		a.head = prevSlot(a.head, a.blk.cap())
		a.blk.set(a.head, v)
	} else {
		a.blk.set(a.afterTail(), v)
	}
	a.length++
}

// Prepend inserts v before logical index 0 by moving the head backward; no
// elements shift. Amortized O(1).
func (a *DynamicArray[T]) Prepend(v T) {
	a.ensureFree()
	if a.reversed {
		// Under reversal the logical front extends from the physical tail.
		a.blk.set(a.afterTail(), v)
	} else {
		a.head = prevSlot(a.head, a.blk.cap())
		a.blk.set(a.head, v)
	}
	a.length++
}

// afterTail returns the first free physical slot past the live run.
func (a *DynamicArray[T]) afterTail() int {
	s := a.head + a.length
	if c := a.blk.cap(); s >= c {
		s -= c
	}
	return s
}

// ensureFree guarantees room for one more element, reallocating into a
// doubled block when the current one is full.
func (a *DynamicArray[T]) ensureFree() {
	if a.length < a.blk.cap() {
		return
	}
	newCap := a.blk.cap() * 2
	if newCap == 0 {
		newCap = 1
	}
	a.grow(newCap)
}

// grow replaces the storage block. Live elements are copied in logical
// order, which folds the reversal flag into the layout: the new block
// starts at head 0 with reversed false and identical observable order.
func (a *DynamicArray[T]) grow(newCap int) {
	newBlk := newBlock[T](newCap)
	for i := 0; i < a.length; i++ {
		newBlk.set(i, a.blk.get(a.slot(i)))
	}

	a.stats.Grows++
	a.stats.ElementCopies += a.length
	a.logger.DebugGrow(context.Background(), "dynarray", a.blk.cap(), newCap, a.length)

	a.blk = newBlk
	a.head = 0
	a.reversed = false
}

// RemoveAt deletes the element at logical index i, shifting later elements
// back by one. O(n - i).
func (a *DynamicArray[T]) RemoveAt(i int) error {
	if i < 0 || i >= a.length {
		return dsgo.NewIndexOutOfRange(i, a.length)
	}
	for j := i; j < a.length-1; j++ {
		a.blk.set(a.slot(j), a.blk.get(a.slot(j+1)))
	}
	a.blk.clear(a.slot(a.length - 1))
	if a.reversed {
		// The vacated slot is the head; advancing it keeps the mapping of
		// the surviving elements unchanged.
		a.head = nextSlot(a.head, a.blk.cap())
	}
	a.length--
	return nil
}

// Reverse reverses the logical order in O(1) by toggling the reversal flag.
// No storage moves.
func (a *DynamicArray[T]) Reverse() {
	a.reversed = !a.reversed
}

// All iterates the logical view in order.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i, a.blk.get(a.slot(i))) {
				return
			}
		}
	}
}

// ToSlice copies the logical view into a fresh slice.
func (a *DynamicArray[T]) ToSlice() []T {
	out := make([]T, a.length)
	for i := range out {
		out[i] = a.blk.get(a.slot(i))
	}
	return out
}

// Clone returns a deep copy sharing no storage with the original. Stats
// start fresh.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	blk := newBlock[T](a.blk.cap())
	copy(blk.slots, a.blk.slots)
	return &DynamicArray[T]{
		blk:      blk,
		length:   a.length,
		head:     a.head,
		reversed: a.reversed,
		logger:   a.logger,
	}
}
