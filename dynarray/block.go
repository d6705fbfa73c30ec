package dynarray

// block is the fixed storage block: a raw, pre-sized sequence of slots
// addressed by physical index in [0, cap). It carries no resize logic of
// its own; the DynamicArray allocates a replacement block when it outgrows
// this one. A block is never shared between arrays.
type block[T any] struct {
	slots []T
}

func newBlock[T any](capacity int) *block[T] {
	return &block[T]{slots: make([]T, capacity)}
}

func (b *block[T]) cap() int { return len(b.slots) }

func (b *block[T]) get(slot int) T { return b.slots[slot] }

func (b *block[T]) set(slot int, v T) { b.slots[slot] = v }

// clear zeroes a slot so vacated references do not pin their values.
func (b *block[T]) clear(slot int) {
	var zero T
	b.slots[slot] = zero
}
