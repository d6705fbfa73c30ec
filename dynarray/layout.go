package dynarray

// slotFor maps logical index i to its physical slot. It is a pure function
// of the layout tuple so the mapping can be verified without any storage.
//
// With reversed false, logical i lives at (head + i) mod capacity. With
// reversed true, logical i lives at (head + length - 1 - i) mod capacity:
// the head slot holds the logical last element.
//
// Requires 0 <= head < capacity and 0 <= i < length <= capacity.
func slotFor(head, capacity, length int, reversed bool, i int) int {
	if reversed {
		i = length - 1 - i
	}
	s := head + i
	if s >= capacity {
		s -= capacity
	}
	return s
}

// prevSlot steps one slot backward with wrap-around.
func prevSlot(slot, capacity int) int {
	if slot == 0 {
		return capacity - 1
	}
	return slot - 1
}

// nextSlot steps one slot forward with wrap-around.
func nextSlot(slot, capacity int) int {
	slot++
	if slot == capacity {
		return 0
	}
	return slot
}
