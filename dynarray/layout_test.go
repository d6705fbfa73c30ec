package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotFor(t *testing.T) {
	testCases := []struct {
		name     string
		head     int
		capacity int
		length   int
		reversed bool
		i        int
		want     int
	}{
		{name: "forward from zero head", head: 0, capacity: 8, length: 5, i: 3, want: 3},
		{name: "forward wraps", head: 6, capacity: 8, length: 5, i: 3, want: 1},
		{name: "forward last before wrap", head: 6, capacity: 8, length: 2, i: 1, want: 7},
		{name: "reversed maps zero to tail", head: 0, capacity: 8, length: 5, reversed: true, i: 0, want: 4},
		{name: "reversed maps last to head", head: 0, capacity: 8, length: 5, reversed: true, i: 4, want: 0},
		{name: "reversed wraps", head: 6, capacity: 8, length: 5, reversed: true, i: 1, want: 1},
		{name: "single element", head: 3, capacity: 4, length: 1, i: 0, want: 3},
		{name: "single element reversed", head: 3, capacity: 4, length: 1, reversed: true, i: 0, want: 3},
		{name: "full block", head: 5, capacity: 8, length: 8, i: 7, want: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := slotFor(tc.head, tc.capacity, tc.length, tc.reversed, tc.i)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Reversing must be an involution on the mapping: mapping logical i under
// the reversed flag equals mapping length-1-i under the forward flag.
func TestSlotForReversalInvolution(t *testing.T) {
	const capacity = 16
	for head := 0; head < capacity; head++ {
		for length := 0; length <= capacity; length++ {
			for i := 0; i < length; i++ {
				fwd := slotFor(head, capacity, length, false, length-1-i)
				rev := slotFor(head, capacity, length, true, i)
				assert.Equal(t, fwd, rev, "head=%d length=%d i=%d", head, length, i)
			}
		}
	}
}

func TestSlotSteps(t *testing.T) {
	assert.Equal(t, 3, prevSlot(0, 4))
	assert.Equal(t, 1, prevSlot(2, 4))
	assert.Equal(t, 0, nextSlot(3, 4))
	assert.Equal(t, 3, nextSlot(2, 4))
}
