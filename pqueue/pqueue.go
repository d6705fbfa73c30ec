package pqueue

import (
	"github.com/hupe1980/dsgo/dynarray"
)

// Item is a prioritized value. Smaller priorities surface first.
type Item[V any] struct {
	Priority int64
	Value    V
}

// PriorityQueue is a binary min-heap over a dynamic array.
//
// Construct with New or Heapify; the zero value is not usable.
type PriorityQueue[V any] struct {
	items *dynarray.DynamicArray[Item[V]]

	// nextFIFO is the monotone priority handed out by PushFIFO. Mixing
	// Push and PushFIFO on one queue breaks FIFO ordering guarantees.
	nextFIFO int64
}

// New creates an empty queue.
func New[V any]() *PriorityQueue[V] {
	return &PriorityQueue[V]{
		items: dynarray.FromSlice[Item[V]](nil),
	}
}

// Heapify takes ownership of items and restores the heap property in place
// with a bottom-up build. O(n), O(1) extra space.
func Heapify[V any](items *dynarray.DynamicArray[Item[V]]) *PriorityQueue[V] {
	pq := &PriorityQueue[V]{items: items}
	n := items.Len()
	for i := n/2 - 1; i >= 0; i-- {
		pq.siftDown(i, n)
	}
	return pq
}

// Len returns the number of queued items.
func (pq *PriorityQueue[V]) Len() int { return pq.items.Len() }

// IsEmpty reports whether the queue holds no items.
func (pq *PriorityQueue[V]) IsEmpty() bool { return pq.items.IsEmpty() }

// Push inserts v with the given priority. Amortized O(log n).
func (pq *PriorityQueue[V]) Push(priority int64, v V) {
	pq.items.Append(Item[V]{Priority: priority, Value: v})
	pq.siftUp(pq.items.Len() - 1)
}

// PushFIFO inserts v behind everything previously pushed through PushFIFO,
// turning the queue into a FIFO queue via monotone priorities.
func (pq *PriorityQueue[V]) PushFIFO(v V) {
	pq.Push(pq.nextFIFO, v)
	pq.nextFIFO++
}

// Peek returns the minimum item without removing it.
func (pq *PriorityQueue[V]) Peek() (Item[V], bool) {
	if pq.items.IsEmpty() {
		return Item[V]{}, false
	}
	return pq.get(0), true
}

// PeekPriority returns the minimum priority without removing its item.
func (pq *PriorityQueue[V]) PeekPriority() (int64, bool) {
	item, ok := pq.Peek()
	return item.Priority, ok
}

// Pop removes and returns the minimum item. O(log n).
func (pq *PriorityQueue[V]) Pop() (Item[V], bool) {
	n := pq.items.Len()
	if n == 0 {
		return Item[V]{}, false
	}

	root := pq.get(0)
	pq.set(0, pq.get(n-1))
	if err := pq.items.RemoveAt(n - 1); err != nil {
		panic("pqueue: heap storage out of sync: " + err.Error())
	}
	if n > 1 {
		pq.siftDown(0, n-1)
	}
	return root, true
}

// IntoSorted heapsorts the backing array and returns it ordered by
// ascending priority. The queue is destroyed: the returned array owns the
// storage and the queue must not be used afterwards. O(n log n) time,
// O(1) extra space.
func (pq *PriorityQueue[V]) IntoSorted() *dynarray.DynamicArray[Item[V]] {
	n := pq.items.Len()

	for i := n/2 - 1; i >= 0; i-- {
		pq.siftDown(i, n)
	}

	// Swapping the minimum to the shrinking tail leaves the array in
	// descending order; the O(1) reversal flag flips the view to ascending
	// without moving anything.
	for i := n - 1; i > 0; i-- {
		pq.swap(0, i)
		pq.siftDown(0, i)
	}

	items := pq.items
	pq.items = nil
	items.Reverse()
	return items
}

func (pq *PriorityQueue[V]) get(i int) Item[V] {
	v, err := pq.items.Get(i)
	if err != nil {
		panic("pqueue: heap storage out of sync: " + err.Error())
	}
	return v
}

func (pq *PriorityQueue[V]) set(i int, v Item[V]) {
	if err := pq.items.Set(i, v); err != nil {
		panic("pqueue: heap storage out of sync: " + err.Error())
	}
}

func (pq *PriorityQueue[V]) swap(i, j int) {
	vi, vj := pq.get(i), pq.get(j)
	pq.set(i, vj)
	pq.set(j, vi)
}

func (pq *PriorityQueue[V]) less(i, j int) bool {
	return pq.get(i).Priority < pq.get(j).Priority
}

func (pq *PriorityQueue[V]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.swap(i, p)
		i = p
	}
}

// siftDown restores the heap property below i, considering only the first
// n items so heapsort can shrink the live prefix.
func (pq *PriorityQueue[V]) siftDown(i, n int) {
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.swap(i, best)
		i = best
	}
}
