// Package dsgo provides foundational containers built from raw fixed-size
// storage: a dynamic array with O(1) logical reversal, a bit vector with
// O(1) logical reversal and complement, and the standard structures layered
// on top of them (hash map, priority queue, doubly linked list, bloom
// filter).
//
// The unifying design technique is the lazy flag: bulk transformations that
// would cost O(n) to apply eagerly (reverse the array, invert every bit) are
// recorded as a boolean consulted during index translation, so toggling them
// is O(1) and no storage is touched.
//
// All containers are single-threaded and mutable. None are safe for
// concurrent use from multiple goroutines without external locking.
//
// This package holds the error types and the Logger shared by the container
// packages:
//
//   - dynarray: growable array over an exclusively owned storage block
//   - bitvector: bits packed into 64-bit words on top of dynarray
//   - linkedlist: doubly linked list
//   - pqueue: binary min-heap priority queue backed by dynarray
//   - hashmap: chained hash map with linked-list buckets
//   - bloom: bloom filter backed by bitvector
//   - codec: compressed container snapshots
package dsgo
