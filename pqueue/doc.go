// Package pqueue implements a binary min-heap priority queue backed by the
// dynamic array: parent of i at (i-1)/2, children at 2i+1 and 2i+2, relying
// on the array's O(1) index access. The heap maintenance (siftUp, siftDown,
// bottom-up build, heapsort) is written out explicitly.
//
// Instances are not safe for concurrent use.
package pqueue
