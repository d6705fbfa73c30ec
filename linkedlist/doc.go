// Package linkedlist implements a doubly linked list that manages its own
// node graph. It is independent of the array containers and serves as the
// bucket structure for the hash map.
//
// Instances are not safe for concurrent use.
package linkedlist
