package linkedlist

import "iter"

// node is a list element. Nodes are owned by exactly one list and never
// shared.
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a doubly linked list.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.length }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.length == 0 }

// PushFront inserts v at the front. O(1).
func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
}

// PushBack inserts v at the back. O(1).
func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
}

// Front returns the first element without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the last element without removing it.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// PopFront removes and returns the first element. O(1).
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.unlink(n)
	return n.value, true
}

// PopBack removes and returns the last element. O(1).
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	n := l.tail
	l.unlink(n)
	return n.value, true
}

// FindFunc returns the first element for which match returns true.
func (l *List[T]) FindFunc(match func(T) bool) (T, bool) {
	for n := l.head; n != nil; n = n.next {
		if match(n.value) {
			return n.value, true
		}
	}
	var zero T
	return zero, false
}

// UpdateFunc replaces the first element for which match returns true and
// reports whether a replacement happened.
func (l *List[T]) UpdateFunc(match func(T) bool, v T) bool {
	for n := l.head; n != nil; n = n.next {
		if match(n.value) {
			n.value = v
			return true
		}
	}
	return false
}

// RemoveFunc unlinks the first element for which match returns true and
// reports whether an element was removed.
func (l *List[T]) RemoveFunc(match func(T) bool) bool {
	for n := l.head; n != nil; n = n.next {
		if match(n.value) {
			l.unlink(n)
			return true
		}
	}
	return false
}

func (l *List[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.length--
}

// All iterates front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward iterates back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}
