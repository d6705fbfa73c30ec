package linkedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](l *List[T]) []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func TestPushPop(t *testing.T) {
	l := New[int]()
	assert.True(t, l.IsEmpty())

	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)
	assert.Equal(t, []int{1, 2, 3}, collect(l))
	assert.Equal(t, 3, l.Len())

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, 3, back)

	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = l.PopFront()
	assert.False(t, ok)
	_, ok = l.PopBack()
	assert.False(t, ok)
	assert.True(t, l.IsEmpty())
}

func TestEmptyAccessors(t *testing.T) {
	l := New[string]()

	_, ok := l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)
	_, ok = l.FindFunc(func(string) bool { return true })
	assert.False(t, ok)
	assert.False(t, l.RemoveFunc(func(string) bool { return true }))
}

func TestFindUpdateRemove(t *testing.T) {
	l := New[int]()
	for _, v := range []int{10, 20, 30, 20} {
		l.PushBack(v)
	}

	v, ok := l.FindFunc(func(x int) bool { return x == 20 })
	require.True(t, ok)
	assert.Equal(t, 20, v)

	require.True(t, l.UpdateFunc(func(x int) bool { return x == 20 }, 21))
	assert.Equal(t, []int{10, 21, 30, 20}, collect(l))

	require.True(t, l.RemoveFunc(func(x int) bool { return x == 20 }))
	assert.Equal(t, []int{10, 21, 30}, collect(l))

	assert.False(t, l.RemoveFunc(func(x int) bool { return x == 99 }))
}

func TestRemoveEnds(t *testing.T) {
	l := New[int]()
	for _, v := range []int{1, 2, 3} {
		l.PushBack(v)
	}

	require.True(t, l.RemoveFunc(func(x int) bool { return x == 1 }))
	assert.Equal(t, []int{2, 3}, collect(l))

	require.True(t, l.RemoveFunc(func(x int) bool { return x == 3 }))
	assert.Equal(t, []int{2}, collect(l))

	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, 2, back)

	require.True(t, l.RemoveFunc(func(x int) bool { return x == 2 }))
	assert.True(t, l.IsEmpty())

	_, ok = l.Front()
	assert.False(t, ok)
}

func TestBackward(t *testing.T) {
	l := New[int]()
	for _, v := range []int{1, 2, 3} {
		l.PushBack(v)
	}

	var got []int
	for v := range l.Backward() {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestZeroValueUsable(t *testing.T) {
	var l List[int]
	l.PushBack(1)
	l.PushFront(0)
	assert.Equal(t, []int{0, 1}, collect(&l))
}
