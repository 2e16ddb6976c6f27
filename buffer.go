package boundedqueue

import (
	"errors"
)

// ErrInvalidCapacity is returned when constructing a buffer or queue with a
// capacity that is not positive.
var ErrInvalidCapacity = errors.New("boundedqueue: capacity must be positive")

// Buffer is a fixed-capacity FIFO ring. Storage is allocated once at
// construction and never grows.
//
// Buffer is not safe for concurrent use. It is the storage layer for
// blockingqueue.Queue, which guards every access with its own mutex. The zero
// value is not ready for use; construct via NewBuffer.
type Buffer[T any] struct {
	data []T
	head int
	size int
}

// NewBuffer creates a buffer holding at most capacity values.
// Returns ErrInvalidCapacity if capacity <= 0.
func NewBuffer[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Buffer[T]{data: make([]T, capacity)}, nil
}

// Push appends v to the tail.
//
// Returns false, leaving the buffer unchanged, when it is full. Complexity: O(1).
func (b *Buffer[T]) Push(v T) bool {
	if b.size == len(b.data) {
		return false
	}
	b.data[(b.head+b.size)%len(b.data)] = v
	b.size++
	return true
}

// Pop removes and returns the head value.
//
// The second result is false when the buffer is empty. Complexity: O(1).
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	v := b.data[b.head]
	// release the reference held by the vacated slot
	b.data[b.head] = zero
	b.head = (b.head + 1) % len(b.data)
	b.size--
	return v, true
}

// Peek returns the head value without removing it.
// The second result is false when the buffer is empty. Complexity: O(1).
func (b *Buffer[T]) Peek() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}
	return b.data[b.head], true
}

// Len returns the number of values currently held.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// IsEmpty reports whether the buffer holds no values.
func (b *Buffer[T]) IsEmpty() bool { return b.size == 0 }

// IsFull reports whether the buffer holds Cap values.
func (b *Buffer[T]) IsFull() bool { return b.size == len(b.data) }

// ToSlice returns a copy of the buffer's contents in FIFO order.
// Complexity: O(n). The returned slice is independent of the buffer.
func (b *Buffer[T]) ToSlice() []T {
	out := make([]T, b.size)
	for i := range out {
		out[i] = b.data[(b.head+i)%len(b.data)]
	}
	return out
}

// Clear removes all values. Complexity: O(capacity), every slot is zeroed.
func (b *Buffer[T]) Clear() {
	clear(b.data)
	b.head = 0
	b.size = 0
}
