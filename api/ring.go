// Package api
// Author: momentics <momentics@gmail.com>
//
// Container contracts shared across the circbuf library.

package api

// Ring is a bounded FIFO contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// Deque is the double-ended surface the bounded-buffer collaborators use.
// PushBack and PushFront overwrite the opposite end when the container is
// full; the Pop methods require a non-empty container.
type Deque[T any] interface {
	PushBack(item T)
	PushFront(item T)
	PopBack() T
	PopFront() T
	Len() int
	Cap() int
}
