// File: buffer.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffer storage engine. The logical sequence
// occupies size contiguous-or-wrapped slots starting at first; all other
// slots hold the zero value. Capacity changes only through SetCapacity
// and friends, never implicitly on overflow.

package circbuf

import (
	"math"

	"github.com/momentics/circbuf/alloc"
	"github.com/momentics/circbuf/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]  = (*Buffer[any])(nil)
	_ api.Deque[any] = (*Buffer[any])(nil)
)

// Buffer is a fixed-capacity circular buffer.
type Buffer[T any] struct {
	slots []T
	first int
	size  int
	alloc api.Allocator[T]
	registry
}

// Option customizes buffer construction.
type Option[T any] func(*Buffer[T])

// WithAllocator selects the allocation strategy for the backing region.
func WithAllocator[T any](a api.Allocator[T]) Option[T] {
	return func(b *Buffer[T]) { b.alloc = a }
}

// New creates an empty buffer with the given capacity. Capacity zero is
// legal; every push on such a buffer is a no-op.
func New[T any](capacity int, opts ...Option[T]) (*Buffer[T], error) {
	b := &Buffer[T]{}
	for _, opt := range opts {
		opt(b)
	}
	if b.alloc == nil {
		b.alloc = alloc.Heap[T]()
	}
	region, err := b.allocate(capacity)
	if err != nil {
		return nil, err
	}
	b.slots = region
	return b, nil
}

// MustNew is New panicking on allocation failure.
func MustNew[T any](capacity int, opts ...Option[T]) *Buffer[T] {
	b, err := New[T](capacity, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// NewFilled creates a buffer with the given capacity holding n copies of
// item.
func NewFilled[T any](capacity, n int, item T, opts ...Option[T]) (*Buffer[T], error) {
	if n < 0 || n > capacity {
		return nil, api.ErrInvalidArgument
	}
	b, err := New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		b.slots[i] = item
	}
	b.size = n
	return b, nil
}

// NewFromSlice creates a buffer with the given capacity seeded from items
// in order. When items exceeds the capacity only the most recent capacity
// elements are kept.
func NewFromSlice[T any](capacity int, items []T, opts ...Option[T]) (*Buffer[T], error) {
	b, err := New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}
	if len(items) > capacity {
		items = items[len(items)-capacity:]
	}
	copy(b.slots, items)
	b.size = len(items)
	return b, nil
}

// allocate obtains a zeroed region, mapping capacity bounds onto the error
// taxonomy before any state changes.
func (b *Buffer[T]) allocate(n int) ([]T, error) {
	if n < 0 || n > b.MaxSize() {
		return nil, api.ErrCapacityExceeded
	}
	return b.alloc.Allocate(n)
}

// Len returns the number of elements currently stored.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the buffer capacity.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// Empty reports whether no elements are stored.
func (b *Buffer[T]) Empty() bool { return b.size == 0 }

// Full reports whether the stored count equals the capacity.
func (b *Buffer[T]) Full() bool { return b.size == len(b.slots) }

// Reserve returns how many elements fit without overwriting stored ones.
func (b *Buffer[T]) Reserve() int { return len(b.slots) - b.size }

// MaxSize returns the largest representable capacity.
func (b *Buffer[T]) MaxSize() int { return math.MaxInt }

// At returns the element at index, or ErrOutOfRange for an invalid index.
func (b *Buffer[T]) At(index int) (T, error) {
	if index < 0 || index >= b.size {
		var zero T
		return zero, api.ErrOutOfRange
	}
	return b.slots[b.add(b.first, index)], nil
}

// Get returns the element at index. The caller guarantees
// 0 <= index < Len().
func (b *Buffer[T]) Get(index int) T {
	debugAssert(index >= 0 && index < b.size, "circbuf: index out of range")
	return b.slots[b.add(b.first, index)]
}

// Set overwrites the element at index. The caller guarantees
// 0 <= index < Len().
func (b *Buffer[T]) Set(index int, item T) {
	debugAssert(index >= 0 && index < b.size, "circbuf: index out of range")
	b.slots[b.add(b.first, index)] = item
}

// Front returns the first (oldest) element. The buffer must not be empty.
func (b *Buffer[T]) Front() T {
	debugAssert(b.size > 0, "circbuf: Front on empty buffer")
	return b.slots[b.first]
}

// Back returns the last (newest) element. The buffer must not be empty.
func (b *Buffer[T]) Back() T {
	debugAssert(b.size > 0, "circbuf: Back on empty buffer")
	return b.slots[b.backSlot()]
}

// PushBack appends item. On a full buffer the front element is overwritten
// and the window shifts by one; the size stays unchanged.
func (b *Buffer[T]) PushBack(item T) {
	if b.Full() {
		if b.Empty() {
			return // zero capacity
		}
		b.replaceSlot(b.lastSlot(), item)
		b.first = b.inc(b.first)
	} else {
		b.slots[b.lastSlot()] = item
		b.size++
	}
}

// PushFront prepends item. On a full buffer the back element is overwritten
// and the window shifts by one; the size stays unchanged.
func (b *Buffer[T]) PushFront(item T) {
	if b.Full() {
		if b.Empty() {
			return // zero capacity
		}
		b.first = b.dec(b.first)
		b.replaceSlot(b.first, item)
	} else {
		b.first = b.dec(b.first)
		b.slots[b.first] = item
		b.size++
	}
}

// PopBack removes and returns the last element. The buffer must not be
// empty.
func (b *Buffer[T]) PopBack() T {
	debugAssert(b.size > 0, "circbuf: PopBack on empty buffer")
	p := b.backSlot()
	item := b.slots[p]
	b.destroySlot(p)
	b.size--
	return item
}

// PopFront removes and returns the first element. The buffer must not be
// empty.
func (b *Buffer[T]) PopFront() T {
	debugAssert(b.size > 0, "circbuf: PopFront on empty buffer")
	item := b.slots[b.first]
	b.destroySlot(b.first)
	b.first = b.inc(b.first)
	b.size--
	return item
}

// Enqueue implements api.Ring: adds at the back, refusing when full.
func (b *Buffer[T]) Enqueue(item T) bool {
	if b.Full() {
		return false
	}
	b.PushBack(item)
	return true
}

// Dequeue implements api.Ring: removes the oldest item.
func (b *Buffer[T]) Dequeue() (T, bool) {
	if b.Empty() {
		var zero T
		return zero, false
	}
	return b.PopFront(), true
}

// Clear removes all stored elements, keeping the capacity.
func (b *Buffer[T]) Clear() {
	for i := 0; i < b.size; i, b.first = i+1, b.inc(b.first) {
		b.destroySlot(b.first)
	}
	b.first = 0
	b.size = 0
}

// Swap exchanges the contents of two buffers in O(1). All iterators of both
// buffers are invalidated in debug builds.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
	b.first, other.first = other.first, b.first
	b.size, other.size = other.size, b.size
	b.alloc, other.alloc = other.alloc, b.alloc
	b.invalidateAll()
	other.invalidateAll()
}

// AssignN replaces the content with n copies of item. The capacity grows to
// n when n exceeds it, otherwise it stays unchanged.
func (b *Buffer[T]) AssignN(n int, item T) error {
	fill := func(region []T) {
		for i := 0; i < n; i++ {
			region[i] = item
		}
	}
	return b.doAssign(n, fill)
}

// AssignRange replaces the content with a copy of items. The capacity grows
// to len(items) when it exceeds it, otherwise it stays unchanged.
func (b *Buffer[T]) AssignRange(items []T) error {
	return b.doAssign(len(items), func(region []T) { copy(region, items) })
}

func (b *Buffer[T]) doAssign(n int, fill func([]T)) error {
	if n < 0 {
		return api.ErrInvalidArgument
	}
	if n > len(b.slots) {
		region, err := b.allocate(n)
		if err != nil {
			return err
		}
		fill(region)
		b.alloc.Deallocate(b.slots)
		b.slots = region
	} else {
		b.Clear()
		fill(b.slots)
	}
	b.invalidateAll()
	b.first = 0
	b.size = n
	return nil
}

// Release destroys the content and returns the backing region to the
// allocator. The buffer must not be used afterwards. Needed only for
// non-garbage-collected allocators such as alloc.Mmap.
func (b *Buffer[T]) Release() {
	b.Clear()
	b.invalidateAll()
	b.alloc.Deallocate(b.slots)
	b.slots = nil
}

// Equal reports element-wise sequence equality of two buffers.
func Equal[T comparable](lhs, rhs *Buffer[T]) bool {
	if lhs.size != rhs.size {
		return false
	}
	for i := 0; i < lhs.size; i++ {
		if lhs.Get(i) != rhs.Get(i) {
			return false
		}
	}
	return true
}

// Compare orders two buffers lexicographically: -1, 0 or +1.
func Compare[T cmpOrdered](lhs, rhs *Buffer[T]) int {
	n := lhs.size
	if rhs.size < n {
		n = rhs.size
	}
	for i := 0; i < n; i++ {
		l, r := lhs.Get(i), rhs.Get(i)
		switch {
		case l < r:
			return -1
		case r < l:
			return +1
		}
	}
	switch {
	case lhs.size < rhs.size:
		return -1
	case lhs.size > rhs.size:
		return +1
	}
	return 0
}

// cmpOrdered mirrors cmp.Ordered without forcing the import into callers.
type cmpOrdered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}
