// File: capacity.go
// Author: momentics <momentics@gmail.com>
//
// Explicit capacity and size management. Capacity changes reallocate the
// backing region through the configured allocator and rebase the head to
// slot zero; every iterator is invalidated. Which end survives a shrink
// differs between the plain and the R variants.

package circbuf

import "github.com/momentics/circbuf/api"

// SetCapacity reallocates the buffer to newCapacity. When the stored count
// exceeds it, the oldest elements are dropped so the most recent
// newCapacity survive.
func (b *Buffer[T]) SetCapacity(newCapacity int) error {
	if newCapacity == len(b.slots) {
		return nil
	}
	region, err := b.allocate(newCapacity)
	if err != nil {
		return err
	}
	newSize := b.size
	if newSize > newCapacity {
		newSize = newCapacity
	}
	for i := 0; i < newSize; i++ {
		region[i] = b.Get(b.size - newSize + i)
	}
	b.replaceRegion(region, newSize)
	return nil
}

// RSetCapacity reallocates the buffer to newCapacity, dropping the newest
// elements on a shrink so the oldest newCapacity survive.
func (b *Buffer[T]) RSetCapacity(newCapacity int) error {
	if newCapacity == len(b.slots) {
		return nil
	}
	region, err := b.allocate(newCapacity)
	if err != nil {
		return err
	}
	newSize := b.size
	if newSize > newCapacity {
		newSize = newCapacity
	}
	for i := 0; i < newSize; i++ {
		region[i] = b.Get(i)
	}
	b.replaceRegion(region, newSize)
	return nil
}

func (b *Buffer[T]) replaceRegion(region []T, newSize int) {
	b.invalidateAll()
	b.alloc.Deallocate(b.slots)
	b.slots = region
	b.first = 0
	b.size = newSize
}

// Resize changes the stored count to newSize. Growth appends copies of
// item at the back, extending the capacity first when needed; a shrink
// removes the newest elements.
func (b *Buffer[T]) Resize(newSize int, item T) error {
	if newSize < 0 {
		return api.ErrInvalidArgument
	}
	if newSize > b.size {
		if newSize > len(b.slots) {
			if err := b.SetCapacity(newSize); err != nil {
				return err
			}
		}
		b.InsertN(b.End(), newSize-b.size, item)
	} else {
		b.EraseRange(b.IterAt(newSize), b.End())
	}
	return nil
}

// RResize changes the stored count to newSize. Growth prepends copies of
// item at the front, extending the capacity first when needed; a shrink
// removes the oldest elements.
func (b *Buffer[T]) RResize(newSize int, item T) error {
	if newSize < 0 {
		return api.ErrInvalidArgument
	}
	if newSize > b.size {
		if newSize > len(b.slots) {
			if err := b.RSetCapacity(newSize); err != nil {
				return err
			}
		}
		b.RInsertN(b.Begin(), newSize-b.size, item)
	} else {
		b.REraseRange(b.Begin(), b.IterAt(b.size-newSize))
	}
	return nil
}
