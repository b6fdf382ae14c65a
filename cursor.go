// File: cursor.go
// Author: momentics <momentics@gmail.com>
//
// Wrap-aware slot cursor arithmetic. All helpers are O(1): offsets are
// resolved with a single modular step, never element-by-element.

package circbuf

// inc advances a slot index by one, wrapping at the region end.
func (b *Buffer[T]) inc(p int) int {
	if p++; p == len(b.slots) {
		return 0
	}
	return p
}

// dec retreats a slot index by one, wrapping at the region start.
func (b *Buffer[T]) dec(p int) int {
	if p == 0 {
		p = len(b.slots)
	}
	return p - 1
}

// add offsets a slot index by n, 0 <= n <= capacity.
func (b *Buffer[T]) add(p, n int) int {
	if n < len(b.slots)-p {
		return p + n
	}
	return p + n - len(b.slots)
}

// sub offsets a slot index by -n, 0 <= n <= capacity.
func (b *Buffer[T]) sub(p, n int) int {
	if n > p {
		return p - n + len(b.slots)
	}
	return p - n
}

// lastSlot is the virtual end cursor: one past the logical last element.
// Aliases first when the buffer is empty or full.
func (b *Buffer[T]) lastSlot() int {
	return b.add(b.first, b.size)
}

// backSlot holds the logical last element. Undefined on an empty buffer.
func (b *Buffer[T]) backSlot() int {
	return b.dec(b.lastSlot())
}

// logical maps a physical slot index to its offset from the head.
func (b *Buffer[T]) logical(slot int) int {
	off := slot - b.first
	if off < 0 {
		off += len(b.slots)
	}
	return off
}

// replaceSlot assigns over a live element, invalidating iterators bound to
// the slot in debug builds.
func (b *Buffer[T]) replaceSlot(p int, item T) {
	b.invalidateSlot(p)
	b.slots[p] = item
}

// destroySlot releases a slot: the element is zeroed so the garbage
// collector drops any references, which doubles as the uninitialized
// sentinel in debug builds.
func (b *Buffer[T]) destroySlot(p int) {
	b.invalidateSlot(p)
	var zero T
	b.slots[p] = zero
}
