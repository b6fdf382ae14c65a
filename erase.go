// File: erase.go
// Author: momentics <momentics@gmail.com>
//
// Positional removal. Erase variants close the gap by shifting the tail
// toward the head; the R variants shift the head toward the tail. Vacated
// slots are zeroed at the cheap end of the window.

package circbuf

// Erase removes the element at pos and returns an iterator to the element
// that took its place, End() when the last element was removed.
func (b *Buffer[T]) Erase(pos Iterator[T]) Iterator[T] {
	pos.assertValid()
	debugAssert(pos.buf == b, "circbuf: iterator of a different buffer")
	debugAssert(!pos.end, "circbuf: erase of end iterator")
	last := b.lastSlot()
	q := pos.slot
	for next := b.inc(q); next != last; q, next = next, b.inc(next) {
		b.replaceSlot(q, b.slots[next])
	}
	b.destroySlot(b.backSlot())
	b.size--
	return b.IterAt(pos.pos())
}

// EraseRange removes the elements in [from, to) and returns an iterator to
// the element following the removed range.
func (b *Buffer[T]) EraseRange(from, to Iterator[T]) Iterator[T] {
	from.assertValid()
	to.assertValid()
	debugAssert(from.buf == b && to.buf == b, "circbuf: iterator of a different buffer")
	f, l := from.pos(), to.pos()
	debugAssert(f <= l, "circbuf: inverted erase range")
	d := l - f
	if d == 0 {
		return from
	}
	for k := l; k < b.size; k++ {
		b.replaceSlot(b.add(b.first, k-d), b.slots[b.add(b.first, k)])
	}
	for i := 0; i < d; i++ {
		b.destroySlot(b.add(b.first, b.size-1-i))
	}
	b.size -= d
	return b.IterAt(f)
}

// RErase removes the element at pos by shifting the preceding elements
// toward the tail. Returns an iterator to the element now preceding the
// removed position, Begin() when the first element was removed.
func (b *Buffer[T]) RErase(pos Iterator[T]) Iterator[T] {
	pos.assertValid()
	debugAssert(pos.buf == b, "circbuf: iterator of a different buffer")
	debugAssert(!pos.end, "circbuf: erase of end iterator")
	f := pos.pos()
	for q := pos.slot; q != b.first; {
		prev := b.dec(q)
		b.replaceSlot(q, b.slots[prev])
		q = prev
	}
	b.destroySlot(b.first)
	b.first = b.inc(b.first)
	b.size--
	if f == 0 {
		return b.Begin()
	}
	return b.IterAt(f - 1)
}

// REraseRange removes the elements in [from, to) by shifting the head
// toward the tail. Returns an iterator to the element preceding the
// removed range, Begin() when the range started at the front.
func (b *Buffer[T]) REraseRange(from, to Iterator[T]) Iterator[T] {
	from.assertValid()
	to.assertValid()
	debugAssert(from.buf == b && to.buf == b, "circbuf: iterator of a different buffer")
	f, l := from.pos(), to.pos()
	debugAssert(f <= l, "circbuf: inverted erase range")
	d := l - f
	if d == 0 {
		return from
	}
	for k := f - 1; k >= 0; k-- {
		b.replaceSlot(b.add(b.first, k+d), b.slots[b.add(b.first, k)])
	}
	for i := 0; i < d; i++ {
		b.destroySlot(b.add(b.first, i))
	}
	b.first = b.add(b.first, d)
	b.size -= d
	if f == 0 {
		return b.Begin()
	}
	return b.IterAt(f - 1)
}
