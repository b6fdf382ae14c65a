// File: iterator.go
// Author: momentics <momentics@gmail.com>
//
// Random-access iterators over the wrapped storage. A position is a tagged
// variant: either a dereferenceable physical slot or the logical end. The
// end tag is required because on a full buffer the head and the virtual end
// cursor alias the same slot.
//
// Iterators are not circular: they run from Begin() to End() in logical
// order, and their ordering and distance are defined by logical position,
// not raw slot index.

package circbuf

// Iterator is a random-access position inside a Buffer. The zero value is
// unbound; iterators are obtained from Begin, End, IterAt or derived by
// Next/Prev/Advance.
type Iterator[T any] struct {
	buf  *Buffer[T]
	slot int
	end  bool
	iterCheck
}

// Begin returns an iterator at the first element, or End() when empty.
func (b *Buffer[T]) Begin() Iterator[T] {
	if b.Empty() {
		return b.End()
	}
	return Iterator[T]{buf: b, slot: b.first, iterCheck: b.newCheck(b.first, false)}
}

// End returns the iterator one past the last element.
func (b *Buffer[T]) End() Iterator[T] {
	return Iterator[T]{buf: b, end: true, iterCheck: b.newCheck(0, true)}
}

// IterAt returns an iterator at the given logical index, 0 <= index <= Len().
func (b *Buffer[T]) IterAt(index int) Iterator[T] {
	debugAssert(index >= 0 && index <= b.size, "circbuf: iterator index out of range")
	if index == b.size {
		return b.End()
	}
	p := b.add(b.first, index)
	return Iterator[T]{buf: b, slot: p, iterCheck: b.newCheck(p, false)}
}

// pos resolves the logical offset of the iterator from the head;
// End() maps to Len().
func (it Iterator[T]) pos() int {
	if it.end {
		return it.buf.size
	}
	return it.buf.logical(it.slot)
}

// Index returns the logical index of the iterator, Len() for End().
func (it Iterator[T]) Index() int {
	it.assertValid()
	return it.pos()
}

// IsEnd reports whether the iterator is at the logical end.
func (it Iterator[T]) IsEnd() bool { return it.end }

// Value returns the element at the iterator position. The iterator must be
// dereferenceable (bound and not End()).
func (it Iterator[T]) Value() T {
	it.assertValid()
	debugAssert(!it.end, "circbuf: dereference of end iterator")
	return it.buf.slots[it.slot]
}

// Set overwrites the element at the iterator position.
func (it Iterator[T]) Set(item T) {
	it.assertValid()
	debugAssert(!it.end, "circbuf: write through end iterator")
	it.buf.slots[it.slot] = item
}

// Next returns the iterator advanced by one. Must not be called on End().
func (it Iterator[T]) Next() Iterator[T] {
	it.assertValid()
	debugAssert(!it.end, "circbuf: increment past end")
	b := it.buf
	p := b.inc(it.slot)
	if p == b.lastSlot() {
		return Iterator[T]{buf: b, end: true, iterCheck: b.newCheck(0, true)}
	}
	return Iterator[T]{buf: b, slot: p, iterCheck: b.newCheck(p, false)}
}

// Prev returns the iterator retreated by one. Must not be called on Begin().
func (it Iterator[T]) Prev() Iterator[T] {
	it.assertValid()
	b := it.buf
	if it.end {
		debugAssert(b.size > 0, "circbuf: decrement past begin")
		p := b.backSlot()
		return Iterator[T]{buf: b, slot: p, iterCheck: b.newCheck(p, false)}
	}
	debugAssert(it.slot != b.first, "circbuf: decrement past begin")
	p := b.dec(it.slot)
	return Iterator[T]{buf: b, slot: p, iterCheck: b.newCheck(p, false)}
}

// Advance returns the iterator moved by n positions, n may be negative.
// The result must stay within [Begin(), End()].
func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.assertValid()
	b := it.buf
	target := it.pos() + n
	debugAssert(target >= 0 && target <= b.size, "circbuf: advance out of range")
	if target == b.size {
		return Iterator[T]{buf: b, end: true, iterCheck: b.newCheck(0, true)}
	}
	p := b.add(b.first, target)
	return Iterator[T]{buf: b, slot: p, iterCheck: b.newCheck(p, false)}
}

// Sub returns the logical distance it - other. Both iterators must belong
// to the same buffer.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	it.assertValid()
	other.assertValid()
	debugAssert(it.buf == other.buf, "circbuf: iterators of different buffers")
	return it.pos() - other.pos()
}

// Equal reports whether two iterators address the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	it.assertValid()
	other.assertValid()
	debugAssert(it.buf == other.buf, "circbuf: iterators of different buffers")
	return it.end == other.end && (it.end || it.slot == other.slot)
}

// Less orders iterators by logical position. The order is total and
// consistent with traversal order from Begin() to End(), regardless of the
// wrap state of the underlying storage.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Sub(other) < 0
}

// ReverseIterator walks the buffer from back to front. Like the standard
// reverse adaptor it holds a base iterator one past its target.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns the reverse iterator at the last element.
func (b *Buffer[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{base: b.End()} }

// REnd returns the reverse iterator one before the first element.
func (b *Buffer[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{base: b.Begin()} }

// Base returns the underlying forward iterator.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

// Value returns the element at the reverse position.
func (r ReverseIterator[T]) Value() T { return r.base.Prev().Value() }

// Next advances toward the front of the buffer.
func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Prev()}
}

// Equal reports whether two reverse iterators address the same position.
func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// Each calls fn for every element in logical order.
func (b *Buffer[T]) Each(fn func(index int, item T)) {
	for i, p := 0, b.first; i < b.size; i, p = i+1, b.inc(p) {
		fn(i, b.slots[p])
	}
}
