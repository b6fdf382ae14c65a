// File: linearize.go
// Author: momentics <momentics@gmail.com>
//
// Contiguity management: two-segment views over the wrapped storage, an
// in-place rotation that makes the sequence a single run, and O(1)
// rotation of the logical origin on a full buffer.

package circbuf

// ArrayOne returns the first contiguous segment of the sequence: the run
// from the head up to the end of the region. Empty when the buffer is
// empty.
func (b *Buffer[T]) ArrayOne() []T {
	n := b.size
	if tail := len(b.slots) - b.first; n > tail {
		n = tail
	}
	return b.slots[b.first : b.first+n]
}

// ArrayTwo returns the second contiguous segment: the wrapped run at the
// start of the region. Empty unless the sequence wraps.
func (b *Buffer[T]) ArrayTwo() []T {
	tail := len(b.slots) - b.first
	if b.size <= tail {
		return b.slots[:0]
	}
	return b.slots[:b.size-tail]
}

// IsLinearized reports whether the sequence occupies a single contiguous
// run, i.e. ArrayTwo is empty.
func (b *Buffer[T]) IsLinearized() bool {
	return b.size <= len(b.slots)-b.first
}

// Linearize rotates the storage in place so the sequence starts at slot
// zero and returns it as one slice. O(n) when a rotation is needed, O(1)
// and iterator-preserving otherwise. Calling it twice is a no-op the
// second time.
func (b *Buffer[T]) Linearize() []T {
	if b.size == 0 {
		return nil
	}
	if b.first != 0 {
		b.invalidateAll()
		rotateLeft(b.slots, b.first)
		b.first = 0
	}
	return b.slots[:b.size]
}

// Data is a legacy alias of Linearize.
func (b *Buffer[T]) Data() []T { return b.Linearize() }

// Rotate makes newBegin the new front of the sequence. O(1) on a full
// buffer (only the head cursor moves); otherwise the leading elements are
// cycled to the back one by one.
func (b *Buffer[T]) Rotate(newBegin Iterator[T]) {
	newBegin.assertValid()
	debugAssert(newBegin.buf == b, "circbuf: iterator of a different buffer")
	debugAssert(!newBegin.end, "circbuf: rotate to end iterator")
	if b.Full() {
		b.first = newBegin.slot
		return
	}
	for m := newBegin.pos(); m > 0; m-- {
		b.PushBack(b.PopFront())
	}
}

// rotateLeft rotates s left by k positions using cycle leaders, one
// temporary element and no scratch buffer.
func rotateLeft[T any](s []T, k int) {
	n := len(s)
	if n == 0 || k%n == 0 {
		return
	}
	k %= n
	for start := 0; start < gcd(n, k); start++ {
		tmp := s[start]
		j := start
		for {
			next := j + k
			if next >= n {
				next -= n
			}
			if next == start {
				break
			}
			s[j] = s[next]
			j = next
		}
		s[j] = tmp
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
