// File: insert.go
// Author: momentics <momentics@gmail.com>
//
// Positional insertion. Insert variants shift elements toward the tail and
// evict from the front when the buffer is full; the R variants shift toward
// the head and evict from the tail. Batched variants truncate the request
// to the available room and perform a single shift pass instead of n
// single-element inserts, which would evict more aggressively.

package circbuf

// isUninitialized reports whether a slot lies outside the live window.
func (b *Buffer[T]) isUninitialized(p int) bool {
	return b.logical(p) >= b.size
}

// createOrReplace writes into a slot, invalidating iterators only when the
// slot held a live element.
func (b *Buffer[T]) createOrReplace(p int, item T) {
	if b.isUninitialized(p) {
		b.slots[p] = item
	} else {
		b.replaceSlot(p, item)
	}
}

// mapSlot resolves the end tag to the virtual end cursor.
func (b *Buffer[T]) mapSlot(pos Iterator[T]) int {
	if pos.end {
		return b.lastSlot()
	}
	return pos.slot
}

// Insert places item before pos and returns an iterator to it. On a full
// buffer the front element is evicted; inserting before the front of a
// full buffer is a no-op, since nothing can fit there without evicting the
// very element the position anchors to.
func (b *Buffer[T]) Insert(pos Iterator[T], item T) Iterator[T] {
	pos.assertValid()
	debugAssert(pos.buf == b, "circbuf: iterator of a different buffer")
	if b.Full() && pos.pos() == 0 {
		return b.Begin()
	}
	var slot int
	if pos.end {
		p := b.lastSlot()
		if b.Full() {
			b.replaceSlot(p, item)
		} else {
			b.slots[p] = item
		}
		slot = p
	} else {
		last := b.lastSlot()
		src, dest := last, last
		for src != pos.slot {
			src = b.dec(src)
			if dest == last && !b.Full() {
				b.slots[dest] = b.slots[src]
			} else {
				b.replaceSlot(dest, b.slots[src])
			}
			dest = b.dec(dest)
		}
		b.replaceSlot(pos.slot, item)
		slot = pos.slot
	}
	if b.Full() {
		b.first = b.inc(b.first)
	} else {
		b.size++
	}
	return Iterator[T]{buf: b, slot: slot, iterCheck: b.newCheck(slot, false)}
}

// InsertN places n copies of item before pos, truncating n to the room
// capacity-(end-pos). At most capacity-size of the copies extend the live
// window; the remainder overwrite slots evicted from the front.
func (b *Buffer[T]) InsertN(pos Iterator[T], n int, item T) {
	pos.assertValid()
	debugAssert(pos.buf == b, "circbuf: iterator of a different buffer")
	if n <= 0 {
		return
	}
	room := len(b.slots) - (b.size - pos.pos())
	if room == 0 {
		return
	}
	if n > room {
		n = room
	}
	b.insertNItems(pos, n, func() T { return item })
}

// InsertRange places a copy of items before pos under the same truncation
// policy as InsertN. When the range does not fit, only its most recent
// elements are inserted.
func (b *Buffer[T]) InsertRange(pos Iterator[T], items []T) {
	pos.assertValid()
	debugAssert(pos.buf == b, "circbuf: iterator of a different buffer")
	n := len(items)
	if n == 0 {
		return
	}
	room := len(b.slots) - (b.size - pos.pos())
	if room == 0 {
		return
	}
	if n > room {
		items = items[n-room:]
		n = room
	}
	i := 0
	b.insertNItems(pos, n, func() T { item := items[i]; i++; return item })
}

// insertNItems performs the batched tail-shift insert. The cursor update
// below folds the original construct/overwrite split: construct items grow
// the window, the remaining n-construct shift the head forward (evicting).
func (b *Buffer[T]) insertNItems(pos Iterator[T], n int, next func() T) {
	construct := len(b.slots) - b.size
	if construct > n {
		construct = n
	}
	if pos.end {
		p := b.lastSlot()
		for i := 0; i < n; i++ {
			if i < construct {
				b.slots[p] = next()
			} else {
				b.replaceSlot(p, next())
			}
			p = b.inc(p)
		}
	} else {
		last := b.lastSlot()
		src, dest := last, b.add(last, n-1)
		for src != pos.slot {
			src = b.dec(src)
			b.createOrReplace(dest, b.slots[src])
			dest = b.dec(dest)
		}
		dest = pos.slot
		for i := 0; i < n; i++ {
			b.createOrReplace(dest, next())
			dest = b.inc(dest)
		}
	}
	b.first = b.add(b.first, n-construct)
	b.size += construct
}

// RInsert places item before pos, evicting from the tail when full.
// Inserting before the end of a full buffer is a no-op.
func (b *Buffer[T]) RInsert(pos Iterator[T], item T) Iterator[T] {
	pos.assertValid()
	debugAssert(pos.buf == b, "circbuf: iterator of a different buffer")
	if b.Full() && pos.end {
		return b.End()
	}
	var slot int
	if pos.pos() == 0 {
		if b.Full() {
			b.first = b.dec(b.first)
			b.replaceSlot(b.first, item)
		} else {
			b.first = b.dec(b.first)
			b.slots[b.first] = item
			b.size++
		}
		return Iterator[T]{buf: b, slot: b.first, iterCheck: b.newCheck(b.first, false)}
	}
	p := b.mapSlot(pos)
	newFirst := b.dec(b.first)
	src, dest := b.first, newFirst
	for src != p {
		if dest == newFirst && !b.Full() {
			b.slots[dest] = b.slots[src]
		} else {
			b.replaceSlot(dest, b.slots[src])
		}
		src = b.inc(src)
		dest = b.inc(dest)
	}
	slot = b.dec(p)
	b.replaceSlot(slot, item)
	b.first = newFirst
	if !b.Full() {
		b.size++
	}
	return Iterator[T]{buf: b, slot: slot, iterCheck: b.newCheck(slot, false)}
}

// RInsertN places n copies of item before pos, truncating n to the room
// capacity-(pos-begin) and evicting from the tail.
func (b *Buffer[T]) RInsertN(pos Iterator[T], n int, item T) {
	pos.assertValid()
	debugAssert(pos.buf == b, "circbuf: iterator of a different buffer")
	if n <= 0 {
		return
	}
	room := len(b.slots) - pos.pos()
	if room == 0 {
		return
	}
	if n > room {
		n = room
	}
	b.rinsertNItems(pos, n, func() T { return item })
}

// RInsertRange places a copy of items before pos under the RInsertN
// truncation policy. When the range does not fit, only its leading
// elements are inserted.
func (b *Buffer[T]) RInsertRange(pos Iterator[T], items []T) {
	pos.assertValid()
	debugAssert(pos.buf == b, "circbuf: iterator of a different buffer")
	n := len(items)
	if n == 0 {
		return
	}
	room := len(b.slots) - pos.pos()
	if room == 0 {
		return
	}
	if n > room {
		items = items[:room]
		n = room
	}
	i := 0
	b.rinsertNItems(pos, n, func() T { item := items[i]; i++; return item })
}

// rinsertNItems performs the batched head-shift insert, symmetric to
// insertNItems.
func (b *Buffer[T]) rinsertNItems(pos Iterator[T], n int, next func() T) {
	construct := len(b.slots) - b.size
	if construct > n {
		construct = n
	}
	p := b.mapSlot(pos)
	if pos.pos() == 0 {
		q := b.sub(p, n)
		for i := n; i > 0; i-- {
			if i > construct {
				b.replaceSlot(q, next())
			} else {
				b.slots[q] = next()
			}
			q = b.inc(q)
		}
	} else {
		src, dest := b.first, b.sub(b.first, n)
		for src != p {
			b.createOrReplace(dest, b.slots[src])
			src = b.inc(src)
			dest = b.inc(dest)
		}
		dest = b.sub(p, n)
		for i := 0; i < n; i++ {
			b.createOrReplace(dest, next())
			dest = b.inc(dest)
		}
	}
	b.first = b.sub(b.first, n)
	b.size += construct
}
