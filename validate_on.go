//go:build cbdebug

// File: validate_on.go
// Author: momentics <momentics@gmail.com>
//
// Debug build (-tags cbdebug): every iterator carries a token registered
// with its buffer. Mutations that overwrite, destroy or relocate elements
// mark the affected tokens, and any later use of a marked iterator panics
// instead of reading stale state. Tokens are shared by iterator copies, so
// copies share fate with the original.

package circbuf

const debugEnabled = true

// iterToken is one live iterator binding. Invalidation flips valid on the
// token rather than the iterator value itself.
type iterToken struct {
	next  *iterToken
	slot  int
	end   bool
	valid bool
}

type registry struct {
	head *iterToken
}

type iterCheck struct {
	tok *iterToken
}

func (b *Buffer[T]) newCheck(slot int, end bool) iterCheck {
	tok := &iterToken{next: b.registry.head, slot: slot, end: end, valid: true}
	b.registry.head = tok
	return iterCheck{tok: tok}
}

func (it Iterator[T]) assertValid() {
	if it.buf == nil {
		panic("circbuf: use of unbound iterator")
	}
	if it.tok != nil && !it.tok.valid {
		panic("circbuf: use of invalidated iterator")
	}
}

// invalidateSlot marks every live token bound to the slot and unlinks the
// dead tokens from the registry. Iterators keep their token pointer, so
// the invalid flag stays observable after unlinking.
func (b *Buffer[T]) invalidateSlot(slot int) {
	for tok := b.registry.head; tok != nil; tok = tok.next {
		if tok.valid && !tok.end && tok.slot == slot {
			tok.valid = false
		}
	}
	b.compact()
}

// invalidateAll marks every registered token; used by whole-buffer
// mutations such as reallocation, rotation, assignment and swap.
func (b *Buffer[T]) invalidateAll() {
	for tok := b.registry.head; tok != nil; tok = tok.next {
		tok.valid = false
	}
	b.registry.head = nil
}

func (b *Buffer[T]) compact() {
	p := &b.registry.head
	for *p != nil {
		if !(*p).valid {
			*p = (*p).next
		} else {
			p = &(*p).next
		}
	}
}

func debugAssert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
