//go:build cbdebug

// File: validate_test.go
// Author: momentics <momentics@gmail.com>
//
// Exercises the debug-build iterator validity registry. Run with
// go test -tags cbdebug.

package circbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverwriteInvalidatesIterator(t *testing.T) {
	b := fromSlice(t, 3, 1, 2, 3)
	it := b.Begin()
	b.PushBack(4) // full push overwrites the front slot
	assert.Panics(t, func() { it.Value() })
}

func TestPopInvalidatesIterator(t *testing.T) {
	b := fromSlice(t, 4, 1, 2, 3)
	back := b.IterAt(2)
	b.PopBack()
	assert.Panics(t, func() { back.Value() })
}

func TestSurvivingIteratorStaysValid(t *testing.T) {
	b := fromSlice(t, 4, 1, 2, 3)
	mid := b.IterAt(1)
	b.PopBack() // destroys only the back slot
	assert.Equal(t, 2, mid.Value())
}

func TestIteratorCopiesShareFate(t *testing.T) {
	b := fromSlice(t, 3, 1, 2, 3)
	it := b.Begin()
	dup := it
	b.PushBack(4)
	assert.Panics(t, func() { dup.Value() })
}

func TestReallocationInvalidatesAll(t *testing.T) {
	b := fromSlice(t, 4, 1, 2, 3)
	it := b.IterAt(1)
	require.NoError(t, b.SetCapacity(8))
	assert.Panics(t, func() { it.Value() })
}

func TestShiftInvalidatesDisplacedSlots(t *testing.T) {
	b := fromSlice(t, 6, 1, 2, 3, 4)
	tail := b.IterAt(3)
	b.Insert(b.IterAt(1), 9) // suffix shifts toward the tail
	assert.Panics(t, func() { tail.Value() })
}

func TestEraseKeepsPrefixValid(t *testing.T) {
	b := fromSlice(t, 6, 1, 2, 3, 4)
	front := b.Begin()
	b.Erase(b.IterAt(2))
	assert.Equal(t, 1, front.Value())
}

func TestUnboundIteratorPanics(t *testing.T) {
	var it Iterator[int]
	assert.Panics(t, func() { it.Value() })
}

func TestPreconditionAssertions(t *testing.T) {
	b := MustNew[int](2)
	assert.Panics(t, func() { b.PopBack() })
	assert.Panics(t, func() { b.Front() })
	assert.Panics(t, func() { b.End().Value() })
	b.PushBack(1)
	assert.Panics(t, func() { b.Begin().Prev() })
}
