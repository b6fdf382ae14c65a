// File: iterator_test.go
// Author: momentics <momentics@gmail.com>

package circbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrapped builds a buffer whose window wraps the region boundary:
// capacity 4, contents [3 4 5 6], head in the middle of the region.
func wrapped(t *testing.T) *Buffer[int] {
	t.Helper()
	b := MustNew[int](4)
	for i := 1; i <= 6; i++ {
		b.PushBack(i)
	}
	require.Equal(t, []int{3, 4, 5, 6}, contents(b))
	require.False(t, b.IsLinearized())
	return b
}

func TestBeginEndEmpty(t *testing.T) {
	b := MustNew[int](4)
	assert.True(t, b.Begin().Equal(b.End()))
	assert.True(t, b.Begin().IsEnd())
}

func TestForwardWalk(t *testing.T) {
	b := wrapped(t)
	var got []int
	for it := b.Begin(); !it.IsEnd(); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{3, 4, 5, 6}, got)
}

func TestBackwardWalk(t *testing.T) {
	b := wrapped(t)
	var got []int
	for it := b.End(); !it.Equal(b.Begin()); {
		it = it.Prev()
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{6, 5, 4, 3}, got)
}

func TestReverseIterator(t *testing.T) {
	b := wrapped(t)
	var got []int
	for r := b.RBegin(); !r.Equal(b.REnd()); r = r.Next() {
		got = append(got, r.Value())
	}
	assert.Equal(t, []int{6, 5, 4, 3}, got)
	assert.True(t, b.RBegin().Base().Equal(b.End()))
}

func TestOrderingIsLogicalNotPhysical(t *testing.T) {
	b := wrapped(t)
	// The window wraps, so a later logical position can live at a lower
	// physical slot. Ordering must follow traversal order regardless.
	for i := 0; i < b.Len(); i++ {
		for j := 0; j < b.Len(); j++ {
			assert.Equal(t, i < j, b.IterAt(i).Less(b.IterAt(j)), "i=%d j=%d", i, j)
		}
		assert.True(t, b.IterAt(i).Less(b.End()))
	}
}

func TestSubAndAdvance(t *testing.T) {
	b := wrapped(t)
	first, last := b.Begin(), b.End()
	assert.Equal(t, 4, last.Sub(first))
	assert.Equal(t, -4, first.Sub(last))

	it := first.Advance(3)
	assert.Equal(t, 6, it.Value())
	assert.Equal(t, 3, it.Sub(first))
	assert.True(t, it.Advance(-3).Equal(first))
	assert.True(t, first.Advance(4).IsEnd())
	assert.True(t, last.Advance(-4).Equal(first))
}

func TestIterAt(t *testing.T) {
	b := wrapped(t)
	assert.Equal(t, 5, b.IterAt(2).Value())
	assert.Equal(t, 2, b.IterAt(2).Index())
	assert.True(t, b.IterAt(b.Len()).IsEnd())
	assert.Equal(t, b.Len(), b.End().Index())
}

func TestIteratorSet(t *testing.T) {
	b := wrapped(t)
	b.IterAt(1).Set(40)
	assert.Equal(t, []int{3, 40, 5, 6}, contents(b))
}

func TestEndStaysEndAcrossSizes(t *testing.T) {
	// On a full buffer the end cursor aliases the head slot; the tagged
	// position must still compare unequal to Begin.
	b := fromSlice(t, 3, 1, 2, 3)
	assert.False(t, b.Begin().Equal(b.End()))
	assert.True(t, b.Begin().Less(b.End()))
}

func TestEach(t *testing.T) {
	b := wrapped(t)
	var idx []int
	var got []int
	b.Each(func(i, v int) {
		idx = append(idx, i)
		got = append(got, v)
	})
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
	assert.Equal(t, []int{3, 4, 5, 6}, got)
}
