// File: alloc_integration_test.go
// Author: momentics <momentics@gmail.com>

package circbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/circbuf/alloc"
)

func TestBufferOnMmapRegion(t *testing.T) {
	b, err := New[int64](4, WithAllocator(alloc.Mmap[int64]()))
	require.NoError(t, err)
	defer b.Release()

	for i := int64(1); i <= 6; i++ {
		b.PushBack(i)
	}
	assert.Equal(t, []int64{3, 4, 5, 6}, contents(b))

	// reallocation moves the content into a fresh mapping and unmaps
	// the old region
	require.NoError(t, b.SetCapacity(8))
	assert.Equal(t, []int64{3, 4, 5, 6}, contents(b))
	b.PushBack(7)
	assert.Equal(t, int64(7), b.Back())
}

func TestAdaptiveOnMmapRegion(t *testing.T) {
	a, err := NewAdaptive[uint32](
		CapacityControl{Capacity: 64},
		WithAllocator(alloc.Mmap[uint32]()),
	)
	require.NoError(t, err)
	defer a.Release()

	for i := uint32(0); i < 20; i++ {
		require.NoError(t, a.PushBack(i))
	}
	assert.Equal(t, 20, a.Len())
	assert.Equal(t, uint32(19), a.Back())
	assert.GreaterOrEqual(t, a.InternalCapacity(), 20)
}
