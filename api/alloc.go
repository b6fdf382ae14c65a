// Package api
// Author: momentics <momentics@gmail.com>
//
// Pluggable allocation strategy for container backing storage.
//
// Storage may be heap slices, mmap regions, hugepages or shared memory.
// The container owns the returned region and guarantees it returns it
// through Deallocate exactly once.

package api

// Allocator abstracts slot-region management for a container.
type Allocator[T any] interface {
	// Allocate returns a region of exactly n zeroed slots.
	// Fails with ErrAllocFailure or ErrCapacityExceeded before any
	// container state is mutated.
	Allocate(n int) ([]T, error)

	// Deallocate releases a region previously obtained from Allocate.
	// The region must not be used afterwards.
	Deallocate(region []T)
}
