// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Allocation strategies for container backing regions. Heap is the default
// and works everywhere; Mmap serves latency-sensitive deployments that
// want the slot region off the garbage-collected heap.

package alloc

import "github.com/momentics/circbuf/api"

type heap[T any] struct{}

// Heap returns the default allocator backed by the Go heap.
func Heap[T any]() api.Allocator[T] { return heap[T]{} }

func (heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, api.ErrInvalidArgument
	}
	return make([]T, n), nil
}

func (heap[T]) Deallocate(region []T) {}
