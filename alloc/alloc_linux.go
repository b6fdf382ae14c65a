//go:build linux

// File: alloc/alloc_linux.go
// Author: momentics <momentics@gmail.com>
//
// Anonymous-mapping allocator. Regions live outside the Go heap, so the
// garbage collector neither scans nor moves them. Restricted to
// pointer-free element types: pointers stored in a mapped region are
// invisible to the collector.

package alloc

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/circbuf/api"
)

type mmapAlloc[T any] struct {
	mu      sync.Mutex
	regions map[uintptr][]byte
}

// Mmap returns an allocator backed by private anonymous mappings. Callers
// must return every region through Deallocate or the mapping leaks.
func Mmap[T any]() api.Allocator[T] {
	return &mmapAlloc[T]{regions: make(map[uintptr][]byte)}
}

func (m *mmapAlloc[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, api.ErrInvalidArgument
	}
	if n == 0 {
		return []T{}, nil
	}
	var zero T
	length := n * int(unsafe.Sizeof(zero))
	mem, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, api.NewError(api.ErrCodeAllocFailure, api.ErrAllocFailure.Error()).
			WithContext("bytes", length).
			WithContext("errno", err.Error())
	}
	base := &mem[0]
	m.mu.Lock()
	m.regions[uintptr(unsafe.Pointer(base))] = mem
	m.mu.Unlock()
	return unsafe.Slice((*T)(unsafe.Pointer(base)), n), nil
}

func (m *mmapAlloc[T]) Deallocate(region []T) {
	if len(region) == 0 {
		return
	}
	key := uintptr(unsafe.Pointer(&region[0]))
	m.mu.Lock()
	mem, ok := m.regions[key]
	delete(m.regions, key)
	m.mu.Unlock()
	if ok {
		_ = unix.Munmap(mem)
	}
}
