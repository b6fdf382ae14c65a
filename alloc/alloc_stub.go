//go:build !linux

// File: alloc/alloc_stub.go
// Author: momentics <momentics@gmail.com>
//
// Platforms without the mapping syscalls fall back to the heap allocator.

package alloc

import "github.com/momentics/circbuf/api"

// Mmap degrades to Heap on non-Linux platforms.
func Mmap[T any]() api.Allocator[T] { return Heap[T]() }
