// Package circbuf implements a fixed-capacity circular buffer container
// with random-access iterators and a space-optimized adaptor.
//
// Buffer is the storage engine: a contiguous region of capacity slots with
// two wrapping virtual cursors. Pushing into a full buffer overwrites the
// element at the opposite end; capacity never grows implicitly. Adaptive
// wraps a Buffer and floats the allocated capacity between a minimum and a
// user-visible logical capacity.
//
// The container is not synchronized. Callers must serialize concurrent
// access externally; see examples/boundedbuffer for the mutex/condvar
// pattern.
//
// Author: momentics <momentics@gmail.com>
package circbuf
