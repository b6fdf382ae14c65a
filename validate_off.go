//go:build !cbdebug

// File: validate_off.go
// Author: momentics <momentics@gmail.com>
//
// Release build: iterator validity tracking compiles away. The types are
// empty, the hooks are no-ops, and precondition checks cost nothing beyond
// evaluating their condition.

package circbuf

const debugEnabled = false

type registry struct{}

type iterCheck struct{}

func (b *Buffer[T]) newCheck(slot int, end bool) iterCheck { return iterCheck{} }

func (it Iterator[T]) assertValid() {}

func (b *Buffer[T]) invalidateSlot(slot int) {}

func (b *Buffer[T]) invalidateAll() {}

func debugAssert(cond bool, msg string) {}
